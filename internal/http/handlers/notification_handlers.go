package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/storefront/internal/models"
)

// ListNotificationsHandler godoc
// @Summary List queued notifications, oldest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *Handler) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	entries := h.notifications.Active()
	if entries == nil {
		entries = []models.Notification{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// DismissNotificationHandler godoc
// @Summary Dismiss a notification
// @Description Dismissing the head immediately promotes the next entry.
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Router /notifications/{id} [delete]
func (h *Handler) DismissNotificationHandler(w http.ResponseWriter, r *http.Request) {
	h.notifications.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
