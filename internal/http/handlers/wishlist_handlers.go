package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

// GetWishlistHandler godoc
// @Summary List saved products
// @Tags wishlist
// @Produce json
// @Success 200 {array} models.Product
// @Router /wishlist [get]
func (h *Handler) GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	items := h.wishlist.Items()
	if items == nil {
		items = []models.Product{}
	}
	writeJSON(w, http.StatusOK, items)
}

// AddToWishlistHandler godoc
// @Summary Save a product to the wishlist
// @Description Saving an already-present product is a no-op.
// @Tags wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} models.Product
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Backend error"
// @Router /wishlist/{productId} [post]
func (h *Handler) AddToWishlistHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	product, err := h.gateway.ProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.wishlist.Add(r.Context(), product)
	h.notifications.Push(models.NotificationSuccess, "Added to wishlist!")

	h.GetWishlistHandler(w, r)
}

// RemoveFromWishlistHandler godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {array} models.Product
// @Router /wishlist/{productId} [delete]
func (h *Handler) RemoveFromWishlistHandler(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Remove(r.Context(), chi.URLParam(r, "productId"))
	h.GetWishlistHandler(w, r)
}
