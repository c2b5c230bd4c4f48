package handlers

import (
	"errors"
	"net/http"

	"github.com/shopkart/storefront/internal/gateway"
)

// LoginHandler godoc
// @Summary Authenticate and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} SessionResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Invalid credentials"
// @Failure 502 {string} string "Backend error"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	if err := h.session.Login(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, gateway.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, h.session.Err(), http.StatusBadGateway)
		return
	}

	h.SessionHandler(w, r)
}

// RegisterHandler godoc
// @Summary Create an account and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "name, email and password"
// @Success 201 {object} SessionResult
// @Failure 400 {object} []ValidationError
// @Failure 502 {string} string "Backend error"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateRegister(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	if err := h.session.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		http.Error(w, h.session.Err(), http.StatusBadGateway)
		return
	}

	user, _ := h.session.User()
	writeJSON(w, http.StatusCreated, SessionResult{
		User:  &user,
		Token: h.session.Token(),
	})
}

// LogoutHandler godoc
// @Summary Close the session
// @Description Logout always succeeds, even for anonymous callers.
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.session.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// SessionHandler godoc
// @Summary Get the current session state
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResult
// @Router /auth/session [get]
func (h *Handler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	result := SessionResult{
		Token:   h.session.Token(),
		Loading: h.session.Loading(),
		Error:   h.session.Err(),
	}
	if user, ok := h.session.User(); ok {
		result.User = &user
	}
	writeJSON(w, http.StatusOK, result)
}
