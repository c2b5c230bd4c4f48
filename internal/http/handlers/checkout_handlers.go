package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

// CheckoutTotalsHandler godoc
// @Summary Get the price breakdown for the current cart
// @Tags checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} checkout.Totals
// @Router /checkout/totals [get]
func (h *Handler) CheckoutTotalsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkout.ComputeTotals(h.cart.Items()))
}

// CheckoutHandler godoc
// @Summary Place an order for the current cart
// @Description Runs payment intent creation, verification and order creation; the cart is cleared on success.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param checkout body CheckoutRequest true "Shipping address"
// @Success 201 {object} models.Order
// @Failure 400 {string} string "Invalid input or empty cart"
// @Failure 502 {string} string "Backend error"
// @Router /checkout [post]
func (h *Handler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s := req.Shipping
	if validationErrors := validateAddress(s.Name, s.Street, s.City, s.ZipCode); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), req.Shipping)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrdersHandler godoc
// @Summary List the order history
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Failure 502 {string} string "Backend error"
// @Router /orders [get]
func (h *Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.gateway.Orders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderHandler godoc
// @Summary Get an order by ID
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Backend error"
// @Router /orders/{id} [get]
func (h *Handler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	order, err := h.gateway.OrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, gateway.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// AdminOrdersHandler godoc
// @Summary List every order for the admin panel
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Failure 403 {string} string "Forbidden"
// @Failure 502 {string} string "Backend error"
// @Router /admin/orders [get]
func (h *Handler) AdminOrdersHandler(w http.ResponseWriter, r *http.Request) {
	h.ListOrdersHandler(w, r)
}
