package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

func (h *Handler) cartResult() CartResult {
	items := h.cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResult{Items: items, Totals: checkout.ComputeTotals(items)}
}

// GetCartHandler godoc
// @Summary Get the cart with its totals
// @Tags cart
// @Produce json
// @Success 200 {object} CartResult
// @Router /cart [get]
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResult())
}

// AddToCartHandler godoc
// @Summary Add a product to the cart
// @Description Repeated adds of the same product increment its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Product to add"
// @Success 200 {object} CartResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Backend error"
// @Router /cart/items [post]
func (h *Handler) AddToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "missing product id", http.StatusBadRequest)
		return
	}

	product, err := h.gateway.ProductByID(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, gateway.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	h.cart.Add(r.Context(), models.CartItem{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
	})
	h.notifications.Push(models.NotificationSuccess, "Added to cart!")

	writeJSON(w, http.StatusOK, h.cartResult())
}

// SetCartQuantityHandler godoc
// @Summary Set a line item's quantity
// @Description A quantity of zero or below removes the line item.
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param quantity body QuantityRequest true "New quantity"
// @Success 200 {object} CartResult
// @Failure 400 {string} string "Invalid input"
// @Router /cart/items/{productId} [put]
func (h *Handler) SetCartQuantityHandler(w http.ResponseWriter, r *http.Request) {
	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	h.cart.SetQuantity(r.Context(), chi.URLParam(r, "productId"), req.Quantity)
	writeJSON(w, http.StatusOK, h.cartResult())
}

// RemoveFromCartHandler godoc
// @Summary Remove a line item from the cart
// @Tags cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} CartResult
// @Router /cart/items/{productId} [delete]
func (h *Handler) RemoveFromCartHandler(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(r.Context(), chi.URLParam(r, "productId"))
	h.notifications.Push(models.NotificationInfo, "Removed from cart")
	writeJSON(w, http.StatusOK, h.cartResult())
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResult
// @Router /cart [delete]
func (h *Handler) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.cartResult())
}
