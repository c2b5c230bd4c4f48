package handlers

import (
	"encoding/json"

	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/models"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type FacetsResult struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// FilterRequest sets exactly one filter field; a null value clears it.
type FilterRequest struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResult struct {
	Items  []models.CartItem `json:"items"`
	Totals checkout.Totals   `json:"totals"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResult struct {
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
	Loading bool         `json:"loading"`
	Error   string       `json:"error,omitempty"`
}

type CheckoutRequest struct {
	Shipping models.Address `json:"shipping"`
}
