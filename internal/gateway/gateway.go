// Package gateway is the boundary to the commerce backend. The
// storefront only ever talks to the Gateway interface; the Mock
// implementation stands in for the real thing with seeded data and
// artificial latency.
package gateway

import (
	"context"
	"errors"

	"github.com/shopkart/storefront/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
)

// Credentials is a successful login or registration result.
type Credentials struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// OrderDraft is the client-side order submitted at checkout.
type OrderDraft struct {
	Items    []models.CartItem  `json:"items"`
	Shipping models.Address     `json:"shipping"`
	Payment  models.PaymentInfo `json:"payment"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Delivery float64            `json:"delivery"`
	Total    float64            `json:"total"`
}

// Gateway defines the backend operations the storefront depends on.
type Gateway interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
	Register(ctx context.Context, name, email, password string) (Credentials, error)

	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (models.Product, error)

	CreateOrder(ctx context.Context, draft OrderDraft) (models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	OrderByID(ctx context.Context, id string) (models.Order, error)

	CreatePaymentIntent(ctx context.Context, amount int64) (models.PaymentIntent, error)
	VerifyPayment(ctx context.Context, payload models.PaymentPayload) (models.PaymentVerification, error)
}
