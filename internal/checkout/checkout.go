// Package checkout drives the order placement flow: totals, payment
// intent, verification, order creation.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
	"github.com/shopkart/storefront/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	taxRate           = 0.10
	freeDeliveryAbove = 50.0
	deliveryFee       = 10.0
)

// Totals is the order price breakdown shown at checkout.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Delivery float64 `json:"delivery"`
	Total    float64 `json:"total"`
}

// ComputeTotals applies the 10% tax and the free-delivery-over-50
// rule to the given line items.
func ComputeTotals(items []models.CartItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	t := Totals{Subtotal: subtotal, Tax: subtotal * taxRate}
	if subtotal <= freeDeliveryAbove {
		t.Delivery = deliveryFee
	}
	t.Total = t.Subtotal + t.Tax + t.Delivery
	return t
}

// Service places orders against the gateway and clears the cart on
// success.
type Service struct {
	gw            gateway.Gateway
	cart          *store.Cart
	notifications *store.Notifications
}

func NewService(gw gateway.Gateway, cart *store.Cart, notifications *store.Notifications) *Service {
	return &Service{gw: gw, cart: cart, notifications: notifications}
}

// PlaceOrder runs the full flow: payment intent for the total, payment
// verification, order creation. The cart is cleared only after the
// order is accepted.
func (s *Service) PlaceOrder(ctx context.Context, shipping models.Address) (models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	totals := ComputeTotals(items)

	// The gateway expects the amount in the currency's smallest unit.
	intent, err := s.gw.CreatePaymentIntent(ctx, int64(math.Round(totals.Total*100)))
	if err != nil {
		s.notifications.Push(models.NotificationError, "Payment could not be started")
		return models.Order{}, fmt.Errorf("creating payment intent: %w", err)
	}

	verification, err := s.gw.VerifyPayment(ctx, models.PaymentPayload{
		PaymentID: "pay_" + uuid.NewString(),
		IntentID:  intent.ID,
		Signature: "mock_signature",
	})
	if err != nil {
		s.notifications.Push(models.NotificationError, "Payment verification failed")
		return models.Order{}, fmt.Errorf("verifying payment: %w", err)
	}

	order, err := s.gw.CreateOrder(ctx, gateway.OrderDraft{
		Items:    items,
		Shipping: shipping,
		Payment:  models.PaymentInfo{ID: verification.PaymentID, Status: "completed"},
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Delivery: totals.Delivery,
		Total:    totals.Total,
	})
	if err != nil {
		s.notifications.Push(models.NotificationError, "Order could not be placed")
		return models.Order{}, fmt.Errorf("creating order: %w", err)
	}

	s.cart.Clear(ctx)
	s.notifications.Push(models.NotificationSuccess, "Order placed successfully")
	return order, nil
}
