package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkart/storefront/internal/auth"
	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/mirror"
	"github.com/shopkart/storefront/internal/models"
	"github.com/shopkart/storefront/internal/store"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []models.CartItem
		want  checkout.Totals
	}{
		{
			name: "delivery charged at or below the threshold",
			items: []models.CartItem{
				{ID: "1", Price: 20, Quantity: 2},
			},
			want: checkout.Totals{Subtotal: 40, Tax: 4, Delivery: 10, Total: 54},
		},
		{
			name: "delivery charged at exactly the threshold",
			items: []models.CartItem{
				{ID: "1", Price: 50, Quantity: 1},
			},
			want: checkout.Totals{Subtotal: 50, Tax: 5, Delivery: 10, Total: 65},
		},
		{
			name: "free delivery above the threshold",
			items: []models.CartItem{
				{ID: "1", Price: 30, Quantity: 2},
			},
			want: checkout.Totals{Subtotal: 60, Tax: 6, Delivery: 0, Total: 66},
		},
		{
			name:  "empty cart",
			items: nil,
			want:  checkout.Totals{Subtotal: 0, Tax: 0, Delivery: 10, Total: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkout.ComputeTotals(tt.items))
		})
	}
}

func shippingAddress() models.Address {
	return models.Address{
		Name:    "John Doe",
		Street:  "123 Main St",
		City:    "Mumbai",
		ZipCode: "400001",
	}
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	gw := gateway.NewMock(auth.NewManager("test-secret"), 0, 0)
	cart := store.NewCart(mirror.NewMemoryStore())
	notifications := store.NewNotifications(time.Minute)
	t.Cleanup(notifications.Stop)

	cart.Add(ctx, models.CartItem{ID: "1", Name: "Wireless Headphones", Price: 30})
	cart.Add(ctx, models.CartItem{ID: "1", Name: "Wireless Headphones", Price: 30})

	svc := checkout.NewService(gw, cart, notifications)
	order, err := svc.PlaceOrder(ctx, shippingAddress())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, 60.0, order.Subtotal)
	assert.Equal(t, 6.0, order.Tax)
	assert.Equal(t, 0.0, order.Delivery)
	assert.Equal(t, 66.0, order.Total)
	assert.Equal(t, "completed", order.Payment.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Empty(t, cart.Items(), "the cart is cleared after the order is accepted")

	entries := notifications.Active()
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationSuccess, entries[0].Kind)
	assert.Equal(t, "Order placed successfully", entries[0].Message)

	// The order is visible in the history afterwards.
	fetched, err := gw.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	gw := gateway.NewMock(auth.NewManager("test-secret"), 0, 0)
	cart := store.NewCart(mirror.NewMemoryStore())
	notifications := store.NewNotifications(time.Minute)
	t.Cleanup(notifications.Stop)

	svc := checkout.NewService(gw, cart, notifications)
	_, err := svc.PlaceOrder(ctx, shippingAddress())

	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Empty(t, notifications.Active())
}
