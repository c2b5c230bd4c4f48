package gateway_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopkart/storefront/internal/auth"
	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

func newMock() *gateway.Mock {
	return gateway.NewMock(auth.NewManager("test-secret"), 0, 0)
}

func TestMockProducts(t *testing.T) {
	ctx := context.Background()
	m := newMock()

	products, err := m.Products(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 12 {
		t.Errorf("expected 12 seeded products, got %d", len(products))
	}

	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.Category == "" || p.Brand == "" {
			t.Errorf("product %+v is missing seed data", p)
		}
	}
}

func TestMockProductByID(t *testing.T) {
	ctx := context.Background()
	m := newMock()

	p, err := m.ProductByID(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Premium Wireless Earbuds" {
		t.Errorf("expected 'Premium Wireless Earbuds', got %q", p.Name)
	}

	_, err = m.ProductByID(ctx, "999")
	if !errors.Is(err, gateway.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestMockLogin(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewManager("test-secret")
	m := gateway.NewMock(tokens, 0, 0)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
		isAdmin  bool
	}{
		{"admin account", "admin@example.com", "password", false, true},
		{"regular account", "user@example.com", "password", false, false},
		{"wrong password", "admin@example.com", "wrong", true, false},
		{"unknown account", "nobody@example.com", "password", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := m.Login(ctx, tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, gateway.ErrInvalidCredentials) {
					t.Fatalf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if creds.User.IsAdmin != tt.isAdmin {
				t.Errorf("expected isAdmin=%v, got %v", tt.isAdmin, creds.User.IsAdmin)
			}

			// The issued token carries the same identity.
			claims, err := tokens.ParseToken(creds.Token)
			if err != nil {
				t.Fatalf("error parsing issued token: %v", err)
			}
			user := auth.UserFromClaims(claims)
			if user.Email != tt.email || user.IsAdmin != tt.isAdmin {
				t.Errorf("token identity mismatch: %+v", user)
			}
		})
	}
}

func TestMockRegister(t *testing.T) {
	ctx := context.Background()
	m := newMock()

	creds, err := m.Register(ctx, "New User", "new@example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.User.IsAdmin {
		t.Error("registered users must not be admins")
	}
	if creds.Token == "" {
		t.Error("expected a token")
	}

	// The new account can log in afterwards.
	if _, err := m.Login(ctx, "new@example.com", "secret1"); err != nil {
		t.Errorf("login after register failed: %v", err)
	}
}

func TestMockOrders(t *testing.T) {
	ctx := context.Background()
	m := newMock()

	orders, err := m.Orders(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 seeded orders, got %d", len(orders))
	}

	created, err := m.CreateOrder(ctx, gateway.OrderDraft{
		Items:    []models.CartItem{{ID: "1", Name: "Premium Wireless Earbuds", Price: 10, Quantity: 1}},
		Subtotal: 10, Tax: 1, Delivery: 10, Total: 21,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != models.OrderStatusProcessing {
		t.Errorf("expected a processing order, got %q", created.Status)
	}

	fetched, err := m.OrderByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.Total != 21 {
		t.Errorf("expected total 21, got %v", fetched.Total)
	}

	if _, err := m.OrderByID(ctx, "order-999"); !errors.Is(err, gateway.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMockPayments(t *testing.T) {
	ctx := context.Background()
	m := newMock()

	intent, err := m.CreatePaymentIntent(ctx, 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Amount != 12345 {
		t.Errorf("expected amount 12345, got %d", intent.Amount)
	}
	if intent.Currency != "INR" {
		t.Errorf("expected currency INR, got %q", intent.Currency)
	}

	verification, err := m.VerifyPayment(ctx, models.PaymentPayload{
		PaymentID: "pay_123", IntentID: intent.ID, Signature: "mock_signature",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verification.Success {
		t.Error("expected verification to succeed")
	}
	if verification.PaymentID != "pay_123" {
		t.Errorf("expected the payment ID to round-trip, got %q", verification.PaymentID)
	}
}

func TestMockRespectsContextCancellation(t *testing.T) {
	m := gateway.NewMock(auth.NewManager("test-secret"), 50*time.Millisecond, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Products(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
