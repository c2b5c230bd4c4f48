package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

func TestClientProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]models.Product{
			{ID: "1", Name: "Premium Wireless Earbuds", Price: 79.99},
		})
	}))
	t.Cleanup(srv.Close)

	c := gateway.NewClient(srv.URL)
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Premium Wireless Earbuds" {
		t.Errorf("unexpected products %+v", products)
	}
}

func TestClientProductByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := gateway.NewClient(srv.URL)
	_, err := c.ProductByID(context.Background(), "999")
	if !errors.Is(err, gateway.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("error decoding login payload: %v", err)
		}
		if payload["password"] != "password" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(gateway.Credentials{
			User:  models.User{ID: "1", Email: payload["email"]},
			Token: "token-123",
		})
	}))
	t.Cleanup(srv.Close)

	c := gateway.NewClient(srv.URL)

	creds, err := c.Login(context.Background(), "user@example.com", "password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Token != "token-123" {
		t.Errorf("expected token-123, got %q", creds.Token)
	}

	_, err = c.Login(context.Background(), "user@example.com", "wrong")
	if !errors.Is(err, gateway.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestClientOrderByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := gateway.NewClient(srv.URL)
	_, err := c.OrderByID(context.Background(), "order-999")
	if !errors.Is(err, gateway.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestClientBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := gateway.NewClient(srv.URL)
	_, err := c.Products(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}
