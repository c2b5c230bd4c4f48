package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopkart/storefront/internal/models"
)

// Client is the production Gateway implementation. It speaks JSON to a
// real commerce backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return resp.StatusCode, fmt.Errorf("backend returned %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode backend response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	payload := map[string]string{"email": email, "password": password}
	status, err := c.do(ctx, http.MethodPost, "/auth/login", payload, &creds)
	if status == http.StatusUnauthorized {
		return Credentials{}, ErrInvalidCredentials
	}
	return creds, err
}

func (c *Client) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	var creds Credentials
	payload := map[string]string{"name": name, "email": email, "password": password}
	_, err := c.do(ctx, http.MethodPost, "/auth/register", payload, &creds)
	return creds, err
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	_, err := c.do(ctx, http.MethodGet, "/products", nil, &products)
	return products, err
}

func (c *Client) ProductByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	status, err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product)
	if status == http.StatusNotFound {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

func (c *Client) CreateOrder(ctx context.Context, draft OrderDraft) (models.Order, error) {
	var order models.Order
	_, err := c.do(ctx, http.MethodPost, "/orders", draft, &order)
	return order, err
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	_, err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, err
}

func (c *Client) OrderByID(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	status, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order)
	if status == http.StatusNotFound {
		return models.Order{}, ErrOrderNotFound
	}
	return order, err
}

func (c *Client) CreatePaymentIntent(ctx context.Context, amount int64) (models.PaymentIntent, error) {
	var intent models.PaymentIntent
	payload := map[string]int64{"amount": amount}
	_, err := c.do(ctx, http.MethodPost, "/payments/intents", payload, &intent)
	return intent, err
}

func (c *Client) VerifyPayment(ctx context.Context, payload models.PaymentPayload) (models.PaymentVerification, error) {
	var verification models.PaymentVerification
	_, err := c.do(ctx, http.MethodPost, "/payments/verify", payload, &verification)
	return verification, err
}
