package models

import "time"

// Order statuses as reported by the backend.
const (
	OrderStatusProcessing = "processing"
	OrderStatusDelivered  = "delivered"
)

// Address is a shipping destination collected at checkout.
type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PaymentInfo records the settled payment attached to an order.
type PaymentInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID        string      `json:"id"`
	Items     []CartItem  `json:"items"`
	Shipping  Address     `json:"shipping"`
	Payment   PaymentInfo `json:"payment"`
	Subtotal  float64     `json:"subtotal"`
	Tax       float64     `json:"tax"`
	Delivery  float64     `json:"delivery"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PaymentIntent is the gateway-side handle created before payment.
// Amount is in the currency's smallest unit.
type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentPayload is what the payment provider hands back for verification.
type PaymentPayload struct {
	PaymentID string `json:"paymentId"`
	IntentID  string `json:"intentId"`
	Signature string `json:"signature"`
}

// PaymentVerification is the result of verifying a payment payload.
type PaymentVerification struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId"`
}
