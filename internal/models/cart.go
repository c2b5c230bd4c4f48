package models

// CartItem is a purchasable line item. Name, price and image are
// snapshotted from the product at add-time.
type CartItem struct {
	ID       string  `json:"id"` // product identifier
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}
