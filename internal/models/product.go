package models

// Product represents a catalog product as served by the backend.
// Products are read-only from the storefront's point of view.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand"`
	Featured    bool     `json:"featured"`
}

// InStock reports whether the product can be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}
