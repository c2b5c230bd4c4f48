package store

import (
	"sort"
	"strings"

	"github.com/shopkart/storefront/internal/models"
)

// Filter is the active set of catalog constraints, applied at read
// time. Nil fields (and an empty search string) are unset.
type Filter struct {
	Search      string
	Category    *string
	Subcategory *string
	Brand       *string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
}

// Matches reports whether the product satisfies every set constraint.
func (f Filter) Matches(p models.Product) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.Subcategory != nil && p.Subcategory != *f.Subcategory {
		return false
	}
	if f.Brand != nil && p.Brand != *f.Brand {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}

// Sort keys for catalog reads.
type Sort string

const (
	SortNewest    Sort = "newest" // insertion order, products carry no timestamp
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortRating    Sort = "rating"
)

func sortProducts(products []models.Product, key Sort) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}
