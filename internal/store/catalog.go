package store

import (
	"context"
	"sync"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/models"
)

// Catalog owns the fetched product list, the currently viewed product,
// derived facets and the active filter set. Fetches carry a generation
// number so a superseded request cannot overwrite newer state.
type Catalog struct {
	gw gateway.Gateway

	mu         sync.Mutex
	products   []models.Product
	product    *models.Product
	categories []string
	brands     []string
	filter     Filter
	loading    bool
	err        string

	listGen int
	viewGen int
}

func NewCatalog(gw gateway.Gateway) *Catalog {
	return &Catalog{gw: gw}
}

// Load fetches the full product list. On success the list and facets
// are replaced; on failure the previous list is kept and the error is
// recorded. A response that arrives after a newer Load began is
// dropped.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.listGen++
	gen := c.listGen
	c.mu.Unlock()

	products, err := c.gw.Products(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.listGen {
		return nil // superseded by a newer request
	}
	c.loading = false

	if err != nil {
		c.err = err.Error()
		return err
	}

	c.products = products
	c.categories, c.brands = facets(products)
	return nil
}

// LoadProduct fetches a single product as the currently viewed one. A
// missing product leaves the viewed product untouched with the error
// recorded; callers treat error-without-product as not found.
func (c *Catalog) LoadProduct(ctx context.Context, id string) error {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.viewGen++
	gen := c.viewGen
	c.mu.Unlock()

	product, err := c.gw.ProductByID(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.viewGen {
		return nil
	}
	c.loading = false

	if err != nil {
		c.err = err.Error()
		return err
	}

	c.product = &product
	return nil
}

// facets returns the distinct categories and brands in order of first
// appearance.
func facets(products []models.Product) (categories, brands []string) {
	seenCategory := map[string]bool{}
	seenBrand := map[string]bool{}

	for _, p := range products {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			categories = append(categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return categories, brands
}

// SetSearch sets the free-text search term; empty clears it.
func (c *Catalog) SetSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Search = search
}

// SetCategory sets or clears the category constraint.
func (c *Catalog) SetCategory(category *string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Category = category
}

// SetSubcategory sets or clears the subcategory constraint.
func (c *Catalog) SetSubcategory(subcategory *string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Subcategory = subcategory
}

// SetBrand sets or clears the brand constraint.
func (c *Catalog) SetBrand(brand *string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Brand = brand
}

// SetMinPrice sets or clears the minimum price constraint.
func (c *Catalog) SetMinPrice(min *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.MinPrice = min
}

// SetMaxPrice sets or clears the maximum price constraint.
func (c *Catalog) SetMaxPrice(max *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.MaxPrice = max
}

// SetMinRating sets or clears the minimum rating constraint.
func (c *Catalog) SetMinRating(min *float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.MinRating = min
}

// ClearFilters resets every constraint to its default.
func (c *Catalog) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = Filter{}
}

// Filter returns the active filter set.
func (c *Catalog) Filter() Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Products computes the filtered, sorted view of the loaded list.
func (c *Catalog) Products(key Sort) []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []models.Product
	for _, p := range c.products {
		if c.filter.Matches(p) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, key)
	return matched
}

// Product returns the currently viewed product, if any.
func (c *Catalog) Product() (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.product == nil {
		return models.Product{}, false
	}
	return *c.product, true
}

// Facets returns the derived category and brand lists.
func (c *Catalog) Facets() (categories, brands []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.categories...), append([]string(nil), c.brands...)
}

// Loading reports whether a fetch is in flight.
func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last recorded fetch error, empty if none.
func (c *Catalog) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
