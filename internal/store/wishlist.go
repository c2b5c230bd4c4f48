package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/shopkart/storefront/internal/mirror"
	"github.com/shopkart/storefront/internal/models"
)

// Wishlist is a deduplicated collection of saved products with the
// same mirroring discipline as the cart.
type Wishlist struct {
	mu     sync.Mutex
	items  []models.Product
	mirror mirror.Store
}

func NewWishlist(m mirror.Store) *Wishlist {
	return &Wishlist{mirror: m}
}

// Init rehydrates the wishlist from the mirror, failing open.
func (w *Wishlist) Init(ctx context.Context) {
	data, err := w.mirror.Read(ctx, mirror.KeyWishlist)
	if err != nil {
		return
	}

	var items []models.Product
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("wishlist: discarding unparsable mirror slot: %v", err)
		return
	}

	w.mu.Lock()
	w.items = items
	w.mu.Unlock()
}

// Add appends the product unless it is already present.
func (w *Wishlist) Add(ctx context.Context, product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.ID == product.ID {
			return
		}
	}
	w.items = append(w.items, product)

	w.persist(ctx)
}

// Remove drops the product with the given identifier.
func (w *Wishlist) Remove(ctx context.Context, productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.items[:0]
	for _, item := range w.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	w.items = kept

	w.persist(ctx)
}

// Clear empties the wishlist.
func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.items = nil
	w.persist(ctx)
}

// Contains reports whether the product is saved.
func (w *Wishlist) Contains(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the saved products.
func (w *Wishlist) Items() []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]models.Product, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Wishlist) persist(ctx context.Context) {
	items := w.items
	if items == nil {
		items = []models.Product{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("wishlist: failed to encode items: %v", err)
		return
	}
	if err := w.mirror.Write(ctx, mirror.KeyWishlist, data); err != nil {
		log.Printf("wishlist: failed to write mirror: %v", err)
	}
}
