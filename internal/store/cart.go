package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/shopkart/storefront/internal/mirror"
	"github.com/shopkart/storefront/internal/models"
)

// Cart is the quantity-aggregated collection of purchasable line
// items. Every mutation rewrites the durable mirror wholesale; mirror
// failures never surface to the caller.
type Cart struct {
	mu     sync.Mutex
	items  []models.CartItem
	mirror mirror.Store
}

func NewCart(m mirror.Store) *Cart {
	return &Cart{mirror: m}
}

// Init rehydrates the cart from the mirror. An absent or unparsable
// slot starts the cart empty.
func (c *Cart) Init(ctx context.Context) {
	data, err := c.mirror.Read(ctx, mirror.KeyCart)
	if err != nil {
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart: discarding unparsable mirror slot: %v", err)
		return
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// Add appends the item with quantity 1, or increments the quantity of
// an existing line item with the same product identifier.
func (c *Cart) Add(ctx context.Context, item models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	found := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		c.items = append(c.items, item)
	}

	c.persist(ctx)
}

// Remove drops all line items for the product identifier.
func (c *Cart) Remove(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept

	c.persist(ctx)
}

// SetQuantity sets the line item's quantity. Quantities of zero or
// below remove the line item instead.
func (c *Cart) SetQuantity(ctx context.Context, productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		break
	}

	c.persist(ctx)
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Subtotal is the sum of price times quantity over all line items.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// persist rewrites the mirror slot. Callers must hold the lock.
func (c *Cart) persist(ctx context.Context) {
	items := c.items
	if items == nil {
		items = []models.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: failed to encode items: %v", err)
		return
	}
	if err := c.mirror.Write(ctx, mirror.KeyCart, data); err != nil {
		log.Printf("cart: failed to write mirror: %v", err)
	}
}
