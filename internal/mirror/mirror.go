// Package mirror provides the durable key/value slot that the
// storefront stores keep in sync with their in-memory state.
package mirror

import (
	"context"
	"errors"
)

// Well-known slot keys.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyToken    = "token"
)

var ErrNotFound = errors.New("mirror: key not found")

// Store is the persistence port injected into the stores. Each slot
// holds a single JSON blob that is rewritten wholesale on every
// mutation.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
