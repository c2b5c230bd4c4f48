package mirror_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkart/storefront/internal/mirror"
)

func TestStores(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func(t *testing.T) mirror.Store{
		"memory": func(t *testing.T) mirror.Store {
			return mirror.NewMemoryStore()
		},
		"file": func(t *testing.T) mirror.Store {
			s, err := mirror.NewFileStore(t.TempDir())
			require.NoError(t, err)
			return s
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("round trip", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Write(ctx, mirror.KeyCart, []byte(`[{"id":"1"}]`)))

				data, err := s.Read(ctx, mirror.KeyCart)
				require.NoError(t, err)
				assert.Equal(t, `[{"id":"1"}]`, string(data))
			})

			t.Run("overwrite replaces the slot wholesale", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Write(ctx, mirror.KeyWishlist, []byte("old")))
				require.NoError(t, s.Write(ctx, mirror.KeyWishlist, []byte("new")))

				data, err := s.Read(ctx, mirror.KeyWishlist)
				require.NoError(t, err)
				assert.Equal(t, "new", string(data))
			})

			t.Run("missing slot", func(t *testing.T) {
				s := newStore(t)
				_, err := s.Read(ctx, mirror.KeyToken)
				assert.ErrorIs(t, err, mirror.ErrNotFound)
			})

			t.Run("delete", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Write(ctx, mirror.KeyToken, []byte("tok")))
				require.NoError(t, s.Delete(ctx, mirror.KeyToken))

				_, err := s.Read(ctx, mirror.KeyToken)
				assert.ErrorIs(t, err, mirror.ErrNotFound)
			})

			t.Run("delete is idempotent", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Delete(ctx, mirror.KeyToken))
			})

			t.Run("slots are independent", func(t *testing.T) {
				s := newStore(t)
				require.NoError(t, s.Write(ctx, mirror.KeyCart, []byte("cart")))
				require.NoError(t, s.Write(ctx, mirror.KeyWishlist, []byte("wishlist")))
				require.NoError(t, s.Delete(ctx, mirror.KeyCart))

				data, err := s.Read(ctx, mirror.KeyWishlist)
				require.NoError(t, err)
				assert.Equal(t, "wishlist", string(data))
			})
		})
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := mirror.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Write(ctx, mirror.KeyCart, []byte("durable")))

	second, err := mirror.NewFileStore(dir)
	require.NoError(t, err)

	data, err := second.Read(ctx, mirror.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "durable", string(data))
}
