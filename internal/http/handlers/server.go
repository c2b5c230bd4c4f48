package handlers

import (
	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/store"
)

// Handler bundles the stores behind the storefront API. All
// dependencies are injected at startup.
type Handler struct {
	catalog       *store.Catalog
	cart          *store.Cart
	wishlist      *store.Wishlist
	session       *store.Session
	notifications *store.Notifications
	checkout      *checkout.Service
	gateway       gateway.Gateway
}

func New(
	catalog *store.Catalog,
	cart *store.Cart,
	wishlist *store.Wishlist,
	session *store.Session,
	notifications *store.Notifications,
	checkoutSvc *checkout.Service,
	gw gateway.Gateway,
) *Handler {
	return &Handler{
		catalog:       catalog,
		cart:          cart,
		wishlist:      wishlist,
		session:       session,
		notifications: notifications,
		checkout:      checkoutSvc,
		gateway:       gw,
	}
}
