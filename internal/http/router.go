package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shopkart/storefront/internal/auth"
	"github.com/shopkart/storefront/internal/http/handlers"
	rl "github.com/shopkart/storefront/internal/http/rate_limiter"
	"github.com/shopkart/storefront/internal/models"
)

// UserFromContext returns the identity stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// NewRouter assembles the storefront API.
func NewRouter(h *handlers.Handler, tokens *auth.Manager, logger zerolog.Logger, limiter *rl.VisitorLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger))
	r.Use(RateLimitMiddleware(limiter))

	r.Get("/products", h.ListProductsHandler)
	r.Get("/products/facets", h.FacetsHandler)
	r.Get("/products/{id}", h.GetProductHandler)
	r.Post("/products/filters", h.SetFilterHandler)
	r.Delete("/products/filters", h.ClearFiltersHandler)

	r.Get("/cart", h.GetCartHandler)
	r.Post("/cart/items", h.AddToCartHandler)
	r.Put("/cart/items/{productId}", h.SetCartQuantityHandler)
	r.Delete("/cart/items/{productId}", h.RemoveFromCartHandler)
	r.Delete("/cart", h.ClearCartHandler)

	r.Get("/wishlist", h.GetWishlistHandler)
	r.Post("/wishlist/{productId}", h.AddToWishlistHandler)
	r.Delete("/wishlist/{productId}", h.RemoveFromWishlistHandler)

	r.Post("/auth/login", h.LoginHandler)
	r.Post("/auth/register", h.RegisterHandler)
	r.Post("/auth/logout", h.LogoutHandler)
	r.Get("/auth/session", h.SessionHandler)

	r.Get("/notifications", h.ListNotificationsHandler)
	r.Delete("/notifications/{id}", h.DismissNotificationHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(tokens))
		r.Get("/checkout/totals", h.CheckoutTotalsHandler)
		r.Post("/checkout", h.CheckoutHandler)
		r.Get("/orders", h.ListOrdersHandler)
		r.Get("/orders/{id}", h.GetOrderHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(tokens))
		r.Use(AdminMiddleware)
		r.Get("/admin/orders", h.AdminOrdersHandler)
	})

	return r
}
