package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopkart/storefront/internal/auth"
	"github.com/shopkart/storefront/internal/checkout"
	"github.com/shopkart/storefront/internal/config"
	"github.com/shopkart/storefront/internal/gateway"
	api "github.com/shopkart/storefront/internal/http"
	"github.com/shopkart/storefront/internal/http/handlers"
	rl "github.com/shopkart/storefront/internal/http/rate_limiter"
	"github.com/shopkart/storefront/internal/mirror"
	"github.com/shopkart/storefront/internal/store"
)

// @title Shopkart Storefront API
// @version 1.0
// @description Storefront BFF: catalog, cart, wishlist, session, checkout.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	ctx := context.Background()

	durable, err := newMirror(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Could not open durable store: %v", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret)

	var gw gateway.Gateway
	switch cfg.Gateway.Mode {
	case config.GatewayHTTP:
		gw = gateway.NewClient(cfg.Gateway.BaseURL)
		log.Println("✅ Using HTTP gateway:", cfg.Gateway.BaseURL)
	default:
		gw = gateway.NewMock(tokens, cfg.Gateway.MinDelay, cfg.Gateway.MaxDelay)
		log.Println("✅ Using mock gateway with seeded catalog")
	}

	catalog := store.NewCatalog(gw)
	cart := store.NewCart(durable)
	wishlist := store.NewWishlist(durable)
	session := store.NewSession(gw, durable)
	notifications := store.NewNotifications(cfg.NotificationTTL)
	defer notifications.Stop()

	cart.Init(ctx)
	wishlist.Init(ctx)
	session.Init(ctx)

	checkoutSvc := checkout.NewService(gw, cart, notifications)

	h := handlers.New(catalog, cart, wishlist, session, notifications, checkoutSvc, gw)

	limiter := rl.NewVisitorLimiter(1, 3) // 1 request/sec, burst of 3
	go limiter.StartCleanupLoop()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	router := api.NewRouter(h, tokens, logger, limiter)

	log.Println("✅ Server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}

func newMirror(ctx context.Context, cfg config.Config) (mirror.Store, error) {
	switch cfg.Mirror.Backend {
	case config.MirrorRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Mirror.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		log.Println("✅ Mirroring state to Redis at", cfg.Mirror.RedisAddr)
		return mirror.NewRedisStore(rdb), nil
	case config.MirrorPostgres:
		store, err := mirror.OpenPostgres(cfg.Mirror.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Mirroring state to Postgres")
		return store, nil
	case config.MirrorMemory:
		return mirror.NewMemoryStore(), nil
	default:
		log.Println("✅ Mirroring state to directory", cfg.Mirror.Dir)
		return mirror.NewFileStore(cfg.Mirror.Dir)
	}
}
