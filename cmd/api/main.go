package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"storefront-orders/internal/core/cache"
	"storefront-orders/internal/core/config"
	"storefront-orders/internal/core/httpclient"
	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/core/proxy"
	"storefront-orders/internal/core/server"
	"storefront-orders/internal/core/validation"
	orderadapter "storefront-orders/internal/features/orders/adapters"
	orderhandler "storefront-orders/internal/features/orders/handler"
	orderports "storefront-orders/internal/features/orders/ports"
	orderservice "storefront-orders/internal/features/orders/service"
	trackingadapter "storefront-orders/internal/features/tracking/adapters"
	trackinghandler "storefront-orders/internal/features/tracking/handler"
	"storefront-orders/internal/features/tracking/ports"
	trackingservice "storefront-orders/internal/features/tracking/service"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "storefront-orders:"

// @title Storefront Orders API
// @version 1.0
// @description Order history, order detail and fulfillment views for the storefront account pages.
// @contact.name API Support
// @contact.email support@storefront-orders.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("order_source", cfg.Orders.Source),
	)

	repo, err := newOrderRepository(cfg)
	if err != nil {
		l.Fatal("Failed to initialize order repository", zap.Error(err))
	}

	if cfg.Cache.RedisURL != "" {
		redisCache, err := connectCache(cfg.Cache.RedisURL)
		if err != nil {
			l.Warn("Order cache disabled", zap.Error(err))
		} else {
			defer redisCache.Close()
			repo = orderadapter.NewCachedRepository(repo, redisCache, cfg.Cache.OrderTTL())
			l.Info("Order cache enabled", zap.Duration("ttl", cfg.Cache.OrderTTL()))
		}
	}

	// Initialize Tracking Providers
	carrierTemplates := []struct{ carrier, template string }{
		{"ups", cfg.Carriers.UPSURL},
		{"usps", cfg.Carriers.USPSURL},
		{"fedex", cfg.Carriers.FedExURL},
		{"dhl", cfg.Carriers.DHLURL},
	}

	trackingProviders := make([]ports.TrackingProvider, 0, len(carrierTemplates))
	for _, ct := range carrierTemplates {
		if ct.template != "" {
			trackingProviders = append(trackingProviders, trackingadapter.NewTemplateAdapter(ct.carrier, ct.template))
		}
	}

	// Initialize Tracking Service & Handler
	trackingSvc := trackingservice.NewTrackingService(trackingProviders)
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	// Initialize Order Service & Handler
	validator, err := validation.New()
	if err != nil {
		l.Fatal("Failed to initialize validator", zap.Error(err))
	}

	orderSvc := orderservice.NewOrderService(repo, trackingSvc, orderservice.Options{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
		TilePx:          float64(cfg.Thumbnails.TilePx),
		GapPx:           float64(cfg.Thumbnails.GapPx),
	})
	orderHdl := orderhandler.NewOrderHandler(orderSvc, validator)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/orders/:number", orderHdl.GetOrder)
	srv.App.Get("/orders/:number/thumbnails", orderHdl.GetThumbnails)
	srv.App.Get("/customers/:customerId/orders", orderHdl.ListCustomerOrders)
	srv.App.Get("/tracking/:number", trackingHdl.GetTrackingLink)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
	l.Info("Server stopped")
}

func newOrderRepository(cfg *config.AppConfig) (orderports.OrderRepository, error) {
	switch cfg.Orders.Source {
	case config.OrderSourceHTTP:
		client := httpclient.NewClient(cfg.Orders.Timeout(), proxy.FromConfig(cfg.Proxy))
		return orderadapter.NewHTTPRepository(client, cfg.Orders.APIURL, cfg.Orders.APIKey), nil
	case config.OrderSourceFixture:
		return orderadapter.NewFixtureRepository(cfg.Orders.FixturePath)
	default:
		return nil, fmt.Errorf("unknown order source %q", cfg.Orders.Source)
	}
}

func connectCache(redisURL string) (*cache.RedisAdapter, error) {
	redisCache, err := cache.NewRedisAdapter(redisURL, cacheKeyPrefix)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		redisCache.Close()
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}
	return redisCache, nil
}
