package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront-orders/internal/core/cache"
	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/features/orders/domain"
	"storefront-orders/internal/features/orders/ports"

	"go.uber.org/zap"
)

const orderKeyPrefix = "order:"

// CachedRepository wraps an OrderRepository with a read-through cache for single orders.
// Cache failures are logged and the source is used instead.
type CachedRepository struct {
	source ports.OrderRepository
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedRepository creates a new CachedRepository.
func NewCachedRepository(source ports.OrderRepository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		source: source,
		cache:  c,
		ttl:    ttl,
	}
}

// GetOrder implements ports.OrderRepository. Missing orders are never cached.
func (r *CachedRepository) GetOrder(ctx context.Context, orderNumber string) (*domain.RawOrder, error) {
	log := logger.Named("orders.cache")
	key := orderKeyPrefix + orderNumber

	data, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var order domain.RawOrder
		jsonErr := json.Unmarshal(data, &order)
		if jsonErr == nil {
			return &order, nil
		}
		log.Warn("Discarding unreadable cached order", zap.String("key", key), zap.Error(jsonErr))
	case !errors.Is(err, cache.ErrCacheMiss):
		log.Warn("Order cache read failed", zap.String("key", key), zap.Error(err))
	}

	order, err := r.source.GetOrder(ctx, orderNumber)
	if err != nil || order == nil {
		return order, err
	}

	encoded, err := json.Marshal(order)
	if err != nil {
		log.Warn("Failed to encode order for cache", zap.String("key", key), zap.Error(err))
		return order, nil
	}
	if err := r.cache.Set(ctx, key, encoded, r.ttl); err != nil {
		log.Warn("Order cache write failed", zap.String("key", key), zap.Error(err))
	}

	return order, nil
}

// ListOrders implements ports.OrderRepository by delegating to the source.
func (r *CachedRepository) ListOrders(ctx context.Context, customerID string, opts ports.ListOptions) (*ports.ListResult, error) {
	return r.source.ListOrders(ctx, customerID, opts)
}
