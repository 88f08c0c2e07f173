package cache

import (
	"context"
	"encoding/json"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"
)

const productListKey = "loanProducts:all"

// RedisStore is the slice of the Redis adapter the cache uses.
type RedisStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ProductCache keeps the unfiltered product listing in Redis for a short TTL.
// Search results are never cached. A nil ProductCache is a no-op so the
// service degrades cleanly when Redis is down at startup.
type ProductCache struct {
	store RedisStore
	ttl   time.Duration
}

func NewProductCache(store RedisStore, ttl time.Duration) *ProductCache {
	return &ProductCache{store: store, ttl: ttl}
}

func (c *ProductCache) GetAll(ctx context.Context) ([]models.LoanProduct, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}

	raw, err := c.store.Get(ctx, productListKey)
	if err != nil {
		return nil, false
	}

	var products []models.LoanProduct
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Warn(ctx, "Dropping undecodable product cache entry: %v", err)
		_ = c.store.Delete(ctx, productListKey)
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetAll(ctx context.Context, products []models.LoanProduct) {
	if c == nil || c.store == nil {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		logger.Error(ctx, "Failed to marshal products for cache: %v", err)
		return
	}
	if err := c.store.Set(ctx, productListKey, raw, c.ttl); err != nil {
		logger.Warn(ctx, "Failed to write product cache: %v", err)
	}
}

// Invalidate is called after every product mutation.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	if err := c.store.Delete(ctx, productListKey); err != nil {
		logger.Warn(ctx, "Failed to invalidate product cache: %v", err)
	}
}
