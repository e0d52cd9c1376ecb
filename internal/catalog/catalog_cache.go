package catalog

import (
	"context"
	"encoding/json"
	"time"

	"laptop-store-api/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	snapshotKey = "catalog:laptops"
	snapshotTTL = 5 * time.Minute
)

//go:generate mockgen -source=catalog_cache.go -destination=../mock/catalog/catalog_cache_mock.go -package=mock
type Cache interface {
	GetSnapshot(ctx context.Context) ([]Laptop, bool)
	SetSnapshot(ctx context.Context, laptops []Laptop)
	Invalidate(ctx context.Context)
}

// redisCache keeps the full catalog as one short-lived JSON blob.
// Cache problems are logged and treated as misses; Postgres is always
// the source of truth.
type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) GetSnapshot(ctx context.Context) ([]Laptop, bool) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var laptops []Laptop
	if err := json.Unmarshal(raw, &laptops); err != nil {
		logger.Log.Warn("catalog cache decode failed", zap.Error(err))
		return nil, false
	}
	return laptops, true
}

func (c *redisCache) SetSnapshot(ctx context.Context, laptops []Laptop) {
	raw, err := json.Marshal(laptops)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, snapshotKey, raw, snapshotTTL).Err(); err != nil {
		logger.Log.Warn("catalog cache write failed", zap.Error(err))
	}
}

func (c *redisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}
