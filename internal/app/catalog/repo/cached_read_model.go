package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

const catalogCacheKey = "productos"

// CachedReadModel is a cache-aside decorator keeping the whole catalog in Redis.
// Concurrent misses share one load, and Redis failures fall through to the
// wrapped read model.
type CachedReadModel struct {
	next   contracts.ReadModel
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// NewCachedReadModel wraps next with a Redis cache.
func NewCachedReadModel(next contracts.ReadModel, client redis.UniversalClient, prefix string, ttl time.Duration, logger *zap.Logger) *CachedReadModel {
	return &CachedReadModel{
		next:   next,
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

// ListProducts returns the cached catalog, loading it on a miss.
func (rm *CachedReadModel) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if products, ok := rm.get(ctx); ok {
		return products, nil
	}

	// The shared load outlives any single caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	ch := rm.group.DoChan(catalogCacheKey, func() (interface{}, error) {
		products, err := rm.next.ListProducts(loadCtx)
		if err != nil {
			return nil, err
		}
		rm.set(loadCtx, products)
		return products, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return domain.CopyProducts(res.Val.([]domain.Product)), nil
	}
}

// GetProductByID resolves the product from the cached catalog.
func (rm *CachedReadModel) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	products, err := rm.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := domain.FindProduct(products, productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Invalidate drops the cached catalog.
func (rm *CachedReadModel) Invalidate(ctx context.Context) error {
	return rm.client.Del(ctx, rm.prefix+catalogCacheKey).Err()
}

func (rm *CachedReadModel) get(ctx context.Context) ([]domain.Product, bool) {
	data, err := rm.client.Get(ctx, rm.prefix+catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rm.logger.Warn("catalog cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		rm.logger.Warn("catalog cache entry is corrupt", zap.Error(err))
		return nil, false
	}
	return products, true
}

func (rm *CachedReadModel) set(ctx context.Context, products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		rm.logger.Warn("failed to encode catalog for cache", zap.Error(err))
		return
	}
	if err := rm.client.Set(ctx, rm.prefix+catalogCacheKey, data, rm.ttl).Err(); err != nil {
		rm.logger.Warn("catalog cache set failed", zap.Error(err))
	}
}
