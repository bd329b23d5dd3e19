package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/transport/grpc/catalog"
	httphandler "github.com/light-bringer/furniture-catalog/internal/transport/http"
)

// ServiceOptions holds all dependencies of the catalog server.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *redis.Client
	ReadModel      contracts.ReadModel
	CatalogHandler *catalog.Handler
	HTTPHandler    *httphandler.CatalogHandler
}

// NewServiceOptions creates and wires up all server dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}

	// 1. Catalog read model
	switch cfg.Catalog.Source {
	case config.SourceSpanner:
		client, err := spanner.NewClient(ctx, cfg.Catalog.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = client
		opts.ReadModel = repo.NewSpannerReadModel(client)
	default:
		rm, err := repo.NewSeedReadModel()
		if err != nil {
			return nil, err
		}
		opts.ReadModel = rm
	}

	// 2. Optional Redis cache in front of it
	if cfg.Catalog.CacheAddr != "" {
		opts.RedisClient = redis.NewClient(&redis.Options{Addr: cfg.Catalog.CacheAddr})
		opts.ReadModel = repo.NewCachedReadModel(opts.ReadModel, opts.RedisClient, cfg.Catalog.CacheKey, cfg.Catalog.CacheTTL, logger)
	}

	// 3. Queries
	getProductQuery := get_product.NewQuery(opts.ReadModel)
	listProductsQuery := list_products.NewQuery(opts.ReadModel)

	// 4. Transport handlers
	opts.CatalogHandler = catalog.NewHandler(getProductQuery, listProductsQuery, logger)
	opts.HTTPHandler = httphandler.NewCatalogHandler(
		getProductQuery,
		listProductsQuery,
		logger,
		cfg.Server.PublicDir,
		cfg.Server.EnableEcho,
	)

	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
