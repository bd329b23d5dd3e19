package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/session"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/source"
	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
)

// ShopOptions holds all dependencies of a shop client session.
type ShopOptions struct {
	Source  contracts.ProductSource
	Slot    contracts.SlotStore
	Session *session.Session

	closers []func()
}

// NewShopOptions wires a Session to the configured product source and cart slot.
func NewShopOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger, clk clock.Clock) (*ShopOptions, error) {
	opts := &ShopOptions{}

	src, err := opts.newSource(cfg)
	if err != nil {
		opts.Close()
		return nil, err
	}
	opts.Source = src

	slot, err := opts.newSlot(ctx, cfg)
	if err != nil {
		opts.Close()
		return nil, err
	}
	opts.Slot = slot

	opts.Session = session.New(src, slot, clk, logger, session.WithSlotKey(cfg.Client.Slot.Key))
	opts.closers = append(opts.closers, opts.Session.Close)

	return opts, nil
}

func (s *ShopOptions) newSource(cfg *config.Config) (contracts.ProductSource, error) {
	switch cfg.Client.Transport {
	case config.TransportGRPC:
		conn, err := grpc.NewClient(cfg.Client.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC client: %w", err)
		}
		s.closers = append(s.closers, func() { _ = conn.Close() })
		return source.NewGRPCSource(conn, cfg.Client.RequestTimeout), nil
	default:
		return source.NewHTTPSource(cfg.Client.APIURL, cfg.Client.RequestTimeout), nil
	}
}

func (s *ShopOptions) newSlot(ctx context.Context, cfg *config.Config) (contracts.SlotStore, error) {
	slotCfg := cfg.Client.Slot

	switch slotCfg.Backend {
	case config.SlotMemory:
		return repo.NewMemorySlot(), nil

	case config.SlotRedis:
		client := redis.NewClient(&redis.Options{Addr: slotCfg.RedisAddr})
		s.closers = append(s.closers, func() { _ = client.Close() })
		return repo.NewRedisSlot(client, slotCfg.RedisPrefix), nil

	case config.SlotSpanner:
		client, err := spanner.NewClient(ctx, slotCfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.closers = append(s.closers, client.Close)
		return repo.NewSpannerSlot(client), nil

	default:
		slot, err := repo.OpenSQLiteSlot(slotCfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = slot.Close() })
		return slot, nil
	}
}

// Close releases resources in reverse order of creation.
func (s *ShopOptions) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
