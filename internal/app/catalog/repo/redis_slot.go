package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
)

// RedisSlot is a SlotStore in Redis. Keys are stored under prefix and never expire.
type RedisSlot struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSlot creates a RedisSlot.
func NewRedisSlot(client redis.UniversalClient, prefix string) *RedisSlot {
	return &RedisSlot{client: client, prefix: prefix}
}

func (s *RedisSlot) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, contracts.ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}
	return data, nil
}

func (s *RedisSlot) Write(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart slot: %w", err)
	}
	return nil
}
