package session

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/app/catalog/domain"
)

// DefaultSlotKey is the slot key holding the serialized cart.
const DefaultSlotKey = "cart"

// Bridge syncs the cart with one durable slot. It never fails: read problems
// yield an empty cart and write problems are only logged.
type Bridge struct {
	slot   contracts.SlotStore
	key    string
	logger *zap.Logger
}

// NewBridge creates a Bridge writing under key. An empty key uses DefaultSlotKey.
func NewBridge(slot contracts.SlotStore, key string, logger *zap.Logger) *Bridge {
	if key == "" {
		key = DefaultSlotKey
	}
	return &Bridge{slot: slot, key: key, logger: logger}
}

// Key returns the slot key.
func (b *Bridge) Key() string {
	return b.key
}

// Restore reads the persisted cart lines. An empty slot, a read error or a
// payload that is not an array of line objects all restore an empty cart.
func (b *Bridge) Restore(ctx context.Context) []domain.CartLine {
	data, err := b.slot.Read(ctx, b.key)
	if errors.Is(err, contracts.ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		b.logger.Warn("failed to read cart slot", zap.String("key", b.key), zap.Error(err))
		return nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		b.logger.Warn("discarding malformed cart",
			zap.String("key", b.key),
			zap.Error(errors.Join(domain.ErrMalformedCart, err)))
		return nil
	}
	return lines
}

// Persist writes the full cart. Errors are logged and swallowed.
func (b *Bridge) Persist(ctx context.Context, lines []domain.CartLine) {
	if lines == nil {
		lines = make([]domain.CartLine, 0)
	}

	data, err := json.Marshal(lines)
	if err != nil {
		b.logger.Error("failed to encode cart", zap.Error(err))
		return
	}

	if err := b.slot.Write(ctx, b.key, data); err != nil {
		b.logger.Warn("failed to write cart slot", zap.String("key", b.key), zap.Error(err))
	}
}
