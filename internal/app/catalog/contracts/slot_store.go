package contracts

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by SlotStore.Read when nothing was stored under the key.
var ErrSlotEmpty = errors.New("slot is empty")

// SlotStore is a durable key-value slot holding opaque serialized client state.
type SlotStore interface {
	// Read returns the stored bytes, or ErrSlotEmpty when the key is unset
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the stored bytes for the key
	Write(ctx context.Context, key string, value []byte) error
}
