package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/contracts"
	"github.com/light-bringer/furniture-catalog/internal/models/m_cart_slot"
	"github.com/light-bringer/furniture-catalog/internal/pkg/committer"
)

// SpannerSlot is a SlotStore over the cart_slots table.
type SpannerSlot struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_cart_slot.Model
}

// NewSpannerSlot creates a SpannerSlot.
func NewSpannerSlot(client *spanner.Client) *SpannerSlot {
	return &SpannerSlot{
		client:    client,
		committer: committer.NewCommitter(client),
		model:     m_cart_slot.NewModel(),
	}
}

func (s *SpannerSlot) Read(ctx context.Context, key string) ([]byte, error) {
	row, err := s.client.Single().ReadRow(ctx, m_cart_slot.TableName, spanner.Key{key}, m_cart_slot.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, contracts.ErrSlotEmpty
		}
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}

	var data m_cart_slot.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse cart slot: %w", err)
	}
	return []byte(data.Payload), nil
}

func (s *SpannerSlot) Write(ctx context.Context, key string, value []byte) error {
	plan := committer.NewPlan()
	plan.Add(s.model.UpsertMut(key, string(value)))

	if err := s.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to write cart slot: %w", err)
	}
	return nil
}
