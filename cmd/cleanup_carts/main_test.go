package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaleStatement(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	stmt := staleStatement("DELETE FROM", cutoff)

	assert.Equal(t, "DELETE FROM cart_slots WHERE updated_at < @cutoff", stmt.SQL)
	assert.Equal(t, cutoff, stmt.Params["cutoff"])
}

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 22, 12, 0, 0, 0, time.UTC), retentionCutoff(now, 7))
}

func TestRun_RejectsRetentionBelowOneDay(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), Options{
		SpannerDB:     "projects/p/instances/i/databases/d",
		RetentionDays: 0,
	})

	assert.ErrorContains(t, err, "retention must be at least 1 day")
}
