package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/models/m_cart_slot"
	"github.com/light-bringer/furniture-catalog/internal/pkg/logging"
)

// Options for the abandoned cart cleanup job.
type Options struct {
	SpannerDB     string
	RetentionDays int
	DryRun        bool
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML configuration file")
	opts := Options{}
	flag.StringVar(&opts.SpannerDB, "database", "", "Spanner database (overrides client.slot.spanner_database)")
	flag.IntVar(&opts.RetentionDays, "retention", 60, "Delete carts not written for this many days")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if err := run(context.Background(), *configPath, opts); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
}

func run(ctx context.Context, configPath string, opts Options) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.SpannerDB == "" {
		opts.SpannerDB = cfg.Client.Slot.SpannerDB
	}
	if opts.RetentionDays < 1 {
		return fmt.Errorf("retention must be at least 1 day, got %d", opts.RetentionDays)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return cleanupCarts(ctx, opts, time.Now().UTC(), logger)
}

func cleanupCarts(ctx context.Context, opts Options, now time.Time, logger *zap.Logger) error {
	client, err := spanner.NewClient(ctx, opts.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	cutoff := retentionCutoff(now, opts.RetentionDays)
	logger = logger.With(
		zap.String("database", opts.SpannerDB),
		zap.Time("cutoff", cutoff),
		zap.Bool("dry_run", opts.DryRun),
	)
	logger.Info("starting cart cleanup")

	if opts.DryRun {
		count, err := countStale(ctx, client.Single(), cutoff)
		if err != nil {
			return err
		}
		logger.Info("carts eligible for deletion", zap.Int64("count", count))
		return nil
	}

	_, err = client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		count, err := countStale(ctx, txn, cutoff)
		if err != nil {
			return err
		}
		if count == 0 {
			logger.Info("no abandoned carts to delete")
			return nil
		}

		rowCount, err := txn.Update(ctx, staleStatement("DELETE FROM", cutoff))
		if err != nil {
			return fmt.Errorf("failed to delete carts: %w", err)
		}

		logger.Info("deleted carts", zap.Int64("count", rowCount))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return nil
}

// retentionCutoff is the instant before which a cart counts as abandoned.
func retentionCutoff(now time.Time, retentionDays int) time.Time {
	return now.AddDate(0, 0, -retentionDays)
}

type queryer interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

func countStale(ctx context.Context, q queryer, cutoff time.Time) (int64, error) {
	iter := q.Query(ctx, staleStatement("SELECT COUNT(*) FROM", cutoff))
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count carts: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}
	return count, nil
}

func staleStatement(verb string, cutoff time.Time) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf("%s %s WHERE %s < @cutoff", verb, m_cart_slot.TableName, m_cart_slot.UpdatedAt),
		Params: map[string]interface{}{"cutoff": cutoff},
	}
}
