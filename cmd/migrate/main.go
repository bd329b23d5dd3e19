package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/repo"
	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/models/m_product"
	"github.com/light-bringer/furniture-catalog/internal/pkg/committer"
	"github.com/light-bringer/furniture-catalog/internal/pkg/logging"
	"github.com/light-bringer/furniture-catalog/internal/pkg/spannerdb"
	"github.com/light-bringer/furniture-catalog/migrations"
)

var (
	configPath     = flag.String("config", getEnvOrDefault("CONFIG_PATH", "config.yaml"), "Path to the YAML configuration file")
	databaseName   = flag.String("database", "", "Spanner database name (overrides catalog.spanner_database)")
	migrateDir     = flag.String("migrations", "", "Directory of migration SQL files (default: the embedded schema)")
	instanceConfig = flag.String("instance-config", spannerdb.EmulatorInstanceConfig, "Instance config used when the instance has to be created")
	seed           = flag.Bool("seed", false, "Replace the productos table with the bundled seed catalog")
)

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dbName := cfg.Catalog.SpannerDB
	if *databaseName != "" {
		dbName = *databaseName
	}
	name, err := spannerdb.ParseDatabaseName(dbName)
	if err != nil {
		return err
	}

	logger.Info("migrating database",
		zap.String("database", name.String()),
		zap.Bool("emulator", spannerdb.UsingEmulator()),
		zap.Bool("seed", *seed),
	)

	var schema fs.FS = migrations.FS
	if *migrateDir != "" {
		schema = os.DirFS(*migrateDir)
	}

	if err := spannerdb.NewBootstrapper(name, *instanceConfig, logger).Run(ctx, schema); err != nil {
		return err
	}

	if *seed {
		if err := seedProducts(ctx, name.String(), logger); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	logger.Info("migrations completed")
	return nil
}

// seedProducts replaces the catalog with the embedded seed in one commit.
func seedProducts(ctx context.Context, dbName string, logger *zap.Logger) error {
	products, err := repo.SeedProducts()
	if err != nil {
		return err
	}

	client, err := spanner.NewClient(ctx, dbName)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	model := m_product.NewModel()
	plan := committer.NewPlan()
	plan.Add(model.DeleteAllMut())
	for _, p := range products {
		plan.Add(model.UpsertMut(repo.ProductToData(p)))
	}

	if err := committer.NewCommitter(client).Apply(ctx, plan); err != nil {
		return err
	}

	logger.Info("seeded products", zap.Int("count", len(products)))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
