package spannerdb

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmulatorInstanceConfig is the only instance config the emulator accepts.
const EmulatorInstanceConfig = "emulator-config"

// Bootstrapper creates the instance and database when missing and brings the
// schema up to date.
type Bootstrapper struct {
	name           DatabaseName
	instanceConfig string
	logger         *zap.Logger
}

// NewBootstrapper creates a Bootstrapper for the database name.
func NewBootstrapper(name DatabaseName, instanceConfig string, logger *zap.Logger) *Bootstrapper {
	if instanceConfig == "" {
		instanceConfig = EmulatorInstanceConfig
	}
	return &Bootstrapper{name: name, instanceConfig: instanceConfig, logger: logger}
}

// Run ensures the instance and database exist, then applies the migrations of fsys.
func (b *Bootstrapper) Run(ctx context.Context, fsys fs.FS) error {
	if err := b.EnsureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	if err := b.EnsureDatabase(ctx); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	migrations, err := LoadMigrations(fsys)
	if err != nil {
		return err
	}
	if err := b.ApplyMigrations(ctx, migrations); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// EnsureInstance creates the instance if it does not exist.
func (b *Bootstrapper) EnsureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	log := b.logger.With(zap.String("instance", b.name.InstancePath()))

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: b.name.InstancePath()})
	if err == nil {
		log.Debug("instance exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get instance: %w", err)
	}

	log.Info("creating instance")
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     b.name.ProjectPath(),
		InstanceId: b.name.Instance,
		Instance: &instancepb.Instance{
			Config:      b.name.ProjectPath() + "/instanceConfigs/" + b.instanceConfig,
			DisplayName: b.name.Instance,
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

// EnsureDatabase creates the database if it does not exist.
func (b *Bootstrapper) EnsureDatabase(ctx context.Context) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer admin.Close()

	log := b.logger.With(zap.String("database", b.name.String()))

	_, err = admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: b.name.String()})
	if err == nil {
		log.Debug("database exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get database: %w", err)
	}

	log.Info("creating database")
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          b.name.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", b.name.Database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

// ApplyMigrations runs every statement not yet reflected in the database DDL,
// one migration per schema update.
func (b *Bootstrapper) ApplyMigrations(ctx context.Context, migrations []Migration) error {
	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer admin.Close()

	for _, m := range migrations {
		ddl, err := admin.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: b.name.String()})
		if err != nil {
			return fmt.Errorf("failed to read database DDL: %w", err)
		}

		pending := PendingStatements(m.Statements, ddl.GetStatements())
		if len(pending) == 0 {
			b.logger.Debug("migration already applied", zap.String("migration", m.Name))
			continue
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   b.name.String(),
			Statements: pending,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", m.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", m.Name, err)
		}

		b.logger.Info("applied migration",
			zap.String("migration", m.Name),
			zap.Int("statements", len(pending)))
	}
	return nil
}

// UsingEmulator reports whether SPANNER_EMULATOR_HOST is set.
func UsingEmulator() bool {
	return os.Getenv("SPANNER_EMULATOR_HOST") != ""
}
