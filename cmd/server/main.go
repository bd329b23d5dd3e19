package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/pkg/logging"
	"github.com/light-bringer/furniture-catalog/internal/services"
	"github.com/light-bringer/furniture-catalog/internal/transport/grpc/catalog"
)

const readHeaderTimeout = 10 * time.Second

var configPath = flag.String("config", getEnvOrDefault("CONFIG_PATH", "config.yaml"), "Path to the YAML configuration file")

func main() {
	flag.Parse()

	exitCode, err := run()
	if err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
	os.Exit(exitCode)
}

func run() (int, error) {
	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return 1, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return 1, fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting furniture catalog service",
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.String("http_port", cfg.Server.HTTPPort),
		zap.String("grpc_port", cfg.Server.GRPCPort),
		zap.Bool("cache_enabled", cfg.Catalog.CacheAddr != ""),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, logger)
	if err != nil {
		return 1, fmt.Errorf("failed to initialize service: %w", err)
	}

	// 3. gRPC server with catalog, health and reflection
	grpcServer := grpc.NewServer()
	catalog.RegisterCatalogServiceServer(grpcServer, serviceOpts.CatalogHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(catalog.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		serviceOpts.Close()
		return 1, fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	go func() {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	// 4. HTTP server
	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.HTTPPort,
		Handler:           serviceOpts.HTTPHandler.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	// 5. Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				return httpServer.Shutdown(ctx)
			},
			"grpc": func(ctx context.Context) error {
				healthServer.Shutdown()
				grpcServer.GracefulStop()
				return nil
			},
			"resources": func(ctx context.Context) error {
				serviceOpts.Close()
				return nil
			},
		},
	)

	exitCode := <-wait
	logger.Info("server exited", zap.Int("exit_code", exitCode))
	return exitCode, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
