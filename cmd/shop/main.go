// Command shop is a terminal storefront for the furniture catalog. Every
// invocation opens a session against the catalog API, restores the saved
// cart, runs one action and persists the cart again.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/furniture-catalog/internal/app/catalog/session"
	"github.com/light-bringer/furniture-catalog/internal/config"
	"github.com/light-bringer/furniture-catalog/internal/pkg/clock"
	"github.com/light-bringer/furniture-catalog/internal/pkg/logging"
	"github.com/light-bringer/furniture-catalog/internal/services"
)

var (
	configPath string
	ephemeral  bool
	apiURL     string

	shop *services.ShopOptions
)

var rootCmd = &cobra.Command{
	Use:           "shop",
	Short:         "Browse the furniture catalog and manage your cart",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openSession(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", envOrDefault("CONFIG_PATH", "config.yaml"), "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the cart in memory only")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "Catalog API base URL (overrides config)")

	rootCmd.AddCommand(productsCmd, showCmd, cartCmd)
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	if shop != nil {
		shop.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func openSession(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if ephemeral {
		cfg.Client.Slot.Backend = config.SlotMemory
	}
	if apiURL != "" {
		cfg.Client.Transport = config.TransportHTTP
		cfg.Client.APIURL = apiURL
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	shop, err = services.NewShopOptions(ctx, cfg, logger, clock.NewRealClock())
	if err != nil {
		return fmt.Errorf("failed to open shop session: %w", err)
	}

	if err := shop.Session.Start(ctx); err != nil {
		logger.Debug("catalog unavailable", zap.Error(err))
		return errors.New(session.LoadErrorMessage)
	}
	return nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
