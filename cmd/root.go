package cmd

import (
	"fmt"
	"os"
	"time"

	"collection-adapter/core/config"
	"collection-adapter/core/logger"
	"collection-adapter/core/storage"
	"collection-adapter/feature/scenario"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "collection-adapter",
	Short: "Collection Adapter Service",
	Long: `Collection Adapter reconciles ordered collections into pooled, reusable
child components and exposes sessions and scenario replays over HTTP and the CLI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger shared by every command.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// newScenarioStore builds the scenario store, backed by the bucket when storage is enabled.
// The returned client is nil when storage is disabled.
func newScenarioStore(cfg *config.Config, logg *zap.Logger) (*scenario.Store, storage.Client, error) {
	var client storage.Client
	if cfg.Storage.Enabled {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}
	ttl := time.Duration(cfg.Storage.CacheTTLSeconds) * time.Second
	return scenario.NewStore(client, cfg.Storage.Bucket, cfg.Storage.Prefix, ttl, logg), client, nil
}
