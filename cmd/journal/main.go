// Command journal is the operator CLI: migrations, ad-hoc reports and
// summaries, development tokens and demo data.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodjournal-backend/internal/app"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "journal",
		Short:         "Mood journal reporting tools",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (overrides CONFIG_PATH)")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newSummarizeCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newEnvCmd())

	return rootCmd
}

// loadConfig reads configuration and installs the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	if configPath != "" {
		if err := os.Setenv("CONFIG_PATH", configPath); err != nil {
			return nil, nil, fmt.Errorf("set CONFIG_PATH: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// openContainer loads configuration and connects to the backing stores.
func openContainer(ctx context.Context) (*app.Container, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewContainer(ctx, cfg, logger)
}

func parseUserFlag(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("--user must be a non-nil UUID, got %q", raw)
	}
	return id, nil
}
