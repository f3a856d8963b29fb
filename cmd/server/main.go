package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tammam101/temox/backend/internal/config"
	"github.com/tammam101/temox/backend/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loader reads the configuration and builds the logger from it.
type loader func() (*config.Config, *slog.Logger, error)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "server",
		Short:         "TEMOX website and registration API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	load := func() (*config.Config, *slog.Logger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return nil, nil, fmt.Errorf("config: %w", err)
		}
		log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
		slog.SetDefault(log)
		return cfg, log, nil
	}

	serve := newServeCmd(load)
	root.AddCommand(serve, newMigrateCmd(load), newAssetsCmd(load))
	// bare "server" serves
	root.RunE = serve.RunE
	return root
}
