// Package main implements the entry point for the DREAMS gateway, which
// validates requests for the DREAMS resources and forwards them to the
// persistence API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/softhouse/dreams-gateway/internal/config"
	"github.com/softhouse/dreams-gateway/internal/platform/logger"
	"github.com/softhouse/dreams-gateway/internal/redact"
	"github.com/spf13/cobra"
)

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"path to a YAML config file (defaults to $"+config.ConfigFileEnv+" or ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCheckCmd)
}

var rootCmd = &cobra.Command{
	Use:           "dreams-gateway",
	Short:         "Validating gateway in front of the DREAMS persistence API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration, then exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, "configuration OK")
		_, _ = fmt.Fprintf(out, "  server.port: %d\n", cfg.Server.Port)
		_, _ = fmt.Fprintf(out, "  server.log_level: %s\n", cfg.Server.LogLevel)
		_, _ = fmt.Fprintf(out, "  downstream.base_url: %s\n", redact.String(cfg.Downstream.BaseURL))
		_, _ = fmt.Fprintf(out, "  downstream.delete_concurrency: %d\n", cfg.Downstream.DeleteConcurrency)
		_, _ = fmt.Fprintf(out, "  metrics.enabled: %t\n", cfg.Metrics.Enabled)
		return nil
	},
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{
		Level:  cfg.Server.LogLevel,
		Format: cfg.Server.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"downstream", redact.String(cfg.Downstream.BaseURL))

	app, err := newApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.startHTTPServer(ctx, app.setupRouter())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
