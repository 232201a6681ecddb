package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/riveting/internal/cli"
	"github.com/aretw0/riveting/internal/config"
	"github.com/aretw0/riveting/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riveting",
	Short: "Riveting is a unidirectional data-flow screen runtime",
	Long: `Riveting runs a superhero search screen built from an interactor,
a reducer and a feature controller. Drive it from the terminal, over HTTP,
or as MCP tools.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addConfigFlags(rootCmd)
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides config")
	cmd.PersistentFlags().String("catalog", "", "Catalog backend (memory, redis, loam); overrides config")
}

// loadConfig applies command-line overrides on top of config.Load.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if backend, _ := cmd.Flags().GetString("catalog"); backend != "" {
		cfg.Catalog.Backend = backend
	}
	return cfg, cfg.Validate()
}

// openApp loads the config and wires the application. Logs go to stderr so
// stdout stays free for the screen or the MCP transport.
func openApp(ctx context.Context, cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	slog.SetDefault(logger)

	return cli.NewApp(ctx, cfg, logger)
}
