package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/utilkit/internal/config"
	"github.com/aretw0/utilkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "utilkit",
	Short: "utilkit runs small text, number, set and file helpers",
	Long: `utilkit exposes the helpers of the utilkit library on the command line:
string transforms, hashing, primes and factorials, set operations over lists,
and conversions between JSON, YAML, TOML and CSV files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file (default $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		loaded.LogLevel = level
		if err := loaded.Validate(); err != nil {
			return err
		}
	}

	cfg = loaded
	logger = logging.New(cfg.Level())
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", path, "log_level", cfg.LogLevel)
	return nil
}
