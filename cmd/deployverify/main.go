package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dristi-ai/deployverify/pkg/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configFile string
	envFile    string
	timeout    time.Duration
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "deployverify",
	Short:         "Deployment verification for the Dristi AI application",
	Long:          "deployverify polls the deployed health endpoints and checks the local Python runtime the application is built with.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		zapCfg.OutputPaths = []string{"stderr"}
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		cfg, err = loadConfig(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("timeout") {
			if timeout <= 0 {
				return fmt.Errorf("--timeout must be positive, got %s", timeout)
			}
			cfg.Timeout = timeout
		}

		logger.Debug("configuration loaded",
			zap.String("config", configFile),
			zap.Duration("timeout", cfg.Timeout),
			zap.Int("platforms", len(cfg.Deployment.Platforms)),
			zap.Int("packages", len(cfg.Environment.Packages)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML configuration file (default: built-in Dristi AI settings)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file to load (default: .env if present)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for each network request or interpreter call")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
