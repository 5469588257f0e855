package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ziadkadry99/orgsite/internal/config"
	"github.com/ziadkadry99/orgsite/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `orgsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// withLogger attaches the command's logger to ctx. --verbose forces debug
// output regardless of log_level.
func withLogger(ctx context.Context, cfg *config.Config) context.Context {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.WithLogger(ctx, logging.New(os.Stderr, level))
}
