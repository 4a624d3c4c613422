// Package commands implements the catalogpress subcommands.
package commands

import (
	"os"
	"strconv"

	"github.com/crawlkit/catalogpress/internal/cli/config"
	intconfig "github.com/crawlkit/catalogpress/internal/config"
)

// getConfig returns the current configuration. It uses the config loaded by
// the root command when available, otherwise falls back to environment
// variables with defaults so commands stay usable in isolation (tests,
// scripting).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		InputDir:        getEnvOrDefault(config.EnvPrefix+"INPUT_DIR", intconfig.DefaultInputDir),
		OutputFile:      getEnvOrDefault(config.EnvPrefix+"OUTPUT_FILE", intconfig.DefaultOutputFile()),
		ExcludeFiles:    intconfig.DefaultExcludeFiles,
		ExcludePrefixes: intconfig.DefaultExcludePrefixes,
		TopColumns:      getEnvIntOrDefault(config.EnvPrefix+"TOP_COLUMNS", intconfig.DefaultTopColumns),
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
