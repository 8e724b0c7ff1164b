package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2sn/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SN_CONFIG: config file name or path
	InputDir   string // MD2SN_INPUT_DIR: default input directory
	OutputDir  string // MD2SN_OUTPUT_DIR: default output directory
	AssetPath  string // MD2SN_ASSET_PATH: custom CSS directory
	Workers    int    // MD2SN_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SN_CONFIG":     true,
	"MD2SN_INPUT_DIR":  true,
	"MD2SN_OUTPUT_DIR": true,
	"MD2SN_ASSET_PATH": true,
	"MD2SN_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MD2SN_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SN_CONFIG"),
		InputDir:   os.Getenv("MD2SN_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2SN_OUTPUT_DIR"),
		AssetPath:  os.Getenv("MD2SN_ASSET_PATH"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MD2SN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SN_* variables.
// Helps catch typos like MD2SN_OUTPUT instead of MD2SN_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2SN_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env values win over the config file; CLI flags are applied later.
// This ensures: CLI flags > env vars > config file > defaults
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
