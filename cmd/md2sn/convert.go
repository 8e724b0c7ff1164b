package main

import (
	"context"
	"errors"
	"fmt"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/config"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate early, before any file is touched
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if err := validatePatterns(flags.exclude); err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, discoveryOptions{
		outputDir: resolveOutputDir(flags.output, cfg),
		extension: cfg.OutputExtension(),
		excludes:  flags.exclude,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	conv, err := md2sn.NewConverter(
		md2sn.WithLogger(newLogger(flags.common.verbose, env.Stderr)),
		md2sn.WithAssetPath(cfg.Assets.BasePath),
		md2sn.WithLint(!flags.noLint),
		md2sn.WithHighlightStyle(cfg.Output.HighlightStyle),
	)
	if err != nil {
		return err
	}

	params := &conversionParams{
		options: md2sn.Options{
			CustomAlerts:    cfg.Alerts,
			SkipPrettyPrint: cfg.Output.SkipPrettyPrint,
			SkipCodeTags:    cfg.Output.SkipCodeTags,
			HighlightCode:   cfg.Output.HighlightCode,
		},
		preview: flags.preview,
		stdin:   env.Stdin,
		stdout:  env.Stdout,
	}

	workers := resolveWorkerCount(flags.workers, envCfg.Workers)
	results := convertBatch(ctx, conv, workers, files, params)

	// A single failure is reported by runMain with its hint and exit code
	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by the flag, else by MD2SN_CONFIG,
// else returns defaults.
func loadConfig(flagConfig, envConfig string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfig
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.format.noPretty {
		cfg.Output.SkipPrettyPrint = true
	}
	if flags.format.noCodeTags {
		cfg.Output.SkipCodeTags = true
	}
	if flags.format.highlight {
		cfg.Output.HighlightCode = true
	}
	if flags.format.highlightStyle != "" {
		cfg.Output.HighlightStyle = flags.format.highlightStyle
		cfg.Output.HighlightCode = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
