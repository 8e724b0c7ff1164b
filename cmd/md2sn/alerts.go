package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/yamlutil"
)

// runAlerts prints the alert catalog, built-ins merged with the config's
// alerts section, as YAML that can be pasted back into a config file.
func runAlerts(args []string, env *Environment) error {
	flags, err := parseAlertsFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := loadConfig(flags.config, loadEnvConfig().ConfigPath)
	if err != nil {
		return err
	}

	catalog := struct {
		Alerts map[string]md2sn.AlertDefinition `yaml:"alerts"`
	}{Alerts: md2sn.MergeAlerts(cfg.Alerts)}

	data, err := yamlutil.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encoding alerts: %w", err)
	}

	_, err = env.Stdout.Write(data)
	return err
}
