package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-md2sn/internal/fileutil"
	"github.com/alnah/go-md2sn/internal/pipeline"
	"github.com/alnah/go-md2sn/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidExtension = errors.New("invalid output extension")
)

// DefaultExtension is appended to converted file names.
const DefaultExtension = ".txt"

// Field length limits.
const (
	MaxPathLength         = 4096
	MaxExtensionLength    = 16 // ".txt", ".snow"
	MaxStyleNameLength    = 50 // chroma style names
	MaxAlertDisplayLength = 50 // "WARNING", "DEPLOYMENT"
	MaxAlertEmojiLength   = 32 // bytes; ZWJ sequences are long
	MaxAlertColorLength   = 64 // "#1f6feb", "rgba(...)"
)

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-md2sn"

// Config holds CLI defaults loaded from a YAML file.
type Config struct {
	Input  InputConfig                         `yaml:"input"`
	Output OutputConfig                        `yaml:"output"`
	Assets AssetsConfig                        `yaml:"assets"`
	Alerts map[string]pipeline.AlertDefinition `yaml:"alerts"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = must specify
}

// OutputConfig defines output destination and rendering options.
type OutputConfig struct {
	DefaultDir      string `yaml:"defaultDir"` // Empty = next to the source
	Extension       string `yaml:"extension"`  // Empty = DefaultExtension
	SkipPrettyPrint bool   `yaml:"skipPrettyPrint"`
	SkipCodeTags    bool   `yaml:"skipCodeTags"`
	HighlightCode   bool   `yaml:"highlightCode"`
	HighlightStyle  string `yaml:"highlightStyle"` // chroma style, empty = github
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded styles
}

// Validate checks field lengths, the output extension and custom alerts.
// Called by LoadConfig; also usable on a Config built in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.extension", c.Output.Extension, MaxExtensionLength},
		{"output.highlightStyle", c.Output.HighlightStyle, MaxStyleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if ext := c.Output.Extension; ext != "" {
		if !strings.HasPrefix(ext, ".") || len(ext) == 1 || strings.Contains(ext, " ") || fileutil.ValidateExtension(ext) != nil {
			return fmt.Errorf("%w: %q (must start with '.', e.g. \".txt\")", ErrInvalidExtension, ext)
		}
	}

	return c.validateAlerts()
}

// validateAlerts checks alerts in key order so the first error is stable.
func (c *Config) validateAlerts() error {
	keys := make([]string, 0, len(c.Alerts))
	for key := range c.Alerts {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		def := c.Alerts[key]
		if err := def.Validate(key); err != nil {
			return err
		}
		limits := []struct {
			field string
			value string
			max   int
		}{
			{"displayName", def.DisplayName, MaxAlertDisplayLength},
			{"emoji", def.Emoji, MaxAlertEmojiLength},
			{"textColor", def.TextColor, MaxAlertColorLength},
			{"backgroundColor", def.BackgroundColor, MaxAlertColorLength},
			{"borderColor", def.BorderColor, MaxAlertColorLength},
		}
		for _, l := range limits {
			if err := validateFieldLength("alerts."+key+"."+l.field, l.value, l.max); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Extension: DefaultExtension},
	}
}

// OutputExtension returns the configured extension or DefaultExtension.
func (c *Config) OutputExtension() string {
	if c.Output.Extension == "" {
		return DefaultExtension
	}
	return c.Output.Extension
}

// LoadConfig loads a config by name or path. A value containing a path
// separator is read directly; a bare name is searched as name.yaml and
// name.yml in the current directory, then in the user config directory.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches ./name.{yaml,yml} then
// {UserConfigDir}/go-md2sn/name.{yaml,yml}.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
