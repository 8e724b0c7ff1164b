package md2sn

import (
	"slices"

	"go.uber.org/zap"

	"github.com/alnah/go-md2sn/internal/pipeline"
)

// AlertDefinition describes a typed callout. As an override, empty fields
// keep the built-in value.
type AlertDefinition = pipeline.AlertDefinition

// Warning reports Markdown that the conversion does not support.
type Warning = pipeline.Warning

// Options controls a single conversion.
type Options struct {
	// CustomAlerts overrides built-in alerts or adds new ones, keyed by
	// case-insensitive alert name.
	CustomAlerts map[string]AlertDefinition

	// SkipPrettyPrint keeps block markup on as few lines as possible.
	SkipPrettyPrint bool

	// SkipCodeTags omits the [code] wrapper and CSS, returning bare HTML.
	SkipCodeTags bool

	// HighlightCode colors fenced code blocks that name a known language.
	HighlightCode bool
}

// Validate checks custom alert names and colors.
// Keys are checked in sorted order so the first error is stable.
func (o Options) Validate() error {
	keys := make([]string, 0, len(o.CustomAlerts))
	for key := range o.CustomAlerts {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if err := o.CustomAlerts[key].Validate(key); err != nil {
			return err
		}
	}
	return nil
}

// Input is the document and options for one Converter.Convert call.
type Input struct {
	Markdown string
	Options
}

// ConvertResult holds the journal markup and any lint warnings.
type ConvertResult struct {
	Output   string
	Warnings []Warning
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	logger         *zap.Logger
	assetPath      string
	lint           bool
	highlightStyle string
}

// WithLogger sets the logger for conversion diagnostics. Nil disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.cfg.logger = logger
	}
}

// WithAssetPath loads CSS from {path}/styles, falling back to the embedded
// styles for files that are missing there.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithLint reports unsupported Markdown in ConvertResult.Warnings.
func WithLint(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.lint = enabled
	}
}

// WithHighlightStyle selects the chroma style used by Options.HighlightCode.
func WithHighlightStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = name
	}
}
