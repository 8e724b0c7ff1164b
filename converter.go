package md2sn

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-md2sn/internal/assets"
	"github.com/alnah/go-md2sn/internal/pipeline"
)

// linter reports unsupported Markdown.
type linter interface {
	Lint(content string) []pipeline.Warning
}

// previewer renders a reference HTML document.
type previewer interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// Compile-time interface implementation checks.
var (
	_ linter             = (*pipeline.Linter)(nil)
	_ previewer          = (*pipeline.PreviewConverter)(nil)
	_ assets.StyleLoader = (*assets.StyleResolver)(nil)
)

// Converter converts Markdown with a fixed set of styles, logger and lint
// setting. It holds no mutable state and is safe for concurrent use.
type Converter struct {
	cfg         converterConfig
	styles      pipeline.Stylesheet
	highlighter *pipeline.CodeHighlighter
	linter      linter
	previewer   previewer
}

// NewConverter creates a Converter. Returns ErrInvalidAssetPath when
// WithAssetPath names an unusable directory.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:       converterConfig{logger: zap.NewNop()},
		linter:    pipeline.NewLinter(),
		previewer: pipeline.NewPreviewConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	var loader assets.StyleLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewStyleResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	styles, err := pipeline.LoadStylesheet(loader)
	if err != nil {
		return nil, fmt.Errorf("loading styles: %w", err)
	}
	c.styles = styles
	c.highlighter = pipeline.NewCodeHighlighter(c.cfg.highlightStyle)

	c.cfg.logger.Debug("converter ready",
		zap.String("asset_path", c.cfg.assetPath),
		zap.Bool("lint", c.cfg.lint),
	)
	return c, nil
}

// Convert converts input.Markdown. It fails only for a done context or
// invalid custom alerts, and recovers internal panics into an error.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := input.Options.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &ConvertResult{
		Output: pipeline.Convert(input.Markdown, c.pipelineOptions(input.Options)),
	}
	if c.cfg.lint {
		res.Warnings = c.linter.Lint(input.Markdown)
	}

	c.cfg.logger.Debug("converted markdown",
		zap.Int("input_bytes", len(input.Markdown)),
		zap.Int("output_bytes", len(res.Output)),
		zap.Int("custom_alerts", len(input.CustomAlerts)),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// Preview renders markdown as a standalone HTML page with a CommonMark
// renderer, for comparison with the journal output.
func (c *Converter) Preview(ctx context.Context, title, markdown string) (string, error) {
	html, err := c.previewer.ToHTML(ctx, title, markdown)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return html, nil
}

func (c *Converter) pipelineOptions(opts Options) pipeline.Options {
	popts := pipeline.Options{
		CustomAlerts:    opts.CustomAlerts,
		SkipPrettyPrint: opts.SkipPrettyPrint,
		SkipCodeTags:    opts.SkipCodeTags,
		Styles:          &c.styles,
	}
	if opts.HighlightCode {
		popts.Highlighter = c.highlighter
	}
	return popts
}
