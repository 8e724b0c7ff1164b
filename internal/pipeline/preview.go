package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrPreviewConversion indicates the preview renderer failed.
var ErrPreviewConversion = errors.New("preview conversion failed")

// Highlight markers use Private Use Area code points, which Goldmark passes
// through untouched, so ==text== survives rendering without WithUnsafe.
const (
	markStartPlaceholder = "\uE000"
	markEndPlaceholder   = "\uE001"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Arial, sans-serif; max-width: 50rem; margin: 2rem auto; }
mark { background-color: #fff3b0; padding: 2px 4px; }
table { border-collapse: collapse; }
td, th { border: 1px solid black; padding: 10px 5px; }
</style>
</head>
<body>
%s
</body>
</html>`

// PreviewConverter renders Markdown as a standalone HTML page using a
// CommonMark renderer, for checking a document before pasting it.
type PreviewConverter struct {
	md goldmark.Markdown
}

// NewPreviewConverter creates a PreviewConverter with GFM extensions and
// inline-styled syntax highlighting.
func NewPreviewConverter() *PreviewConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(DefaultHighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)
	return &PreviewConverter{md: md}
}

// ToHTML renders content as an HTML5 document titled title.
// Goldmark has no context support, so the render runs in a goroutine and
// the call returns early when ctx is done.
func (c *PreviewConverter) ToHTML(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		source := normalizeLineEndings(content)
		source = highlightPattern.ReplaceAllString(source, markStartPlaceholder+"${1}"+markEndPlaceholder)

		var buf bytes.Buffer
		if err := c.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewConversion, err)}
			return
		}
		body := strings.NewReplacer(markStartPlaceholder, "<mark>", markEndPlaceholder, "</mark>").Replace(buf.String())
		done <- result{html: fmt.Sprintf(previewTemplate, html.EscapeString(title), body)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
