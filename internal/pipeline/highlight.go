package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// CodeHighlighter colors fenced code. Token spans carry inline style
// attributes since the journal output ships no chroma stylesheet.
type CodeHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewCodeHighlighter creates a highlighter for the named chroma style.
// Unknown names fall back to chroma's default style.
func NewCodeHighlighter(styleName string) *CodeHighlighter {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	return &CodeHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.PreventSurroundingPre(true),
		),
		style: styles.Get(styleName),
	}
}

// Highlight renders code tokenized for lang. It reports false when the
// language is empty or unknown, or tokenizing fails, so the caller keeps
// the plain body.
func (h *CodeHighlighter) Highlight(lang, code string) (string, bool) {
	if lang == "" {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// HighlightStyles lists the chroma style names accepted by NewCodeHighlighter.
func HighlightStyles() []string {
	return styles.Names()
}
