package pipeline

import (
	"bytes"
	"cmp"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Warning reports Markdown the journal conversion passes through as text
// or renders differently from CommonMark. Line is 1-based, 0 when unknown.
type Warning struct {
	Line    int
	Message string
}

// Linter parses Markdown with a CommonMark parser and reports constructs
// the converter does not support.
type Linter struct {
	parser parser.Parser
}

// NewLinter creates a Linter with GFM extensions enabled.
func NewLinter() *Linter {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &Linter{parser: md.Parser()}
}

// Lint returns the warnings for content ordered by line.
func (l *Linter) Lint(content string) []Warning {
	source := []byte(normalizeLineEndings(content))
	doc := l.parser.Parse(text.NewReader(source))

	var warnings []Warning
	warn := func(n ast.Node, msg string) {
		line := 0
		if off, ok := nodeOffset(n); ok {
			line = lineNumber(source, off)
		}
		warnings = append(warnings, Warning{Line: line, Message: msg})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if isSetextHeading(node, source) {
				warn(node, "setext heading (underlined with = or -) is not converted; use # markers")
			}
		case *ast.CodeBlock:
			warn(node, "indented code block is not converted; use a ``` fence")
		case *ast.FencedCodeBlock:
			if isTildeFence(node, source) {
				warn(node, "~~~ code fence is not converted; use ```")
			}
		case *ast.List:
			if _, nested := node.Parent().(*ast.ListItem); nested {
				warn(node, "nested list items are flattened into plain lines")
			}
			switch node.Marker {
			case '+':
				warn(node, "list marker '+' is not converted; use '-' or '*'")
			case ')':
				warn(node, "ordered list marker ')' is not converted; use '1.'")
			}
		case *ast.HTMLBlock:
			warn(node, "raw HTML block is passed through unchanged")
		case *ast.AutoLink:
			warn(node, "autolink is not converted; use [label](url)")
		case *east.TaskCheckBox:
			warn(node, "task list checkbox is rendered as plain text")
		case *east.Table:
			for _, align := range node.Alignments {
				if align != east.AlignNone {
					warn(node, "column alignment markers prevent table conversion; use plain --- separators")
					break
				}
			}
		}
		return ast.WalkContinue, nil
	})

	slices.SortStableFunc(warnings, func(a, b Warning) int {
		return cmp.Compare(a.Line, b.Line)
	})
	return warnings
}

// nodeOffset finds a source offset for n: its own first line, its first
// text descendant, or the enclosing block for inline nodes.
func nodeOffset(n ast.Node) (int, bool) {
	if off, ok := firstOffset(n); ok {
		return off, true
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock {
			return firstOffset(p)
		}
	}
	return 0, false
}

func firstOffset(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := firstOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}

func lineNumber(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// lineAt returns the source line containing offset, without leading spaces.
func lineAt(source []byte, offset int) []byte {
	start := bytes.LastIndexByte(source[:offset], '\n') + 1
	end := bytes.IndexByte(source[start:], '\n')
	if end < 0 {
		end = len(source) - start
	}
	return bytes.TrimLeft(source[start:start+end], " \t")
}

// isSetextHeading reports whether the heading's text line lacks a '#' marker.
func isSetextHeading(h *ast.Heading, source []byte) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	return !bytes.HasPrefix(lineAt(source, h.Lines().At(0).Start), []byte("#"))
}

// isTildeFence reports whether the opening fence uses '~'.
func isTildeFence(f *ast.FencedCodeBlock, source []byte) bool {
	switch {
	case f.Info != nil:
		return bytes.HasPrefix(lineAt(source, f.Info.Segment.Start), []byte("~"))
	case f.Lines().Len() > 0 && f.Lines().At(0).Start > 0:
		return bytes.HasPrefix(lineAt(source, f.Lines().At(0).Start-1), []byte("~"))
	default:
		return false
	}
}
