// Package pipeline implements the Markdown-to-ServiceNow conversion pipeline.
//
// The conversion is a fixed sequence of text rewrites:
//   - line ending normalization and header conversion
//   - protection of code, image and link spans behind placeholders
//   - inline emphasis, strikethrough and highlight formatting
//   - fenced code, inline code, images, links and horizontal rules
//   - unordered and ordered lists, blockquotes with typed alerts, tables
//   - newline-to-break conversion outside preformatted blocks
//   - optional pretty printing and the [code]...[/code] wrapper with CSS
//
// Each stage is a pure function of its input so it can be tested alone.
// Lint and Preview are side paths that parse the source with Goldmark
// and never influence the journal output.
package pipeline
