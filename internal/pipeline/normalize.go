package pipeline

import (
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// delimiterStripper drops the placeholder delimiters from source text so
// that input bytes can never be mistaken for a protected span token.
var delimiterStripper = strings.NewReplacer(placeholderStart, "", placeholderEnd, "")

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeInput prepares raw Markdown for the passes.
func normalizeInput(content string) string {
	return delimiterStripper.Replace(normalizeLineEndings(content))
}
