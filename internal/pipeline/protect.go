package pipeline

import (
	"regexp"
	"strconv"
)

// Placeholder tokens are delimited by ASCII control characters that never
// appear in Markdown prose and contain no formatting markers.
const (
	placeholderStart = "\x02"
	placeholderEnd   = "\x03"
)

var placeholderPattern = regexp.MustCompile(placeholderStart + `(\d+)` + placeholderEnd)

// protectedSpans lists the span patterns shielded from inline formatting,
// in protection order.
var protectedSpans = []*regexp.Regexp{
	fencedCodePattern,
	inlineCodePattern,
	imagePattern,
	linkPattern,
}

// Protect replaces fenced code blocks, inline code spans, images and links
// with placeholder tokens. It returns the rewritten text and the original
// spans indexed by token number.
func Protect(text string) (string, []string) {
	var spans []string
	for _, pattern := range protectedSpans {
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			// A later span may enclose tokens from an earlier pattern;
			// store it fully expanded so each token restores once.
			spans = append(spans, Restore(match, spans))
			return placeholder(len(spans) - 1)
		})
	}
	return text, spans
}

// Restore puts the protected spans back in place of their tokens.
// Tokens without a matching span are left untouched.
func Restore(text string, spans []string) string {
	if len(spans) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		idx, err := strconv.Atoi(token[len(placeholderStart) : len(token)-len(placeholderEnd)])
		if err != nil || idx >= len(spans) {
			return token
		}
		return spans[idx]
	})
}

func placeholder(idx int) string {
	return placeholderStart + strconv.Itoa(idx) + placeholderEnd
}
