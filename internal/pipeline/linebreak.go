package pipeline

import (
	"regexp"
	"strings"
)

var (
	preformattedPattern = regexp.MustCompile(`(?s)<pre><code>.*?</code></pre>`)
	headerBreakPattern  = regexp.MustCompile(`(</h[1-6]>)<br/>`)
)

// ConvertNewlinesOutsidePre replaces newlines with <br/> everywhere except
// inside <pre><code> blocks. A break directly after a closing header tag
// is dropped.
func ConvertNewlinesOutsidePre(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range preformattedPattern.FindAllStringIndex(text, -1) {
		b.WriteString(breakLines(text[last:loc[0]]))
		b.WriteString(text[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(breakLines(text[last:]))
	return b.String()
}

func breakLines(segment string) string {
	segment = strings.ReplaceAll(segment, "\n", "<br/>")
	return headerBreakPattern.ReplaceAllString(segment, "${1}")
}
