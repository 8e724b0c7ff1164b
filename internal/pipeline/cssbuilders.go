package pipeline

import (
	"fmt"
	"strings"
)

// buildAlertCSS generates one rule per named alert using its resolved palette.
func buildAlertCSS(names []string, alerts map[string]AlertDefinition) string {
	var buf strings.Builder
	for _, name := range names {
		text, background, border := alerts[name].palette()
		fmt.Fprintf(&buf, ".%s { color: %s; background-color: %s; padding: 8px 12px; border-left: 4px solid %s; display: block; margin: 8px 0; }\n",
			name, cssValue(text), cssValue(background), cssValue(border))
	}
	return buf.String()
}

// usedAlerts returns the sorted names whose alert paragraph occurs in text.
func usedAlerts(text string, alerts map[string]AlertDefinition) []string {
	var used []string
	for _, name := range AlertNames(alerts) {
		if strings.Contains(text, `<p class="`+name+`">`) {
			used = append(used, name)
		}
	}
	return used
}

// styleBlock wraps CSS in a <style> element.
func styleBlock(css string) string {
	return "<style type=\"text/css\">\n" + sanitizeCSS(strings.TrimRight(css, "\n")) + "\n</style>\n"
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// cssValue strips characters that could end a declaration or a rule.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
