package pipeline

import (
	"fmt"
	"strings"
)

// quoteBuilder accumulates one run of "> " lines.
type quoteBuilder struct {
	open  bool
	alert string
	lines []string
}

// ConvertBlockquotes groups consecutive lines starting with '>' into a
// <blockquote>, or into a styled alert paragraph when the first line starts
// with a [!NAME] tag registered in alerts. Unregistered tags stay as text.
func ConvertBlockquotes(text string, alerts map[string]AlertDefinition) string {
	tag := alertTagPattern(alerts)
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	var quote quoteBuilder
	for _, line := range lines {
		if !strings.HasPrefix(line, ">") {
			if quote.open {
				out = append(out, quote.render(alerts))
				quote = quoteBuilder{}
			}
			out = append(out, line)
			continue
		}
		content := strings.TrimSpace(line[1:])
		if !quote.open {
			quote.open = true
			if tag != nil {
				if m := tag.FindStringSubmatch(content); m != nil {
					quote.alert = strings.ToLower(m[1])
					content = strings.TrimSpace(content[len(m[0]):])
					if content == "" {
						continue
					}
				}
			}
		}
		quote.lines = append(quote.lines, content)
	}
	if quote.open {
		out = append(out, quote.render(alerts))
	}
	return joinLines(out)
}

// render emits the quote on a single line. List syntax inside the quote is
// converted before the remaining newlines become <br>.
func (q *quoteBuilder) render(alerts map[string]AlertDefinition) string {
	body := joinLines(q.lines)
	body = ConvertUnorderedLists(body)
	body = ConvertOrderedLists(body)
	body = strings.ReplaceAll(body, "\n", "<br>")

	if q.alert != "" {
		if def, ok := alerts[q.alert]; ok {
			return fmt.Sprintf(`<p class="%s">%s <strong>%s:</strong> %s</p>`,
				q.alert, def.glyph(), def.label(q.alert), body)
		}
	}
	return "<blockquote>" + body + "</blockquote>"
}
