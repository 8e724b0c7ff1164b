package pipeline

import (
	"regexp"
	"strings"
)

// Block and span patterns. Fenced code accepts an optional language tag
// directly after the opening fence.
var (
	headerPattern         = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)
	fencedCodePattern     = regexp.MustCompile("(?s)```([\\w+#.-]*)\\n(.*?)```")
	inlineCodePattern     = regexp.MustCompile("`([^`]+)`")
	imagePattern          = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern           = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^(?:-{3,}|\*{3,}|_{3,})$`)
)

// ConvertHeaders turns lines starting with one to six '#' followed by
// whitespace into <hN> elements. Seven or more '#' or a missing space
// leave the line unchanged.
func ConvertHeaders(text string) string {
	return headerPattern.ReplaceAllStringFunc(text, func(line string) string {
		m := headerPattern.FindStringSubmatch(line)
		level := string(rune('0' + len(m[1])))
		return "<h" + level + ">" + m[2] + "</h" + level + ">"
	})
}

// ConvertCodeBlocks turns fenced code blocks into <pre><code> elements.
// The language tag is dropped and the body is kept verbatim.
func ConvertCodeBlocks(text string) string {
	return convertCodeBlocks(text, nil)
}

func convertCodeBlocks(text string, h *CodeHighlighter) string {
	return fencedCodePattern.ReplaceAllStringFunc(text, func(block string) string {
		m := fencedCodePattern.FindStringSubmatch(block)
		body := m[2]
		if h != nil {
			if highlighted, ok := h.Highlight(m[1], body); ok {
				body = highlighted
			}
		}
		return "<pre><code>" + body + "</code></pre>"
	})
}

// ConvertInlineCode turns `text` into <code>text</code>.
func ConvertInlineCode(text string) string {
	return inlineCodePattern.ReplaceAllString(text, "<code>${1}</code>")
}

// ConvertImages turns ![alt](src) into <img> elements.
func ConvertImages(text string) string {
	return imagePattern.ReplaceAllString(text, `<img src="${2}" alt="${1}">`)
}

// ConvertLinks turns [label](href) into <a> elements.
func ConvertLinks(text string) string {
	return linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
}

// ConvertHorizontalRules turns lines made of three or more '-', '*' or '_'
// into <hr>.
func ConvertHorizontalRules(text string) string {
	return horizontalRulePattern.ReplaceAllString(text, "<hr>")
}

// splitLines and joinLines bracket the line-oriented passes.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
