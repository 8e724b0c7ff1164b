package pipeline

import (
	"regexp"
	"strings"
)

var (
	unorderedItemPattern = regexp.MustCompile(`^[-*]\s+`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+`)
)

// ConvertUnorderedLists groups consecutive "- " or "* " lines into a
// single-line <ul> element.
func ConvertUnorderedLists(text string) string {
	return convertList(text, unorderedItemPattern, "ul")
}

// ConvertOrderedLists groups consecutive "N. " lines into a single-line
// <ol> element. Source numbering is not preserved.
func ConvertOrderedLists(text string) string {
	return convertList(text, orderedItemPattern, "ol")
}

// listBuilder accumulates the items of the list being built.
// A list is open while it holds at least one item.
type listBuilder struct {
	tag   string
	items strings.Builder
	count int
}

func (l *listBuilder) add(item string) {
	l.items.WriteString("<li>")
	l.items.WriteString(item)
	l.items.WriteString("</li>")
	l.count++
}

func (l *listBuilder) open() bool {
	return l.count > 0
}

// close renders the list and resets the builder.
func (l *listBuilder) close() string {
	out := "<" + l.tag + ">" + l.items.String() + "</" + l.tag + ">"
	l.items.Reset()
	l.count = 0
	return out
}

func convertList(text string, item *regexp.Regexp, tag string) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	list := &listBuilder{tag: tag}
	for _, line := range lines {
		if loc := item.FindStringIndex(line); loc != nil {
			list.add(line[loc[1]:])
			continue
		}
		if list.open() {
			out = append(out, list.close())
		}
		out = append(out, line)
	}
	if list.open() {
		out = append(out, list.close())
	}
	return joinLines(out)
}
