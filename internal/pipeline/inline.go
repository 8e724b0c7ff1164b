package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Emphasis patterns, applied longest marker first.
var (
	boldItalicStarPattern       = regexp.MustCompile(`\*\*\*(.*?)\*\*\*`)
	boldItalicUnderscorePattern = regexp.MustCompile(`___(.*?)___`)
	boldStarPattern             = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscorePattern       = regexp.MustCompile(`__(.*?)__`)
	strikethroughPattern        = regexp.MustCompile(`~~(.*?)~~`)
	highlightPattern            = regexp.MustCompile(`==(.*?)==`)
)

// ConvertTextFormatting applies emphasis, strikethrough and highlight
// formatting to text, leaving code, images and links untouched.
func ConvertTextFormatting(text string) string {
	protected, spans := Protect(text)
	return Restore(formatInline(protected), spans)
}

// formatInline rewrites inline markers. Callers protect code spans first.
func formatInline(text string) string {
	text = boldItalicStarPattern.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
	text = boldItalicUnderscorePattern.ReplaceAllString(text, "<strong><em>${1}</em></strong>")
	text = boldStarPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = boldUnderscorePattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = convertItalic(text, '*')
	text = convertItalic(text, '_')
	text = strikethroughPattern.ReplaceAllString(text, "<strike>${1}</strike>")
	text = highlightPattern.ReplaceAllString(text, `<span class="highlight">${1}</span>`)
	return text
}

// convertItalic wraps single-marker spans on one line in <em>.
//
// A marker touching another copy of itself never opens or closes a span,
// so leftover doubled markers stay literal. An opener must be followed by
// a non-space and a closer preceded by one, which keeps "* item" list lines
// intact. Underscores inside words (snake_case) never count as markers.
// These flanking rules are stricter than a bare single-marker match: spaced
// arithmetic such as "2 * 3 * 4" and snake_case_name stay literal.
func convertItalic(text string, marker byte) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(text); i++ {
		if !isLoneMarker(text, i, marker) || !opensItalic(text, i, marker) {
			continue
		}
		end := strings.IndexAny(text[i+1:], string(marker)+"\n")
		if end <= 0 {
			continue
		}
		j := i + 1 + end
		if text[j] != marker || !isLoneMarker(text, j, marker) || !closesItalic(text, j, marker) {
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString("<em>")
		b.WriteString(text[i+1 : j])
		b.WriteString("</em>")
		last = j + 1
		i = j
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func isLoneMarker(text string, i int, marker byte) bool {
	if text[i] != marker {
		return false
	}
	if i > 0 && text[i-1] == marker {
		return false
	}
	return i+1 >= len(text) || text[i+1] != marker
}

func opensItalic(text string, i int, marker byte) bool {
	next, _ := utf8.DecodeRuneInString(text[i+1:])
	if next == utf8.RuneError || unicode.IsSpace(next) {
		return false
	}
	if marker == '_' {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		return !isWordRune(prev)
	}
	return true
}

func closesItalic(text string, j int, marker byte) bool {
	prev, _ := utf8.DecodeLastRuneInString(text[:j])
	if unicode.IsSpace(prev) {
		return false
	}
	if marker == '_' {
		next, _ := utf8.DecodeRuneInString(text[j+1:])
		return !isWordRune(next)
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
