package pipeline

import (
	"regexp"
	"strings"
)

var (
	tableRowPattern      = regexp.MustCompile(`^\|.*\|$`)
	separatorCellPattern = regexp.MustCompile(`^-+$`)
)

// ConvertTables replaces runs of pipe-delimited lines with an HTML table
// when the second line is a separator row of dashes. Runs that do not form
// a table are left unchanged.
//
// A converted table absorbs the line break that ended its last row.
func ConvertTables(text string) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); {
		if !tableRowPattern.MatchString(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		end := i
		for end < len(lines) && tableRowPattern.MatchString(lines[end]) {
			end++
		}
		table, ok := renderTable(lines[i:end])
		switch {
		case !ok:
			out = append(out, lines[i:end]...)
		case end < len(lines):
			out = append(out, table+lines[end])
			end++
		default:
			out = append(out, table)
		}
		i = end
	}
	return joinLines(out)
}

// renderTable builds the table markup for a run of rows.
// It reports false when the run is not a header plus separator.
func renderTable(rows []string) (string, bool) {
	if len(rows) < 2 {
		return "", false
	}
	for _, cell := range splitRow(rows[1]) {
		if cell != "" && !separatorCellPattern.MatchString(cell) {
			return "", false
		}
	}

	var b strings.Builder
	b.WriteString(`<table class="tg"><thead><tr>`)
	for _, cell := range splitRow(rows[0]) {
		b.WriteString(`<th class="tg-0pky">` + cell + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows[2:] {
		if strings.TrimSpace(row) == "" {
			continue
		}
		b.WriteString("<tr>")
		for _, cell := range splitRow(row) {
			b.WriteString(`<td class="tg-0pky">` + cell + `</td>`)
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody></table>`)
	return b.String(), true
}

// splitRow returns the trimmed cells between the outer pipes.
func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	cells := parts[1 : len(parts)-1]
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}
