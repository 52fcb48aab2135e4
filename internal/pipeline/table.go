package pipeline

import (
	"regexp"
	"strings"
)

// MinTableLines is the shortest run of pipe-delimited lines converted to a
// table: header, separator, and at least one body row.
const MinTableLines = 3

// tableRunPattern matches a maximal run of lines that start at column zero
// with a pipe and end with a pipe, optionally followed by spaces, tabs or a
// carriage return. The final line of the document may lack a newline.
var tableRunPattern = regexp.MustCompile(`(?m)(?:^\|.*\|[ \t\r]*(?:\n|\z)){3,}`)

// TableConverter replaces GFM pipe tables with HTML table markup.
type TableConverter struct {
	// InlineCode rewrites `code` spans in cells to <code> elements.
	InlineCode bool
}

// NewTableConverter returns a converter with inline code rewriting enabled.
func NewTableConverter() *TableConverter {
	return &TableConverter{InlineCode: true}
}

// Convert replaces every qualifying run of pipe-delimited lines and reports
// how many tables were generated. Shorter runs are left as literal text.
func (c *TableConverter) Convert(content string) (string, int) {
	converted := 0
	out := tableRunPattern.ReplaceAllStringFunc(content, func(run string) string {
		converted++
		return c.convertRun(run)
	})
	return out, converted
}

// convertRun renders one matched run. The second line is the separator and
// its content is ignored.
func (c *TableConverter) convertRun(run string) string {
	lines := strings.Split(strings.TrimSuffix(run, "\n"), "\n")

	header := ParseCells(lines[0])
	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		rows = append(rows, ParseCells(line))
	}

	cell := identity
	if c.InlineCode {
		cell = InlineCode
	}
	return RenderTable(header, rows, cell)
}

// ConvertTables converts pipe tables with inline code rewriting enabled.
func ConvertTables(content string) string {
	out, _ := NewTableConverter().Convert(content)
	return out
}

// IsTableLine reports whether a line qualifies as a table row: it begins
// with a pipe and, once trailing whitespace is trimmed, ends with one.
func IsTableLine(line string) bool {
	trimmed := strings.TrimRight(line, " \t\r\n")
	return len(trimmed) >= 2 && trimmed[0] == '|' && trimmed[len(trimmed)-1] == '|'
}

// ParseCells splits a pipe-delimited line into trimmed cells.
// One leading and one trailing pipe are removed; every other pipe is a
// column delimiter. Cell counts are not normalised across rows.
func ParseCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	cells := strings.Split(line, "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// RenderTable emits a table with one header row and one row per body line.
// Each cell's text passes through fn before insertion.
func RenderTable(header []string, rows [][]string, fn func(string) string) string {
	if fn == nil {
		fn = identity
	}

	var b strings.Builder
	b.WriteString("<table>\n<thead><tr>\n")
	for _, cell := range header {
		b.WriteString("  <th>")
		b.WriteString(fn(cell))
		b.WriteString("</th>\n")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range rows {
		b.WriteString("<tr>\n")
		for _, cell := range row {
			b.WriteString("  <td>")
			b.WriteString(fn(cell))
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

func identity(s string) string { return s }
