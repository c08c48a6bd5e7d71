package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"langdb/internal/sql"
)

// FormatResult renders rs as a bordered text table followed by a row count:
//
//	| id | name    |
//	+----+---------+
//	| 1  | 'Alice' |
//
//	1 row(s) returned
//
// A result without columns renders as "Empty result set". Widths are display
// widths, so wide runes keep the borders aligned.
func FormatResult(rs *sql.ResultSet) string {
	if rs == nil || rs.Schema.Len() == 0 {
		return "Empty result set"
	}

	lines := rs.Strings()
	widths := make([]int, len(lines[0]))
	for _, cells := range lines {
		for i, c := range cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c))
			}
		}
	}

	var b strings.Builder
	writeCells(&b, lines[0], widths)
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
	for _, cells := range lines[1:] {
		writeCells(&b, cells, widths)
	}

	fmt.Fprintf(&b, "\n%d row(s) returned", rs.RowCount())
	return b.String()
}

func writeCells(b *strings.Builder, cells []string, widths []int) {
	for i, c := range cells {
		if i >= len(widths) {
			break
		}
		b.WriteString("| ")
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
		b.WriteString(" ")
	}
	b.WriteString("|\n")
}

// FormatSchema renders a table definition the way CREATE TABLE spells it.
func FormatSchema(name string, schema sql.Schema) string {
	defs := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		defs[i] = c.Name + " " + c.Type.String()
		if c.Nullable {
			defs[i] += " NULL"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))
}
