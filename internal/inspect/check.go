// Package inspect reports the declared structure of law tables and flags
// border patterns that usually mean a merged cell was declared without a
// rowspan.
package inspect

import (
	"fmt"
	"strings"

	"github.com/hanpama/lawtable/internal/grid"
)

// Severity ranks a Finding.
type Severity uint8

const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "info"
}

// Finding is a suspicious border pattern on one declared body cell.
type Finding struct {
	Row      int
	Cell     int
	Severity Severity
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: row %d cell %d: %s", f.Severity, f.Row, f.Cell, f.Message)
}

// Check walks the declared body rows of t and reports cells whose top and
// bottom borders suggest a row span the document does not declare. At most
// one finding is reported per cell.
func Check(t grid.Table) []Finding {
	var findings []Finding
	for r, row := range t.Rows {
		col := 0
		for i, c := range row {
			if f, ok := checkCell(t.Rows, r, col, c); ok {
				f.Row, f.Cell = r, i
				findings = append(findings, f)
			}
			col += span(c.ColSpan)
		}
	}
	return findings
}

func checkCell(rows []grid.Row, r, col int, c grid.Cell) (Finding, bool) {
	empty := strings.TrimSpace(c.Text) == ""
	switch {
	case c.Borders.Top == grid.BorderNone && c.Borders.Bottom == grid.BorderNone && empty:
		return Finding{Severity: Warning, Message: "top and bottom borders are none and the cell is empty: possible missing rowspan above"}, true
	case c.Borders.Top == grid.BorderNone && c.RowSpan == 0 && !empty:
		return Finding{Severity: Warning, Message: "top border is none but the cell has text: continues from the previous row"}, true
	case c.Borders.Bottom == grid.BorderNone && c.RowSpan == 0:
		msg := "bottom border is none: may continue into the next row"
		if n := grid.InferRowSpan(rows, r, col); n > 1 {
			msg += fmt.Sprintf(" (hybrid mode merges %d rows)", n)
		}
		return Finding{Severity: Info, Message: msg}, true
	}
	return Finding{}, false
}

func span(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
