package grid

import "strings"

// Border-based span inference (ModeHybrid).
//
// Some tables mark a merged cell only through borders: the upper cell has no
// bottom border and the cells below it have no top border and no text. The
// resolver keeps such a cell open for its column and absorbs each matching
// cell of the following rows into it, growing its row span by one per row.

// opensContinuation reports whether a freshly placed cell may absorb the
// cells below it.
func opensContinuation(c Cell) bool {
	return c.rowSpan() == 1 &&
		c.Borders.Bottom == BorderNone &&
		strings.TrimSpace(c.Text) != ""
}

// continues reports whether c, about to be placed with the given effective
// column span, is a continuation of the open cell above it.
func continues(c Cell, span int, above Cell) bool {
	return c.rowSpan() == 1 &&
		span == above.ColSpan &&
		c.Borders.Top == BorderNone &&
		strings.TrimSpace(c.Text) == ""
}

// InferRowSpan returns the row span hybrid mode would give the cell at
// column col of rows[row], looking only at that column of the rows below.
// Cells are located by summing declared column spans, so rows whose columns
// are shifted by spans from above are not accounted for; Resolve uses the
// placed positions instead.
func InferRowSpan(rows []Row, row, col int) int {
	c, ok := cellAt(rows[row], col)
	if !ok || !opensContinuation(c) {
		if ok {
			return c.rowSpan()
		}
		return 1
	}
	span := 1
	for r := row + 1; r < len(rows); r++ {
		below, ok := cellAt(rows[r], col)
		if !ok || !continues(below, below.colSpan(), Cell{ColSpan: c.colSpan()}) {
			break
		}
		span++
	}
	return span
}

// cellAt returns the declared cell starting at column col of r.
func cellAt(r Row, col int) (Cell, bool) {
	at := 0
	for _, c := range r {
		if at == col {
			return c, true
		}
		at += c.colSpan()
		if at > col {
			break
		}
	}
	return Cell{}, false
}
