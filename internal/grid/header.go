package grid

// HeaderRow is the row index used for header positions in Owner.
const HeaderRow = -1

// placeHeader lays out an explicit header row. Header cells span columns only.
func placeHeader(h Row, width int) []ResolvedCell {
	out := make([]ResolvedCell, width)
	col := 0
	for _, c := range h {
		if col >= width {
			break
		}
		span := c.colSpan()
		if col+span > width {
			span = width - col
		}
		c.RowSpan, c.ColSpan = 1, span
		out[col] = origin(c)
		for k := 1; k < span; k++ {
			out[col+k] = covered(Position{Row: HeaderRow, Col: col})
		}
		col += span
	}
	for ; col < width; col++ {
		out[col] = emptyOrigin()
	}
	return out
}

// promoteHeader moves the first body row into the header. Positions below it
// that its row spans covered become empty cells, and the remaining owners
// are shifted up by one row.
func (g *Grid) promoteHeader() {
	if len(g.Rows) == 0 {
		return
	}
	head := g.Rows[0]
	g.Rows = g.Rows[1:]

	for c := range head {
		switch head[c].Kind {
		case Origin:
			head[c].Cell.RowSpan = 1
		case Covered:
			head[c].Owner.Row = HeaderRow
		}
	}
	g.Header = head

	for _, row := range g.Rows {
		for c := range row {
			if row[c].Kind != Covered {
				continue
			}
			if row[c].Owner.Row == 0 {
				row[c] = emptyOrigin()
				continue
			}
			row[c].Owner.Row--
		}
	}
	if len(g.Rows) == 0 {
		g.Rows = nil
	}
}

// HeaderLabels returns the header texts, one per column. Covered header
// positions yield "". It returns nil when the grid has no header.
func (g *Grid) HeaderLabels() []string {
	if g == nil || len(g.Header) == 0 {
		return nil
	}
	labels := make([]string, len(g.Header))
	for i, c := range g.Header {
		if c.Kind == Origin {
			labels[i] = c.Cell.Text
		}
	}
	return labels
}
