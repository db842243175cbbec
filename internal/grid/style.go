package grid

// DecideBorders reports whether any Origin of the table, header included, has
// an edge other than solid. When it returns false renderers emit no border
// styling at all, since solid is what they draw by default.
func DecideBorders(g *Grid) bool {
	if g == nil {
		return false
	}
	if styled(g.Header) {
		return true
	}
	for _, row := range g.Rows {
		if styled(row) {
			return true
		}
	}
	return false
}

func styled(row []ResolvedCell) bool {
	for _, c := range row {
		if c.Kind == Origin && !c.Cell.Borders.IsDefault() {
			return true
		}
	}
	return false
}
