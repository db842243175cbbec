package grid

import "fmt"

// InvalidSpanError reports a span value no table can have.
// Row is -1 for the header row; Cell is the index of the declared cell.
type InvalidSpanError struct {
	Row   int
	Cell  int
	Axis  string // "rowspan" or "colspan"
	Value int
}

func (e *InvalidSpanError) Error() string {
	where := fmt.Sprintf("row %d", e.Row)
	if e.Row < 0 {
		where = "header row"
	}
	return fmt.Sprintf("invalid %s %d at %s, cell %d", e.Axis, e.Value, where, e.Cell)
}

func validateRow(r Row, rowIdx int) error {
	for i, c := range r {
		if c.RowSpan < 0 {
			return &InvalidSpanError{Row: rowIdx, Cell: i, Axis: "rowspan", Value: c.RowSpan}
		}
		if c.ColSpan < 0 {
			return &InvalidSpanError{Row: rowIdx, Cell: i, Axis: "colspan", Value: c.ColSpan}
		}
	}
	return nil
}
