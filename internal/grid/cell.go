// Package grid resolves declared table rows into a dense, render-ready grid.
//
// Cells are declared row by row the way a document author wrote them: each may
// carry a row span, a column span and a border style per edge. Resolve turns
// that sequence into a rectangle where every position is either the Origin of
// exactly one cell or Covered by a span that started elsewhere.
package grid

import "strings"

// Border is the line style of one cell edge.
type Border uint8

const (
	BorderSolid Border = iota
	BorderNone
	BorderDotted
	BorderDouble
)

var borderNames = [...]string{
	BorderSolid:  "solid",
	BorderNone:   "none",
	BorderDotted: "dotted",
	BorderDouble: "double",
}

func (b Border) String() string {
	if int(b) < len(borderNames) {
		return borderNames[b]
	}
	return borderNames[BorderSolid]
}

// ParseBorder maps an attribute value to a Border.
// Unknown and empty values become BorderSolid.
func ParseBorder(s string) Border {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return BorderNone
	case "dotted":
		return BorderDotted
	case "double":
		return BorderDouble
	default:
		return BorderSolid
	}
}

// Borders holds the style of the four edges of a cell.
type Borders struct {
	Top    Border
	Bottom Border
	Left   Border
	Right  Border
}

// IsDefault reports whether every edge is solid.
func (b Borders) IsDefault() bool {
	return b.Top == BorderSolid && b.Bottom == BorderSolid &&
		b.Left == BorderSolid && b.Right == BorderSolid
}

// Cell is one cell as declared in the source table.
//
// A zero RowSpan or ColSpan means the attribute was absent and counts as 1.
type Cell struct {
	Text    string
	RowSpan int
	ColSpan int
	Borders Borders
}

func (c Cell) rowSpan() int {
	if c.RowSpan < 1 {
		return 1
	}
	return c.RowSpan
}

func (c Cell) colSpan() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// Row is an ordered sequence of declared cells.
type Row []Cell

// width is the sum of the row's column spans.
func (r Row) width() int {
	w := 0
	for _, c := range r {
		w += c.colSpan()
	}
	return w
}

// IsRemark reports whether the row is a trailing annotation rather than data:
// its first cell spans more than one column.
func (r Row) IsRemark() bool {
	return len(r) > 0 && r[0].ColSpan > 1
}

// Table is the declared form of a table.
// An empty Header means the table has no explicit header row.
type Table struct {
	Header Row
	Rows   []Row
}

// Position addresses a grid cell.
type Position struct {
	Row int
	Col int
}
