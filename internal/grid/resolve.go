package grid

import (
	"strings"

	"github.com/olekukonko/ll"
)

// Kind tags a resolved grid position.
type Kind uint8

const (
	// Origin is the anchor position of a declared cell. It is emitted once.
	Origin Kind = iota
	// Covered is claimed by the span of an Origin elsewhere and never emitted.
	Covered
)

// ResolvedCell occupies one grid position.
//
// For an Origin, Cell holds the declared cell with its effective spans (always
// at least 1). For a Covered position, Owner is the anchor of the Origin whose
// footprint claims it; header positions use row -1.
type ResolvedCell struct {
	Kind  Kind
	Cell  Cell
	Owner Position
}

// IsOrigin reports whether the position holds an emitted cell.
func (c ResolvedCell) IsOrigin() bool { return c.Kind == Origin }

func origin(c Cell) ResolvedCell {
	return ResolvedCell{Kind: Origin, Cell: c}
}

func emptyOrigin() ResolvedCell {
	return origin(Cell{RowSpan: 1, ColSpan: 1})
}

func covered(owner Position) ResolvedCell {
	return ResolvedCell{Kind: Covered, Owner: owner}
}

// Grid is a resolved table: a Width-wide header and body where every position
// holds exactly one ResolvedCell. Remarks are the texts of annotation rows that
// were taken out of the body.
type Grid struct {
	Width   int
	Header  []ResolvedCell
	Rows    [][]ResolvedCell
	Remarks []string
}

// Empty reports whether the table had neither a header nor body rows.
// Renderers write nothing for an empty grid.
func (g *Grid) Empty() bool {
	return g == nil || (len(g.Header) == 0 && len(g.Rows) == 0)
}

// HasSpans reports whether any Origin spans more than one row or column.
func (g *Grid) HasSpans() bool {
	if g == nil {
		return false
	}
	spans := func(row []ResolvedCell) bool {
		for _, c := range row {
			if c.Kind == Origin && (c.Cell.RowSpan > 1 || c.Cell.ColSpan > 1) {
				return true
			}
		}
		return false
	}
	if spans(g.Header) {
		return true
	}
	for _, row := range g.Rows {
		if spans(row) {
			return true
		}
	}
	return false
}

// Resolver converts declared tables into grids.
type Resolver struct {
	mode   Mode
	logger *ll.Logger
}

// NewResolver creates a Resolver for mode. A nil logger disables logging.
func NewResolver(mode Mode, logger *ll.Logger) *Resolver {
	if logger == nil {
		logger = ll.New("grid")
		logger.Disable()
	}
	return &Resolver{mode: mode, logger: logger}
}

// Resolve resolves t with a silent Resolver.
func Resolve(t Table, mode Mode) (*Grid, error) {
	return NewResolver(mode, nil).Resolve(t)
}

// Mode returns the resolver's inference mode.
func (r *Resolver) Mode() Mode { return r.mode }

// Resolve builds the grid for t.
//
// Irregular input is repaired rather than rejected: short rows are padded,
// spans are clipped to the table, and a cell pushed past the last column by an
// overlapping span widens the table. Only negative spans are an error.
func (r *Resolver) Resolve(t Table) (*Grid, error) {
	if err := validateRow(t.Header, -1); err != nil {
		return nil, err
	}

	body := make([]Row, 0, len(t.Rows))
	var remarks []string
	for i, row := range t.Rows {
		if err := validateRow(row, i); err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		if row.IsRemark() {
			for _, line := range strings.Split(row[0].Text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					remarks = append(remarks, line)
				}
			}
			continue
		}
		body = append(body, row)
	}

	if len(t.Header) == 0 && len(body) == 0 {
		r.logger.Debugf("table has no header and no rows")
		return &Grid{}, nil
	}

	width := t.Header.width()
	for _, row := range body {
		if w := row.width(); w > width {
			width = w
		}
	}

	rows, need := r.place(body, width)
	for need > width {
		r.logger.Debugf("widening grid from %d to %d columns", width, need)
		width = need
		rows, need = r.place(body, width)
	}

	g := &Grid{Width: width, Rows: rows, Remarks: remarks}
	if len(t.Header) > 0 {
		g.Header = placeHeader(t.Header, width)
	} else {
		g.promoteHeader()
	}
	return g, nil
}

// place lays out body rows in a grid of the given width. It returns the rows
// and the width needed to give every declared cell at least one column.
func (r *Resolver) place(body []Row, width int) ([][]ResolvedCell, int) {
	tracker := NewTracker()
	rows := make([][]ResolvedCell, len(body))
	open := make(map[int]Position)
	need := width

	for ri, declared := range body {
		out := make([]ResolvedCell, width)
		next := make(map[int]Position)
		col := 0

		// skip marks positions claimed from earlier rows as covered.
		skip := func() {
			for col < width {
				if _, ok := tracker.Take(ri, col); !ok {
					return
				}
				out[col] = covered(ownerAt(rows, ri-1, col))
				col++
			}
		}

		for ci, cell := range declared {
			skip()
			if col >= width {
				r.logger.Debugf("row %d cell %d starts at column %d past width %d", ri, ci, col, width)
				if col+1 > need {
					need = col + 1
				}
				col++
				continue
			}

			span := cell.colSpan()
			if col+span > width {
				r.logger.Debugf("row %d cell %d: colspan %d truncated to %d", ri, ci, span, width-col)
				span = width - col
			}
			for k := 1; k < span; k++ {
				if tracker.Covers(ri, col+k) {
					r.logger.Debugf("row %d cell %d: colspan %d truncated to %d by a span from above", ri, ci, span, k)
					span = k
					break
				}
			}

			if owner, ok := open[col]; ok && continues(cell, span, rows[owner.Row][owner.Col].Cell) {
				rows[owner.Row][owner.Col].Cell.RowSpan++
				for k := 0; k < span; k++ {
					out[col+k] = covered(owner)
				}
				next[col] = owner
				r.logger.Debugf("row %d column %d continues cell at %d,%d", ri, col, owner.Row, owner.Col)
				col += span
				continue
			}

			rs := cell.rowSpan()
			if left := len(body) - ri; rs > left {
				r.logger.Debugf("row %d cell %d: rowspan %d clipped to %d", ri, ci, rs, left)
				rs = left
			}

			placed := cell
			placed.RowSpan, placed.ColSpan = rs, span
			out[col] = origin(placed)
			for k := 1; k < span; k++ {
				out[col+k] = covered(Position{Row: ri, Col: col})
			}
			for k := 0; k < span; k++ {
				tracker.Reserve(ri, col+k, rs-1)
			}
			if r.mode == ModeHybrid && opensContinuation(cell) {
				next[col] = Position{Row: ri, Col: col}
			}
			col += span
		}

		for col < width {
			if _, ok := tracker.Take(ri, col); ok {
				out[col] = covered(ownerAt(rows, ri-1, col))
			} else {
				out[col] = emptyOrigin()
			}
			col++
		}

		rows[ri] = out
		open = next
	}
	return rows, need
}

// ownerAt returns the anchor of whatever occupies rows[r][c].
func ownerAt(rows [][]ResolvedCell, r, c int) Position {
	if rc := rows[r][c]; rc.Kind == Covered {
		return rc.Owner
	}
	return Position{Row: r, Col: c}
}
