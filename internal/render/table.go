package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hanpama/lawtable/internal/grid"
)

// Cell is a placed cell of a plain-text table.
type Cell struct {
	Row     int
	Col     int
	Text    string
	RowSpan int
	ColSpan int
	Borders grid.Borders
}

// Table is a plain-text table. The first HeaderRows rows are the header.
// When Borders is set, rules between two "none" edges are left blank.
type Table struct {
	Rows       int
	Cols       int
	HeaderRows int
	Borders    bool
	Cells      []*Cell
}

// NewTable lays out a resolved grid as a plain-text table.
func NewTable(g *grid.Grid, borders bool) *Table {
	rows := g.Rows
	headerRows := 0
	if len(g.Header) > 0 {
		rows = append([][]grid.ResolvedCell{g.Header}, g.Rows...)
		headerRows = 1
	}

	t := &Table{
		Rows:       len(rows),
		Cols:       g.Width,
		HeaderRows: headerRows,
		Borders:    borders,
	}
	for r, row := range rows {
		for c, rc := range row {
			if !rc.IsOrigin() {
				continue
			}
			t.Cells = append(t.Cells, &Cell{
				Row:     r,
				Col:     c,
				Text:    rc.Cell.Text,
				RowSpan: rc.Cell.RowSpan,
				ColSpan: rc.Cell.ColSpan,
				Borders: rc.Cell.Borders,
			})
		}
	}
	return t
}

func writeText(w io.Writer, title string, g *grid.Grid, borders bool, remarks []string, label string) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, NewTable(g, borders).Render()); err != nil {
		return err
	}
	return writeRemarkList(w, "【"+label+"】", remarks)
}

// Layout is the computed geometry of a Table.
type Layout struct {
	table *Table

	cellOwner  [][]*Cell          // cellOwner[row][col] = the Cell that owns this grid position
	colWidths  []int              // content width for each column
	rowHeights []int              // display row count for each table row (accounting for multiline text)
	cellLines  map[*Cell][]string // cell text split by newlines
}

// Render draws the table with ASCII rules.
func (t *Table) Render() string {
	layout := t.buildLayout()
	return layout.render()
}

func (t *Table) buildLayout() *Layout {
	layout := &Layout{
		table:      t,
		cellOwner:  make([][]*Cell, t.Rows),
		colWidths:  make([]int, t.Cols),
		rowHeights: make([]int, t.Rows),
		cellLines:  make(map[*Cell][]string),
	}

	for i := range layout.cellOwner {
		layout.cellOwner[i] = make([]*Cell, t.Cols)
	}

	for _, cell := range t.Cells {
		for r := 0; r < cell.RowSpan && cell.Row+r < t.Rows; r++ {
			for c := 0; c < cell.ColSpan && cell.Col+c < t.Cols; c++ {
				layout.cellOwner[cell.Row+r][cell.Col+c] = cell
			}
		}
	}

	for _, cell := range t.Cells {
		lines := strings.Split(cell.Text, "\n")
		layout.cellLines[cell] = lines
	}

	layout.computeColWidths()
	layout.computeRowHeights()

	return layout
}

func (l *Layout) computeColWidths() {
	for i := range l.colWidths {
		l.colWidths[i] = 1
	}

	// Single-column cells establish initial widths
	for _, cell := range l.table.Cells {
		if cell.ColSpan == 1 {
			lines := l.cellLines[cell]
			maxWidth := 0
			for _, line := range lines {
				width := displayWidth(line)
				if width > maxWidth {
					maxWidth = width
				}
			}
			if maxWidth > l.colWidths[cell.Col] {
				l.colWidths[cell.Col] = maxWidth
			}
		}
	}

	// Distribute extra width needed for multi-column cells
	for _, cell := range l.table.Cells {
		if cell.ColSpan > 1 {
			lines := l.cellLines[cell]
			maxWidth := 0
			for _, line := range lines {
				width := displayWidth(line)
				if width > maxWidth {
					maxWidth = width
				}
			}

			totalWidth := 0
			for c := 0; c < cell.ColSpan; c++ {
				totalWidth += l.colWidths[cell.Col+c]
			}

			if maxWidth > totalWidth {
				extra := maxWidth - totalWidth
				perCol := extra / cell.ColSpan
				remainder := extra % cell.ColSpan

				for c := 0; c < cell.ColSpan; c++ {
					l.colWidths[cell.Col+c] += perCol
					if c < remainder {
						l.colWidths[cell.Col+c]++
					}
				}
			}
		}
	}
}

func (l *Layout) computeRowHeights() {
	for row := 0; row < l.table.Rows; row++ {
		maxLines := 1

		for _, cell := range l.table.Cells {
			if cell.Row == row {
				lineCount := len(l.cellLines[cell])
				if lineCount > maxLines {
					maxLines = lineCount
				}
			}
		}

		l.rowHeights[row] = maxLines
	}
}

func (l *Layout) render() string {
	var sb strings.Builder

	sb.WriteString(l.renderBorderLine(-1))
	sb.WriteString("\n")

	for rowIdx := 0; rowIdx < l.table.Rows; rowIdx++ {
		displayRows := l.rowHeights[rowIdx]

		for displayRowIdx := 0; displayRowIdx < displayRows; displayRowIdx++ {
			sb.WriteString(l.renderContentLine(rowIdx, displayRowIdx))
			sb.WriteString("\n")
		}

		sb.WriteString(l.renderBorderLine(rowIdx))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderBorderLine renders a horizontal border line.
// rowIdx: -1 for top border, 0..Rows-1 for border after each row.
func (l *Layout) renderBorderLine(rowIdx int) string {
	var sb strings.Builder

	sb.WriteString("+")

	fill := "-"
	if l.table.HeaderRows > 0 && rowIdx == l.table.HeaderRows-1 {
		fill = "="
	}

	for colIdx := 0; colIdx < l.table.Cols; colIdx++ {
		needsHorizontal := l.needsHorizontalLine(rowIdx, colIdx)
		if needsHorizontal {
			sb.WriteString(strings.Repeat(fill, l.colWidths[colIdx]+2))
		} else {
			sb.WriteString(strings.Repeat(" ", l.colWidths[colIdx]+2))
		}

		if colIdx < l.table.Cols-1 {
			needsVertical := l.needsVerticalLine(rowIdx, colIdx)
			if needsVertical {
				sb.WriteString("+")
			} else {
				sb.WriteString("-")
			}
		}
	}

	sb.WriteString("+")

	return sb.String()
}

func (l *Layout) needsHorizontalLine(rowIdx int, colIdx int) bool {
	if rowIdx == -1 {
		return true
	}

	if rowIdx == l.table.Rows-1 {
		return true
	}

	cellAbove := l.cellOwner[rowIdx][colIdx]
	cellBelow := l.cellOwner[rowIdx+1][colIdx]

	if cellAbove == cellBelow {
		return false
	}
	if l.table.Borders && rowIdx >= l.table.HeaderRows &&
		cellAbove.Borders.Bottom == grid.BorderNone && cellBelow.Borders.Top == grid.BorderNone {
		return false
	}
	return true
}

func (l *Layout) needsVerticalLine(rowIdx int, colIdx int) bool {
	if rowIdx == -1 {
		return true
	}

	if rowIdx == l.table.Rows-1 {
		return true
	}

	cellAboveLeft := l.cellOwner[rowIdx][colIdx]
	cellAboveRight := l.cellOwner[rowIdx][colIdx+1]
	cellBelowLeft := l.cellOwner[rowIdx+1][colIdx]
	cellBelowRight := l.cellOwner[rowIdx+1][colIdx+1]

	return cellAboveLeft != cellAboveRight || cellBelowLeft != cellBelowRight
}

// renderContentLine renders a single display row of content.
// rowIdx: table row index
// displayRowIdx: display row index within this table row (0-based)
func (l *Layout) renderContentLine(rowIdx int, displayRowIdx int) string {
	var sb strings.Builder

	sb.WriteString("|")

	colIdx := 0
	for colIdx < l.table.Cols {
		owner := l.cellOwner[rowIdx][colIdx]

		isStartOfColumn := owner != nil && owner.Col == colIdx

		if !isStartOfColumn {
			colIdx++
			continue
		}

		colspan := owner.ColSpan
		totalContentWidth := 0
		for c := 0; c < colspan; c++ {
			totalContentWidth += l.colWidths[colIdx+c]
		}
		if colspan > 1 {
			totalContentWidth += (colspan - 1) * 3
		}

		lines := l.cellLines[owner]
		var text string
		if owner.Row == rowIdx {
			if displayRowIdx < len(lines) {
				text = lines[displayRowIdx]
			} else {
				text = ""
			}
		} else {
			// Rowspan cells only show text in their starting row
			text = ""
		}

		sb.WriteString(" ")
		width := displayWidth(text)
		padding := totalContentWidth - width
		if padding < 0 {
			padding = 0
		}
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", padding))
		sb.WriteString(" ")

		nextColIdx := colIdx + colspan
		if nextColIdx < l.table.Cols {
			sb.WriteString(l.separator(owner, l.cellOwner[rowIdx][nextColIdx]))
		}

		colIdx = nextColIdx
	}

	sb.WriteString("|")

	return sb.String()
}

// separator returns the vertical rule between two horizontally adjacent cells.
func (l *Layout) separator(left, right *Cell) string {
	if l.table.Borders && left.Borders.Right == grid.BorderNone && right.Borders.Left == grid.BorderNone {
		return " "
	}
	return "|"
}

// displayWidth is the terminal width of s; CJK characters count as 2.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
