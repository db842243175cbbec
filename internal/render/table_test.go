package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/lawtable/internal/grid"
)

func resolve(t *testing.T, table grid.Table, mode grid.Mode) *grid.Grid {
	t.Helper()
	g, err := grid.Resolve(table, mode)
	require.NoError(t, err)
	return g
}

func cells(texts ...string) grid.Row {
	row := make(grid.Row, len(texts))
	for i, s := range texts {
		row[i] = grid.Cell{Text: s}
	}
	return row
}

func TestBasicTable(t *testing.T) {
	g := resolve(t, grid.Table{
		Header: cells("h1", "h2"),
		Rows:   []grid.Row{cells("A", "B")},
	}, grid.ModeStrict)

	want := "+----+----+\n" +
		"| h1 | h2 |\n" +
		"+====+====+\n" +
		"| A  | B  |\n" +
		"+----+----+\n"
	assert.Equal(t, want, NewTable(g, false).Render())
}

func TestMultilineCell(t *testing.T) {
	g := resolve(t, grid.Table{
		Header: cells("A", "첫째줄\n둘째줄\n셋째줄"),
		Rows:   []grid.Row{cells("B", "단일줄")},
	}, grid.ModeStrict)

	result := NewTable(g, false).Render()
	t.Logf("\n%s", result)
	checkAllLinesEqualWidth(t, result)

	// top border + 3 display rows + middle border + 1 display row + bottom border + trailing newline = 8 lines
	assert.Len(t, strings.Split(result, "\n"), 8)
}

func TestMultilineWithColSpan(t *testing.T) {
	g := resolve(t, grid.Table{
		Header: grid.Row{{Text: "Header\nLine2\nLine3", ColSpan: 2}, {Text: "C"}},
		Rows:   []grid.Row{cells("A", "B", "C")},
	}, grid.ModeStrict)

	result := NewTable(g, false).Render()
	t.Logf("\n%s", result)
	checkAllLinesEqualWidth(t, result)
}

func TestMultilineWithRowSpan(t *testing.T) {
	g := resolve(t, grid.Table{
		Header: cells("h1", "h2"),
		Rows: []grid.Row{
			{{Text: "A"}, {Text: "Merged\n3\nrows", RowSpan: 3}},
			cells("B"),
			cells("C"),
		},
	}, grid.ModeStrict)

	result := NewTable(g, false).Render()
	t.Logf("\n%s", result)
	checkAllLinesEqualWidth(t, result)
	assert.Equal(t, 1, strings.Count(result, "Merged"))
}

func TestJapaneseWidths(t *testing.T) {
	g := resolve(t, grid.Table{
		Header: cells("区分", "金額"),
		Rows:   []grid.Row{cells("大型自動車", "一万円"), cells("普通", "五千円")},
	}, grid.ModeStrict)

	result := NewTable(g, false).Render()
	t.Logf("\n%s", result)
	checkAllLinesEqualWidth(t, result)
}

func TestTextBordersBlankRules(t *testing.T) {
	table := grid.Table{
		Header: cells("h1", "h2"),
		Rows: []grid.Row{
			{{Text: "X", Borders: grid.Borders{Bottom: grid.BorderNone, Right: grid.BorderNone}}, {Text: "a", Borders: grid.Borders{Left: grid.BorderNone}}},
			{{Text: "Y", Borders: grid.Borders{Top: grid.BorderNone}}, {Text: "b"}},
		},
	}
	g := resolve(t, table, grid.ModeStrict)

	styled := NewTable(g, true).Render()
	t.Logf("\n%s", styled)
	checkAllLinesEqualWidth(t, styled)
	assert.Contains(t, styled, "+    +----+\n")
	assert.Contains(t, styled, "| X    a  |\n")

	plain := NewTable(g, false).Render()
	assert.NotContains(t, plain, "+    +")
	assert.Contains(t, plain, "| X  | a  |\n")
}

func checkAllLinesEqualWidth(t *testing.T, result string) {
	t.Helper()
	lines := strings.Split(result, "\n")
	firstLineWidth := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		width := displayWidth(line)
		if firstLineWidth == 0 {
			firstLineWidth = width
		}
		assert.Equal(t, firstLineWidth, width, "line %d: %s", i, line)
	}
}
