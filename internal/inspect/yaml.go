package inspect

import (
	"github.com/hanpama/lawtable/internal/document"
	"github.com/hanpama/lawtable/internal/grid"
)

type gridDoc struct {
	Title   string      `yaml:"title,omitempty"`
	Width   int         `yaml:"width"`
	Borders bool        `yaml:"borders"`
	Header  []cellDoc   `yaml:"header,omitempty"`
	Rows    [][]cellDoc `yaml:"rows"`
	Remarks []string    `yaml:"remarks,omitempty"`
}

// cellDoc is one grid position. Covered positions carry only the
// [row, col] of their owner; row -1 is the header.
type cellDoc struct {
	Text    string            `yaml:"text,omitempty"`
	RowSpan int               `yaml:"rowspan,omitempty"`
	ColSpan int               `yaml:"colspan,omitempty"`
	Borders map[string]string `yaml:"borders,omitempty"`
	Covered []int             `yaml:"covered_by,omitempty,flow"`
}

func newGridDoc(t *document.Table, g *grid.Grid) gridDoc {
	doc := gridDoc{
		Title:   t.Title,
		Width:   g.Width,
		Borders: grid.DecideBorders(g),
		Header:  cellDocs(g.Header),
		Rows:    make([][]cellDoc, 0, len(g.Rows)),
		Remarks: append(append([]string{}, g.Remarks...), t.Notes...),
	}
	for _, row := range g.Rows {
		doc.Rows = append(doc.Rows, cellDocs(row))
	}
	return doc
}

func cellDocs(row []grid.ResolvedCell) []cellDoc {
	if len(row) == 0 {
		return nil
	}
	out := make([]cellDoc, len(row))
	for i, rc := range row {
		if !rc.IsOrigin() {
			out[i] = cellDoc{Covered: []int{rc.Owner.Row, rc.Owner.Col}}
			continue
		}
		d := cellDoc{Text: rc.Cell.Text}
		if rc.Cell.RowSpan > 1 {
			d.RowSpan = rc.Cell.RowSpan
		}
		if rc.Cell.ColSpan > 1 {
			d.ColSpan = rc.Cell.ColSpan
		}
		d.Borders = edges(rc.Cell.Borders)
		out[i] = d
	}
	return out
}

// edges lists the non-solid edges of b.
func edges(b grid.Borders) map[string]string {
	var m map[string]string
	add := func(name string, v grid.Border) {
		if v == grid.BorderSolid {
			return
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[name] = v.String()
	}
	add("top", b.Top)
	add("bottom", b.Bottom)
	add("left", b.Left)
	add("right", b.Right)
	return m
}
