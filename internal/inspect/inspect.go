package inspect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/errors"
	"go.yaml.in/yaml/v3"

	"github.com/hanpama/lawtable/internal/document"
	"github.com/hanpama/lawtable/internal/grid"
)

// TextWidth is the display width cell text is truncated to.
const TextWidth = 40

// Options controls an inspection run.
type Options struct {
	// YAML dumps the resolved grids instead of the declared structure.
	YAML bool
	Mode grid.Mode
}

// Tables inspects every table of scanner in document order.
func Tables(scanner document.ContentNodeScanner, w io.Writer, opts Options) error {
	var docs []gridDoc
	i := 0
	for {
		node, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Newf("error reading content").Wrap(err)
		}
		t, ok := node.(*document.Table)
		if !ok {
			continue
		}
		i++

		if opts.YAML {
			g, err := grid.Resolve(t.Declared, opts.Mode)
			if err != nil {
				return errors.Newf("table %d", i).Wrap(err)
			}
			docs = append(docs, newGridDoc(t, g))
			continue
		}
		if i > 1 {
			fmt.Fprintln(w)
		}
		Structure(w, i, t)
	}

	if opts.YAML {
		data, err := yaml.Marshal(docs)
		if err != nil {
			return errors.Newf("failed to encode grids").Wrap(err)
		}
		_, err = w.Write(data)
		return err
	}
	return nil
}

// Structure writes one row per declared cell of t followed by the findings
// of Check.
func Structure(w io.Writer, n int, t *document.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	title := fmt.Sprintf("Table %d", n)
	if t.Title != "" {
		title += ": " + t.Title
	}
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"row", "cell", "rowspan", "colspan", "top", "bottom", "left", "right", "text"})

	for i, c := range t.Declared.Header {
		tw.AppendRow(cellRow("H", i, c))
	}
	if len(t.Declared.Header) > 0 && len(t.Declared.Rows) > 0 {
		tw.AppendSeparator()
	}
	for r, row := range t.Declared.Rows {
		for i, c := range row {
			tw.AppendRow(cellRow(strconv.Itoa(r), i, c))
		}
	}
	tw.Render()

	for _, f := range Check(t.Declared) {
		fmt.Fprintln(w, f)
	}
}

func cellRow(row string, i int, c grid.Cell) table.Row {
	text := runewidth.Truncate(c.Text, TextWidth, "…")
	if text == "" {
		text = "(empty)"
	}
	return table.Row{
		row, i, declared(c.RowSpan), declared(c.ColSpan),
		c.Borders.Top, c.Borders.Bottom, c.Borders.Left, c.Borders.Right,
		text,
	}
}

// declared prints an absent span attribute as "-".
func declared(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
