package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/hanpama/lawtable/internal/grid"
)

// writeMarkdown writes a pipe table when the grid is plain, and an embedded
// HTML table when it has spans or border styles a pipe table cannot carry.
func writeMarkdown(w io.Writer, title string, g *grid.Grid, borders bool, remarks []string, label string) error {
	if g.HasSpans() || borders {
		if err := renderNodes(w, HTMLTable(title, g, borders)); err != nil {
			return err
		}
	} else {
		if title != "" {
			if _, err := fmt.Fprintf(w, "%s\n\n", title); err != nil {
				return err
			}
		}
		if err := writePipeTable(w, g); err != nil {
			return err
		}
	}

	if len(remarks) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeRemarkList(w, "**【"+label+"】**", remarks)
}

func writePipeTable(w io.Writer, g *grid.Grid) error {
	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	labels := g.HeaderLabels()
	header := make([]any, len(labels))
	for i, l := range labels {
		header[i] = escapePipes(l)
	}
	table.Header(header...)

	for _, row := range g.Rows {
		cells := make([]string, len(row))
		for i, rc := range row {
			cells[i] = escapePipes(rc.Cell.Text)
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// escapePipes keeps a literal "|" from splitting a pipe-table cell.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "&#124;")
}
