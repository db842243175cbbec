package render

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hanpama/lawtable/internal/grid"
)

func writeHTML(w io.Writer, title string, g *grid.Grid, borders bool, remarks []string, label string) error {
	if err := renderNodes(w, HTMLTable(title, g, borders)); err != nil {
		return err
	}
	if len(remarks) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderNodes(w, htmlRemarks(label, remarks))
}

func renderNodes(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// HTMLTable builds a <table> for g. Covered positions produce no element;
// spans are written only when greater than 1 and border styles only when
// borders is set and the edge is not solid.
func HTMLTable(title string, g *grid.Grid, borders bool) *html.Node {
	table := element(atom.Table)
	if title != "" {
		caption := element(atom.Caption)
		caption.AppendChild(textNode(title))
		table.AppendChild(caption)
	}

	if len(g.Header) > 0 {
		thead := element(atom.Thead)
		thead.AppendChild(htmlRow(g.Header, atom.Th, borders))
		table.AppendChild(newline())
		table.AppendChild(thead)
	}

	if len(g.Rows) > 0 {
		tbody := element(atom.Tbody)
		for _, row := range g.Rows {
			tbody.AppendChild(newline())
			tbody.AppendChild(htmlRow(row, atom.Td, borders))
		}
		tbody.AppendChild(newline())
		table.AppendChild(newline())
		table.AppendChild(tbody)
	}

	table.AppendChild(newline())
	return table
}

func htmlRow(row []grid.ResolvedCell, cellTag atom.Atom, borders bool) *html.Node {
	tr := element(atom.Tr)
	for _, rc := range row {
		if !rc.IsOrigin() {
			continue
		}
		cell := element(cellTag)
		if rc.Cell.RowSpan > 1 {
			cell.Attr = append(cell.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(rc.Cell.RowSpan)})
		}
		if rc.Cell.ColSpan > 1 {
			cell.Attr = append(cell.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(rc.Cell.ColSpan)})
		}
		if borders {
			if style := borderStyle(rc.Cell.Borders); style != "" {
				cell.Attr = append(cell.Attr, html.Attribute{Key: "style", Val: style})
			}
		}
		if rc.Cell.Text != "" {
			cell.AppendChild(textNode(rc.Cell.Text))
		}
		tr.AppendChild(cell)
	}
	return tr
}

// borderStyle returns CSS for the edges that are not solid.
func borderStyle(b grid.Borders) string {
	var parts []string
	for _, edge := range []struct {
		name  string
		style grid.Border
	}{
		{"border-top", b.Top},
		{"border-bottom", b.Bottom},
		{"border-left", b.Left},
		{"border-right", b.Right},
	} {
		if edge.style != grid.BorderSolid {
			parts = append(parts, edge.name+": "+edge.style.String())
		}
	}
	return strings.Join(parts, "; ")
}

func htmlRemarks(label string, remarks []string) *html.Node {
	div := element(atom.Div)
	div.Attr = []html.Attribute{{Key: "class", Val: "remarks"}}

	p := element(atom.P)
	strong := element(atom.Strong)
	strong.AppendChild(textNode(label))
	p.AppendChild(strong)
	div.AppendChild(p)

	ul := element(atom.Ul)
	for _, r := range remarks {
		li := element(atom.Li)
		li.AppendChild(textNode(r))
		ul.AppendChild(li)
	}
	div.AppendChild(ul)
	return div
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func newline() *html.Node {
	return textNode("\n")
}
