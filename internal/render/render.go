package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/sourcegraph/conc/iter"

	"github.com/hanpama/lawtable/internal/document"
	"github.com/hanpama/lawtable/internal/grid"
)

// Format selects the output syntax.
type Format uint8

const (
	FormatMarkdown Format = iota
	FormatHTML
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatText:
		return "text"
	default:
		return "markdown"
	}
}

// ParseFormat parses "markdown", "html" or "text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "text", "txt":
		return FormatText, nil
	}
	return FormatMarkdown, errors.Newf("unknown output format %q: use markdown, html or text", s)
}

// DefaultRemarkLabel heads the remarks written after a table.
const DefaultRemarkLabel = "備考"

// Options controls table rendering.
type Options struct {
	Format      Format
	Mode        grid.Mode
	RemarkLabel string
	Logger      *ll.Logger
}

func (o Options) logger() *ll.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	logger := ll.New("render")
	logger.Disable()
	return logger
}

func (o Options) remarkLabel() string {
	if o.RemarkLabel == "" {
		return DefaultRemarkLabel
	}
	return o.RemarkLabel
}

// Tables renders every table of a ContentNodeScanner in document order.
// Tables are resolved concurrently; rendering is sequential.
func Tables(scanner document.ContentNodeScanner, w io.Writer, opts Options) error {
	logger := opts.logger()

	var tables []*document.Table
	for {
		node, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Newf("error reading content").Wrap(err)
		}
		if t, ok := node.(*document.Table); ok {
			tables = append(tables, t)
		}
	}
	logger.Debugf("resolving %d tables in %s mode", len(tables), opts.Mode)

	resolver := grid.NewResolver(opts.Mode, opts.Logger)
	grids, err := iter.MapErr(tables, func(t **document.Table) (*grid.Grid, error) {
		g, err := resolver.Resolve((*t).Declared)
		if err != nil {
			return nil, errors.Newf("table %q", (*t).Title).Wrap(err)
		}
		return g, nil
	})
	if err != nil {
		return err
	}

	written := 0
	for i, t := range tables {
		if grids[i].Empty() {
			logger.Debugf("skipping empty table %q", t.Title)
			continue
		}
		if written > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteTable(w, t, grids[i], opts); err != nil {
			return err
		}
		written++
	}
	return nil
}

// WriteTable writes one resolved table with its title and remarks. It writes
// nothing for an empty grid.
func WriteTable(w io.Writer, t *document.Table, g *grid.Grid, opts Options) error {
	if g.Empty() {
		return nil
	}
	borders := grid.DecideBorders(g)
	remarks := append(append([]string{}, g.Remarks...), t.Notes...)

	var err error
	switch opts.Format {
	case FormatHTML:
		err = writeHTML(w, t.Title, g, borders, remarks, opts.remarkLabel())
	case FormatText:
		err = writeText(w, t.Title, g, borders, remarks, opts.remarkLabel())
	default:
		err = writeMarkdown(w, t.Title, g, borders, remarks, opts.remarkLabel())
	}
	if err != nil {
		return errors.Newf("failed to render table %q", t.Title).Wrap(err)
	}
	return nil
}

// writeRemarkList writes remarks as a labelled list of "- " items.
func writeRemarkList(w io.Writer, label string, remarks []string) error {
	if len(remarks) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, label); err != nil {
		return err
	}
	for _, r := range remarks {
		if _, err := fmt.Fprintf(w, "- %s\n", r); err != nil {
			return err
		}
	}
	return nil
}
