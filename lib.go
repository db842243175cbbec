// Package lawtable extracts the tables of e-Gov law XML documents and renders
// them as Markdown, HTML or plain text.
//
// Declared cells are resolved into a rectangular grid: explicit rowspan and
// colspan attributes are honoured, conflicting or overlong spans are clipped,
// and in hybrid mode a cell whose bottom border is "none" absorbs the empty,
// top-border-less cells below it. Border styles are emitted only for tables
// that actually carry non-solid borders.
//
// # Example Usage
//
//	file, err := os.Open("405AC0000000088.xml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	if err := lawtable.Convert(file, os.Stdout, lawtable.Options{}); err != nil {
//		log.Fatal(err)
//	}
//
// # Formats
//
// Markdown (default): pipe tables for plain grids, embedded HTML for grids
// with spans or border styles. HTML: a <table> per table. Text: ASCII
// tables sized by terminal display width.
package lawtable

import (
	"io"
	"os"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"

	"github.com/hanpama/lawtable/internal/grid"
	"github.com/hanpama/lawtable/internal/inspect"
	"github.com/hanpama/lawtable/internal/lawxml"
	"github.com/hanpama/lawtable/internal/render"
)

// Format selects the output syntax.
type Format = render.Format

const (
	Markdown = render.FormatMarkdown
	HTML     = render.FormatHTML
	Text     = render.FormatText
)

// Mode selects how row spans are inferred.
type Mode = grid.Mode

const (
	// Hybrid honours declared spans and infers row spans from borders.
	Hybrid = grid.ModeHybrid
	// Strict honours declared spans only.
	Strict = grid.ModeStrict
)

// ParseFormat parses "markdown", "html" or "text".
func ParseFormat(s string) (Format, error) { return render.ParseFormat(s) }

// ParseMode parses "strict" or "hybrid".
func ParseMode(s string) (Mode, error) { return grid.ParseMode(s) }

// Options controls conversion. The zero value renders Markdown in strict
// mode; use DefaultOptions for hybrid inference.
type Options struct {
	Format Format
	Mode   Mode
	// RemarkLabel heads the remarks written after each table. Empty means 備考.
	RemarkLabel string
	// Logger receives debug output. Nil disables logging.
	Logger *ll.Logger
}

// DefaultOptions renders Markdown with hybrid span inference.
func DefaultOptions() Options {
	return Options{Format: Markdown, Mode: Hybrid}
}

// Convert reads a law XML document from r and writes every table it
// contains to w.
//
// Example:
//
//	lawtable.Convert(strings.NewReader(xml), os.Stdout, lawtable.DefaultOptions())
func Convert(r io.Reader, w io.Writer, opts Options) error {
	scanner := lawxml.NewScanner(r, opts.Logger)
	err := render.Tables(scanner, w, render.Options{
		Format:      opts.Format,
		Mode:        opts.Mode,
		RemarkLabel: opts.RemarkLabel,
		Logger:      opts.Logger,
	})
	if err != nil {
		return errors.Newf("failed to convert tables").Wrap(err)
	}
	return nil
}

// ConvertFile is Convert on the named file.
func ConvertFile(path string, w io.Writer, opts Options) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Newf("failed to open %s", path).Wrap(err)
	}
	defer file.Close()
	return Convert(file, w, opts)
}

// Inspect writes the declared structure of every table in r with border
// warnings, or a YAML dump of the resolved grids when yaml is set.
func Inspect(r io.Reader, w io.Writer, mode Mode, yaml bool) error {
	scanner := lawxml.NewScanner(r, nil)
	if err := inspect.Tables(scanner, w, inspect.Options{YAML: yaml, Mode: mode}); err != nil {
		return errors.Newf("failed to inspect tables").Wrap(err)
	}
	return nil
}
