// Package lawxml reads the tables of e-Gov law XML documents.
package lawxml

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"

	"github.com/hanpama/lawtable/internal/document"
	"github.com/hanpama/lawtable/internal/grid"
)

// Scanner parses law XML and emits one document.Table per <Table> element.
type Scanner struct {
	decoder *xml.Decoder
	pending []*document.Table
	logger  *ll.Logger
}

// NewScanner creates a Scanner reading law XML from r. A nil logger disables
// logging.
func NewScanner(r io.Reader, logger *ll.Logger) *Scanner {
	if logger == nil {
		logger = ll.New("lawxml")
		logger.Disable()
	}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader
	return &Scanner{
		decoder: decoder,
		logger:  logger,
	}
}

// Next returns the next table of the document, or io.EOF.
func (s *Scanner) Next() (document.ContentNode, error) {
	for len(s.pending) == 0 {
		token, err := s.decoder.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.Newf("XML parse error").Wrap(err)
		}

		if elem, ok := token.(xml.StartElement); ok {
			if err := s.handleStartElement(elem); err != nil {
				return nil, err
			}
		}
	}

	table := s.pending[0]
	s.pending = s.pending[1:]
	return table, nil
}

func (s *Scanner) handleStartElement(elem xml.StartElement) error {
	switch elem.Name.Local {
	case "TableStruct":
		var ts TableStructElement
		if err := s.decoder.DecodeElement(&ts, &elem); err != nil {
			return errors.Newf("failed to decode table struct").Wrap(err)
		}
		s.queueTableStruct(&ts)
	case "Table":
		var tbl TableElement
		if err := s.decoder.DecodeElement(&tbl, &elem); err != nil {
			return errors.Newf("failed to decode table").Wrap(err)
		}
		s.pending = append(s.pending, s.parseTable(&tbl, ""))
	}
	return nil
}

func (s *Scanner) queueTableStruct(ts *TableStructElement) {
	title := ""
	if ts.Title != nil {
		title = CellText(ts.Title.Inner)
	}

	var notes []string
	for _, rm := range ts.Remarks {
		notes = append(notes, rm.sentences()...)
	}

	for i := range ts.Tables {
		table := s.parseTable(&ts.Tables[i], title)
		if i == len(ts.Tables)-1 {
			table.Notes = notes
		}
		s.pending = append(s.pending, table)
	}
}

func (s *Scanner) parseTable(tbl *TableElement, title string) *document.Table {
	table := &document.Table{Title: title}

	headers := tbl.HeaderRows
	if len(headers) > 0 {
		table.Declared.Header = s.parseHeaderRow(headers[0])
		// Only one header row is kept; any further ones lead the body.
		for _, hr := range headers[1:] {
			table.Declared.Rows = append(table.Declared.Rows, s.parseHeaderRow(hr))
		}
	}

	for _, tr := range tbl.Rows {
		row := make(grid.Row, 0, len(tr.Columns))
		for _, tc := range tr.Columns {
			row = append(row, s.parseCell(tc))
		}
		// One remark per sentence of a remark row.
		if row.IsRemark() {
			row[0].Text = strings.Join(Sentences(tr.Columns[0].Inner), "\n")
		}
		table.Declared.Rows = append(table.Declared.Rows, row)
	}

	s.logger.Debugf("table %q: %d header cells, %d rows",
		title, len(table.Declared.Header), len(table.Declared.Rows))
	return table
}

func (s *Scanner) parseHeaderRow(hr TableHeaderRow) grid.Row {
	row := make(grid.Row, 0, len(hr.Columns))
	for _, tc := range hr.Columns {
		row = append(row, s.parseCell(tc))
	}
	return row
}

func (s *Scanner) parseCell(tc TableColumn) grid.Cell {
	return grid.Cell{
		Text:    CellText(tc.Inner),
		RowSpan: s.parseSpan("rowspan", tc.RowSpan),
		ColSpan: s.parseSpan("colspan", tc.ColSpan),
		Borders: grid.Borders{
			Top:    grid.ParseBorder(tc.BorderTop),
			Bottom: grid.ParseBorder(tc.BorderBottom),
			Left:   grid.ParseBorder(tc.BorderLeft),
			Right:  grid.ParseBorder(tc.BorderRight),
		},
	}
}

// parseSpan returns 0 for an absent or unreadable span attribute. Negative
// values are passed through so the resolver can report them.
func (s *Scanner) parseSpan(name, value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		s.logger.Warnf("ignoring %s=%q: %v", name, value, err)
		return 0
	}
	return n
}

// XML element structures of the e-Gov law schema

type TableStructElement struct {
	XMLName xml.Name         `xml:"TableStruct"`
	Title   *InnerElement    `xml:"TableStructTitle"`
	Tables  []TableElement   `xml:"Table"`
	Remarks []RemarksElement `xml:"Remarks"`
}

type TableElement struct {
	XMLName     xml.Name         `xml:"Table"`
	WritingMode string           `xml:"WritingMode,attr"`
	HeaderRows  []TableHeaderRow `xml:"TableHeaderRow"`
	Rows        []TableRow       `xml:"TableRow"`
}

type TableHeaderRow struct {
	XMLName xml.Name      `xml:"TableHeaderRow"`
	Columns []TableColumn `xml:"TableHeaderColumn"`
}

type TableRow struct {
	XMLName xml.Name      `xml:"TableRow"`
	Columns []TableColumn `xml:"TableColumn"`
}

type TableColumn struct {
	RowSpan      string `xml:"rowspan,attr"`
	ColSpan      string `xml:"colspan,attr"`
	BorderTop    string `xml:"BorderTop,attr"`
	BorderBottom string `xml:"BorderBottom,attr"`
	BorderLeft   string `xml:"BorderLeft,attr"`
	BorderRight  string `xml:"BorderRight,attr"`
	Inner        string `xml:",innerxml"`
}

type RemarksElement struct {
	XMLName  xml.Name      `xml:"Remarks"`
	Label    *InnerElement `xml:"RemarksLabel"`
	Children []RemarkChild `xml:",any"`
}

// RemarkChild is a Sentence or Item of a Remarks element.
type RemarkChild struct {
	XMLName xml.Name
	Inner   string `xml:",innerxml"`
}

// sentences returns the Sentence and Item texts in document order.
func (r *RemarksElement) sentences() []string {
	var out []string
	for _, c := range r.Children {
		switch c.XMLName.Local {
		case "Sentence", "Item":
			if text := CellText(c.Inner); text != "" {
				out = append(out, text)
			}
		}
	}
	return out
}

type InnerElement struct {
	Inner string `xml:",innerxml"`
}
