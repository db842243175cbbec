package document

import "github.com/hanpama/lawtable/internal/grid"

// ContentNode is the interface for document content items
type ContentNode interface {
	IsContent()
}

// Table is a table as declared in the source document.
type Table struct {
	// Title is the caption the document gives the table, if any.
	Title string
	// Declared holds the header row and body rows with their attributes.
	Declared grid.Table
	// Notes are remark sentences the document attaches after the table.
	Notes []string
}

func (t *Table) IsContent() {}

// ContentNodeScanner yields content nodes until it returns io.EOF.
type ContentNodeScanner interface {
	Next() (ContentNode, error)
}
