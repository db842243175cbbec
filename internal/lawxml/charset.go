package lawxml

import (
	"io"

	"github.com/olekukonko/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// charsetReader decodes XML declared in a non-UTF-8 encoding such as
// Shift_JIS or EUC-JP.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Newf("unsupported XML encoding %q", label).Wrap(err)
	}
	return enc.NewDecoder().Reader(input), nil
}
