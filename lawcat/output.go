package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// encodeOutput wraps w so that UTF-8 written to it is stored in the named
// encoding. Characters the encoding lacks are replaced. Close flushes.
func encodeOutput(w io.Writer, name string) (io.WriteCloser, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return nopWriteCloser{w}, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Newf("unsupported output encoding %q", name).Wrap(err)
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}

// mayOverwrite reports whether path may be written. A missing file may
// always be written; an existing one only after a "y" answer on an
// interactive input.
func mayOverwrite(path string, in io.Reader, out io.Writer, interactive bool) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	} else if err != nil {
		return false, errors.Newf("failed to stat %s", path).Wrap(err)
	}
	if !interactive {
		return false, errors.Newf("%s already exists: use --force to overwrite", path)
	}

	fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Newf("failed to read answer").Wrap(err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
