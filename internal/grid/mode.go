package grid

import (
	"strings"

	"github.com/olekukonko/errors"
)

// Mode selects how row spans are discovered.
type Mode uint8

const (
	// ModeStrict honors only declared rowspan and colspan values.
	ModeStrict Mode = iota
	// ModeHybrid additionally infers row spans from matching "none" borders
	// between vertically adjacent cells.
	ModeHybrid
)

func (m Mode) String() string {
	if m == ModeHybrid {
		return "hybrid"
	}
	return "strict"
}

// ParseMode parses "strict" or "hybrid".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return ModeStrict, nil
	case "hybrid":
		return ModeHybrid, nil
	}
	return ModeStrict, errors.Newf("unknown table mode %q: use strict or hybrid", s)
}
