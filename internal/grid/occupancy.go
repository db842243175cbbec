package grid

// Tracker records which columns are claimed by row spans from earlier rows.
type Tracker struct {
	until map[int]int // column -> last row index still covered
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{until: make(map[int]int)}
}

// Reserve claims col for the remaining rows after row.
func (t *Tracker) Reserve(row, col, remaining int) {
	if remaining <= 0 {
		return
	}
	t.until[col] = row + remaining
}

// Take reports whether col is claimed at row and how many rows the claim
// still covers after it. A claim is released once nothing is left.
func (t *Tracker) Take(row, col int) (int, bool) {
	last, ok := t.until[col]
	if !ok {
		return 0, false
	}
	if row > last {
		delete(t.until, col)
		return 0, false
	}
	left := last - row
	if left == 0 {
		delete(t.until, col)
	}
	return left, true
}

// Len returns the number of live claims.
func (t *Tracker) Len() int {
	return len(t.until)
}

// Covers reports whether col is claimed at row without consuming the claim.
func (t *Tracker) Covers(row, col int) bool {
	last, ok := t.until[col]
	return ok && row <= last
}
