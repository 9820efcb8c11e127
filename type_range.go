package stashmate

import (
	"iter"
)

// Range represents an inclusive range of calendar days.
//
// The zero Range is the unbounded "all time" window: it contains every date.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsUnbounded reports whether the range is the unbounded all-time window.
func (r Range) IsUnbounded() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains returns true if date is included in the range (boundaries included).
// The unbounded range contains every date, including the zero date.
func (r Range) Contains(date Date) bool {
	if r.IsUnbounded() {
		return true
	}
	return !date.Before(r.From) && !date.After(r.To)
}

// Days returns an iterator that yields each date within the range, inclusive.
// It must not be called on an unbounded range.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of days in the range, 0 for an unbounded range.
func (r Range) Len() int {
	if r.IsUnbounded() {
		return 0
	}
	n := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		n++
	}
	return n
}

func (r Range) String() string {
	if r.IsUnbounded() {
		return "all time"
	}
	return r.From.String() + " to " + r.To.String()
}
