package stashmate

import (
	"slices"
	"testing"
)

func TestRange_Contains(t *testing.T) {
	week := NewRange(NewDate(2025, 10, 13), NewDate(2025, 10, 19))

	tests := []struct {
		name string
		r    Range
		d    Date
		want bool
	}{
		{"start boundary included", week, NewDate(2025, 10, 13), true},
		{"end boundary included", week, NewDate(2025, 10, 19), true},
		{"inside", week, NewDate(2025, 10, 15), true},
		{"day before", week, NewDate(2025, 10, 12), false},
		{"day after", week, NewDate(2025, 10, 20), false},
		{"unbounded contains any date", Range{}, NewDate(1970, 1, 1), true},
		{"unbounded contains the zero date", Range{}, Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.d); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	// Crossing the February boundary of a leap year.
	r := NewRange(NewDate(2024, 2, 27), NewDate(2024, 3, 2))
	got := slices.Collect(r.Days())

	want := []Date{
		NewDate(2024, 2, 27),
		NewDate(2024, 2, 28),
		NewDate(2024, 2, 29),
		NewDate(2024, 3, 1),
		NewDate(2024, 3, 2),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if r.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(want))
	}
}

func TestNewRange_Swaps(t *testing.T) {
	r := NewRange(NewDate(2025, 10, 19), NewDate(2025, 10, 13))
	if r.From != NewDate(2025, 10, 13) || r.To != NewDate(2025, 10, 19) {
		t.Errorf("NewRange() = %v, want swapped bounds", r)
	}
}

func TestPeriod_Range(t *testing.T) {
	anchor := NewDate(2025, 10, 15) // a Wednesday

	if r := AllTime.Range(anchor); !r.IsUnbounded() {
		t.Errorf("AllTime.Range() = %v, want unbounded", r)
	}
	if r := Weekly.Range(anchor); r != NewRange(NewDate(2025, 10, 13), NewDate(2025, 10, 19)) {
		t.Errorf("Weekly.Range() = %v, want Monday to Sunday", r)
	}
	if r := Monthly.Range(anchor); r != NewRange(NewDate(2025, 10, 1), NewDate(2025, 10, 31)) {
		t.Errorf("Monthly.Range() = %v, want whole month", r)
	}
}
