package stashmate

import (
	"testing"
)

// End to end over the seed collection: all-time dashboard.
func TestNewDashboardReport(t *testing.T) {
	l := SeedLedger("inventory")

	r := NewDashboardReport(l, QueryOptions{}, AllTime, NewDate(2025, 10, 15))

	if r.Collection != "inventory" {
		t.Errorf("Collection = %q, want %q", r.Collection, "inventory")
	}
	if !r.Range.IsUnbounded() {
		t.Errorf("Range = %v, want unbounded", r.Range)
	}

	if len(r.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3", len(r.Items))
	}
	if got := r.ResultCount(); got != "3 results" {
		t.Errorf("ResultCount() = %q, want %q", got, "3 results")
	}

	if r.Metrics.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", r.Metrics.TotalCount)
	}
	if !r.Metrics.TotalMade.Equal(USD(85)) {
		t.Errorf("TotalMade = %v, want %v", r.Metrics.TotalMade, USD(85))
	}

	// One sold item on a single day: the all-time series is that one point.
	if len(r.Series) != 1 {
		t.Fatalf("len(Series) = %d, want 1", len(r.Series))
	}
	if r.Series[0].Date != NewDate(2025, 10, 10) || !r.Series[0].Value.Equal(USD(85)) {
		t.Errorf("Series[0] = %+v, want 2025-10-10 at $85", r.Series[0])
	}
}

func TestNewDashboardReport_SearchKeepsKPIs(t *testing.T) {
	l := SeedLedger("inventory")

	r := NewDashboardReport(l, QueryOptions{Search: "funko"}, AllTime, NewDate(2025, 10, 15))

	if len(r.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1", len(r.Items))
	}
	if got := r.ResultCount(); got != "1 result" {
		t.Errorf("ResultCount() = %q, want %q", got, "1 result")
	}
	// KPIs and series cover the whole collection regardless of the search.
	if r.Metrics.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", r.Metrics.TotalCount)
	}
	if len(r.Series) != 1 {
		t.Errorf("len(Series) = %d, want 1", len(r.Series))
	}
}

func TestNewDashboardReport_BoundedPeriod(t *testing.T) {
	l := SeedLedger("inventory")

	// The week of the sale: Monday 2025-10-06 to Sunday 2025-10-12.
	r := NewDashboardReport(l, QueryOptions{}, Weekly, NewDate(2025, 10, 8))

	if r.Range != NewRange(NewDate(2025, 10, 6), NewDate(2025, 10, 12)) {
		t.Fatalf("Range = %v, want the Monday week", r.Range)
	}
	if !r.Metrics.TotalMade.Equal(USD(85)) {
		t.Errorf("TotalMade = %v, want %v", r.Metrics.TotalMade, USD(85))
	}
	// Gap-filled: one point per day of the week.
	if len(r.Series) != 7 {
		t.Fatalf("len(Series) = %d, want 7", len(r.Series))
	}
	var nonZero int
	for _, p := range r.Series {
		if !p.Value.IsZero() {
			nonZero++
		}
	}
	if nonZero != 1 {
		t.Errorf("non-zero series points = %d, want 1", nonZero)
	}

	// The week before: nothing realized.
	before := NewDashboardReport(l, QueryOptions{}, Weekly, NewDate(2025, 10, 1))
	if !before.Metrics.TotalMade.IsZero() {
		t.Errorf("TotalMade = %v, want zero before the sale", before.Metrics.TotalMade)
	}
}
