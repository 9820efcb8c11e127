package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stashmate"
)

func sampleLedger(t *testing.T) *stashmate.Ledger {
	t.Helper()
	return stashmate.SeedLedger("inventory")
}

func TestDashboardMarkdown(t *testing.T) {
	l := sampleLedger(t)
	report := stashmate.NewDashboardReport(l, stashmate.QueryOptions{}, stashmate.AllTime, stashmate.NewDate(2025, 10, 15))

	got := DashboardMarkdown(report)

	for _, want := range []string{
		"# Dashboard \"inventory\"",
		"## Key Figures",
		"$85.00",  // total made
		"$17.00",  // inventory value
		"$33.00",  // potential profit
		"3 results",
		"Yu-Gi-Oh! Blue-Eyes",
		"2025-10-10",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DashboardMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestDashboardMarkdownFiltered(t *testing.T) {
	l := sampleLedger(t)
	q := stashmate.QueryOptions{Search: "funko"}
	report := stashmate.NewDashboardReport(l, q, stashmate.AllTime, stashmate.Date{})

	got := DashboardMarkdown(report)

	if !strings.Contains(got, "1 result") {
		t.Errorf("DashboardMarkdown() = %q, want filtered count \"1 result\"", got)
	}
	if strings.Contains(got, "Turtwig") {
		t.Errorf("DashboardMarkdown() still lists filtered-out item:\n%s", got)
	}
	// KPIs are computed over the whole collection, not the filtered list.
	if !strings.Contains(got, "$85.00") {
		t.Errorf("DashboardMarkdown() missing unfiltered total made in:\n%s", got)
	}
}

func TestItemsMarkdown(t *testing.T) {
	got := ItemsMarkdown("Listing", stashmate.SeedItems())
	if !strings.Contains(got, "# Listing") {
		t.Errorf("ItemsMarkdown() missing title in:\n%s", got)
	}
	if !strings.Contains(got, "Funko Pop #18") {
		t.Errorf("ItemsMarkdown() missing item row in:\n%s", got)
	}
}

func TestRevenueMarkdown(t *testing.T) {
	series := []stashmate.RevenuePoint{
		{Date: stashmate.NewDate(2025, 10, 1), Revenue: stashmate.USD(85.0), Profit: stashmate.USD(45.0)},
	}
	got := RevenueMarkdown("inventory", stashmate.Monthly, series)
	for _, want := range []string{"# Monthly Revenue \"inventory\"", "$85.00", "+$45.00", "Total"} {
		if !strings.Contains(got, want) {
			t.Errorf("RevenueMarkdown() missing %q in:\n%s", want, got)
		}
	}

	empty := RevenueMarkdown("inventory", stashmate.Monthly, nil)
	if !strings.Contains(empty, "No sold revenue recorded.") {
		t.Errorf("RevenueMarkdown(empty) = %q, want empty notice", empty)
	}
}
