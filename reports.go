package stashmate

import "fmt"

// DashboardReport is one full recompute pass over a collection: the filtered
// and sorted item list, the aggregate KPIs, and the gap-filled daily revenue
// series, all derived from the same snapshot so every view is consistent.
type DashboardReport struct {
	Collection string
	Period     Period
	Anchor     Date
	Range      Range

	Items   []Item
	Metrics Metrics
	Series  []Point
}

// NewDashboardReport resolves the time range from the period and anchor and
// recomputes everything from a snapshot of the ledger: query first, then
// metrics over the whole snapshot (KPIs ignore the search filter), then the
// daily series over the sold items in range. Synchronous and total, no
// partial update state.
func NewDashboardReport(l *Ledger, q QueryOptions, p Period, anchor Date) *DashboardReport {
	if anchor.IsZero() {
		anchor = Today()
	}
	r := p.Range(anchor)
	snapshot := l.Snapshot()

	sold := make([]Item, 0, len(snapshot))
	inRange := SoldInRange(r)
	for _, it := range snapshot {
		if inRange(it) {
			sold = append(sold, it)
		}
	}

	return &DashboardReport{
		Collection: l.Name(),
		Period:     p,
		Anchor:     anchor,
		Range:      r,
		Items:      Query(snapshot, q),
		Metrics:    ComputeMetrics(snapshot, r),
		Series:     BuildDailySeries(sold, r),
	}
}

// ResultCount phrases the number of matching items, e.g. "3 results".
func (r *DashboardReport) ResultCount() string {
	if len(r.Items) == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", len(r.Items))
}
