package stashmate

import (
	"sort"
)

// Point is one day of the gap-filled revenue series.
type Point struct {
	Date  Date
	Value Money
}

// BuildDailySeries converts sold items into a contiguous daily revenue
// series, one point per calendar day, ascending, with zero-value points for
// days without sales.
//
// A bounded range fixes the series bounds; the unbounded range derives them
// from the minimum and maximum sale date found in the data. With no parsable
// sale date at all, the series is empty.
//
// Items whose sale date falls outside the initialized buckets are silently
// dropped; given the bounds derivation this only happens for items with no
// parsable date.
func BuildDailySeries(sold []Item, r Range) []Point {
	if r.IsUnbounded() {
		var min, max Date
		for _, it := range sold {
			d := it.SaleDate()
			if d.IsZero() {
				continue
			}
			if min.IsZero() || d.Before(min) {
				min = d
			}
			if max.IsZero() || d.After(max) {
				max = d
			}
		}
		if min.IsZero() {
			return nil
		}
		r = Range{From: min, To: max}
	}

	var series []Point
	buckets := make(map[Date]int)
	for d := range r.Days() {
		buckets[d] = len(series)
		series = append(series, Point{Date: d, Value: USD(0)})
	}

	for _, it := range sold {
		if i, ok := buckets[it.SaleDate()]; ok {
			series[i].Value = series[i].Value.Add(it.Revenue())
		}
	}
	return series
}

// RevenuePoint is one bucket of the periodic revenue series.
type RevenuePoint struct {
	Date    Date // first day of the bucket's period
	Revenue Money
	Profit  Money
}

// BuildRevenueSeries aggregates sold items into per-period revenue and profit
// buckets, keyed by the first day of the period and ascending. Unlike the
// daily series it is not gap-filled: only periods with sales appear.
// Items with no parsable sale date are skipped. AllTime buckets per day.
func BuildRevenueSeries(sold []Item, p Period) []RevenuePoint {
	if p == AllTime {
		p = Daily
	}
	buckets := make(map[Date]*RevenuePoint)
	for _, it := range sold {
		d := it.SaleDate()
		if d.IsZero() {
			continue
		}
		key := d.StartOf(p)
		b, ok := buckets[key]
		if !ok {
			b = &RevenuePoint{Date: key, Revenue: USD(0), Profit: USD(0)}
			buckets[key] = b
		}
		b.Revenue = b.Revenue.Add(it.Revenue())
		b.Profit = b.Profit.Add(it.Profit())
	}

	series := make([]RevenuePoint, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}
