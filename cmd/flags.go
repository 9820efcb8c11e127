package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/stashmate"
)

// scopeFlags are the flags shared by every reporting command: which
// collection, which period, anchored on which date.
type scopeFlags struct {
	collection string
	period     string
	date       string
}

func (s *scopeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.collection, "c", "", "Collection to report on. Defaults to the only collection if one exists.")
	f.StringVar(&s.period, "p", "all", "Period for the report (day, week, month, year, all).")
	f.StringVar(&s.date, "d", "0d", "Anchor date for the period (defaults to today).")
}

func (s *scopeFlags) parse() (stashmate.Period, stashmate.Date, error) {
	period, err := stashmate.ParsePeriod(s.period)
	if err != nil {
		return 0, stashmate.Date{}, fmt.Errorf("parsing period: %w", err)
	}
	anchor, err := stashmate.ParseDate(s.date)
	if err != nil {
		return 0, stashmate.Date{}, fmt.Errorf("parsing date: %w", err)
	}
	return period, anchor, nil
}

// queryFlags are the search, filter and sort flags shared by the listing
// commands.
type queryFlags struct {
	search   string
	field    string
	sort     string
	minCost  float64
	maxCost  float64
	minPrice float64
	maxPrice float64
}

func (q *queryFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&q.search, "q", "", "Case-insensitive substring search over the item's text fields.")
	f.StringVar(&q.field, "field", "", "Restrict the search to one field (name, category, condition, source, status).")
	f.StringVar(&q.sort, "sort", "", "Sort specification, key[:asc|desc], e.g. \"acquired:desc\".")
	f.Float64Var(&q.minCost, "min-cost", -1, "Keep items with cost at least this amount.")
	f.Float64Var(&q.maxCost, "max-cost", -1, "Keep items with cost at most this amount.")
	f.Float64Var(&q.minPrice, "min-price", -1, "Keep items with price at least this amount.")
	f.Float64Var(&q.maxPrice, "max-price", -1, "Keep items with price at most this amount.")
}

func (q *queryFlags) parse() (stashmate.QueryOptions, error) {
	opts := stashmate.QueryOptions{Search: q.search, Field: q.field}
	if q.sort != "" {
		key, asc, err := stashmate.ParseSort(q.sort)
		if err != nil {
			return opts, err
		}
		opts.Key, opts.Asc = key, asc
	}
	opts.MinCost = amountFlag(q.minCost)
	opts.MaxCost = amountFlag(q.maxCost)
	opts.MinPrice = amountFlag(q.minPrice)
	opts.MaxPrice = amountFlag(q.maxPrice)
	return opts, nil
}

// amountFlag turns the flag sentinel (negative means unset) into an optional
// bound.
func amountFlag(v float64) *stashmate.Money {
	if v < 0 {
		return nil
	}
	m := stashmate.USD(v)
	return &m
}
