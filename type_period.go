package stashmate

import (
	"fmt"
	"strings"
)

// Period selects the kind of calendar window used to bound metrics and the
// revenue series.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
	// AllTime is the unbounded period: its Range is the zero Range, and the
	// series builder derives bounds from the data instead.
	AllTime
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	case AllTime:
		return "all time"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Yearly:
		return "year"
	case AllTime:
		return "all"
	default:
		return "period"
	}
}

// Range returns the inclusive calendar window of this period containing the
// anchor date. AllTime returns the zero Range, which Contains everything.
func (p Period) Range(anchor Date) Range {
	if p == AllTime {
		return Range{}
	}
	return Range{From: anchor.StartOf(p), To: anchor.EndOf(p)}
}

// ParsePeriod parses a period name, accepting both the noun and the
// adjective form ("week" and "weekly").
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	case "all", "all-time", "alltime":
		return AllTime, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
