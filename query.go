package stashmate

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey names an item field items can be sorted by.
type SortKey string

const (
	ByName      SortKey = "name"
	ByCategory  SortKey = "category"
	ByCondition SortKey = "condition"
	ByQty       SortKey = "qty"
	ByCost      SortKey = "cost"
	ByPrice     SortKey = "price"
	ByProfit    SortKey = "profit"
	BySource    SortKey = "source"
	ByAcquired  SortKey = "acquired"
	ByState     SortKey = "status"
	BySoldOn    SortKey = "soldOn"
)

// fieldKind classifies a sort key so the comparator is picked up front
// instead of guessing from runtime values.
type fieldKind int

const (
	textField fieldKind = iota
	numberField
	dateField
)

func (k SortKey) kind() fieldKind {
	switch k {
	case ByQty, ByCost, ByPrice, ByProfit:
		return numberField
	case ByAcquired, BySoldOn:
		return dateField
	default:
		return textField
	}
}

// ParseSort parses a "key:direction" sort specification like "acquired:desc".
// The direction defaults to ascending.
func ParseSort(s string) (key SortKey, asc bool, err error) {
	keyStr, dirStr, _ := strings.Cut(s, ":")
	key = SortKey(strings.TrimSpace(keyStr))
	switch key {
	case ByName, ByCategory, ByCondition, ByQty, ByCost, ByPrice, ByProfit, BySource, ByAcquired, ByState, BySoldOn:
	default:
		return "", false, fmt.Errorf("unknown sort key %q", key)
	}
	switch strings.TrimSpace(dirStr) {
	case "", "asc":
		asc = true
	case "desc":
		asc = false
	default:
		return "", false, fmt.Errorf("unknown sort direction %q", dirStr)
	}
	return key, asc, nil
}

// QueryOptions selects and orders a snapshot of items.
type QueryOptions struct {
	// Search is matched case-insensitively as a substring of the item's
	// descriptive fields. Empty matches everything.
	Search string
	// Field optionally restricts the search to a single field
	// (name, category, condition, source, status).
	Field string

	Key SortKey
	Asc bool

	// Optional price window filters.
	MinCost, MaxCost   *Money
	MinPrice, MaxPrice *Money
}

// Query filters and sorts a snapshot of items. It is a pure function: the
// input slice is not modified and ties retain their input order.
func Query(items []Item, q QueryOptions) []Item {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(searchText(it, q.Field), needle) {
			continue
		}
		if !inWindow(it.Cost, q.MinCost, q.MaxCost) || !inWindow(it.Price, q.MinPrice, q.MaxPrice) {
			continue
		}
		out = append(out, it)
	}

	key := q.Key
	if key == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareItems(out[i], out[j], key)
		if !q.Asc {
			c = -c
		}
		return c < 0
	})
	return out
}

func searchText(it Item, field string) string {
	switch field {
	case "name":
		return strings.ToLower(it.Name)
	case "category":
		return strings.ToLower(it.Category)
	case "condition":
		return strings.ToLower(it.Condition)
	case "source":
		return strings.ToLower(it.Source)
	case "status":
		return strings.ToLower(it.Status.String())
	default:
		joined := strings.Join([]string{it.Name, it.Category, it.Condition, it.Source, it.Status.String()}, " ")
		return strings.ToLower(joined)
	}
}

func inWindow(m Money, min, max *Money) bool {
	if min != nil && m.Amount().LessThan(min.Amount()) {
		return false
	}
	if max != nil && m.Amount().GreaterThan(max.Amount()) {
		return false
	}
	return true
}

// compareItems dispatches to the typed comparator of the key's field kind.
func compareItems(a, b Item, key SortKey) int {
	switch key.kind() {
	case dateField:
		da, db := dateOf(a, key), dateOf(b, key)
		if da.Before(db) {
			return -1
		}
		if da.After(db) {
			return 1
		}
		return 0
	case numberField:
		return numberOf(a, key).Cmp(numberOf(b, key))
	default:
		return strings.Compare(textOf(a, key), textOf(b, key))
	}
}

func dateOf(it Item, key SortKey) Date {
	if key == BySoldOn {
		return it.SoldOn
	}
	return it.Acquired
}

func numberOf(it Item, key SortKey) decimal.Decimal {
	switch key {
	case ByQty:
		return decimal.NewFromInt(int64(it.Qty))
	case ByCost:
		return it.Cost.Amount()
	case ByPrice:
		return it.Price.Amount()
	case ByProfit:
		return it.Profit().Amount()
	}
	return decimal.Decimal{}
}

func textOf(it Item, key SortKey) string {
	switch key {
	case ByName:
		return it.Name
	case ByCategory:
		return it.Category
	case ByCondition:
		return it.Condition
	case BySource:
		return it.Source
	case ByState:
		return it.Status.String()
	}
	return ""
}

// SortKeys lists the valid sort keys, for CLI usage strings and completion.
func SortKeys() []SortKey {
	return slices.Clone([]SortKey{ByName, ByCategory, ByCondition, ByQty, ByCost, ByPrice, ByProfit, BySource, ByAcquired, ByState, BySoldOn})
}
