package stashmate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an inventory item.
type Status int

const (
	Listed Status = iota
	InStock
	Sold
)

func (s Status) String() string {
	switch s {
	case Listed:
		return "Listed"
	case InStock:
		return "In Stock"
	case Sold:
		return "Sold"
	default:
		return "Unknown"
	}
}

// ParseStatus parses a status. It accepts the display names case-insensitively
// and the legacy numeric codes 0/1/2 found in older CSV exports.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "listed", "0":
		return Listed, nil
	case "in stock", "instock", "1":
		return InStock, nil
	case "sold", "2":
		return Sold, nil
	default:
		return Listed, fmt.Errorf("unknown status %q", s)
	}
}

func (s Status) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		// tolerate the legacy numeric encoding.
		var n int
		if err2 := json.Unmarshal(b, &n); err2 != nil {
			return err
		}
		str = fmt.Sprint(n)
	}
	v, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Item is the unit entity of a collection's ledger.
//
// Cost and Price are list amounts per unit batch as entered by the user, not
// per single piece: profit is (Price - Cost) x Qty.
type Item struct {
	ID        string
	Name      string
	Category  string
	Condition string
	Qty       int
	Cost      Money
	Price     Money
	Source    string
	Acquired  Date
	Status    Status
	SoldOn    Date
}

// Quantity returns the effective quantity for money math: missing or
// non-positive stored quantities count as 1. The stored value is left
// untouched, dirty data is clamped at read time only.
func (it Item) Quantity() int {
	if it.Qty < 1 {
		return 1
	}
	return it.Qty
}

// Profit is the derived per-item profit, (price - cost) x qty.
// It is never stored, always recomputed.
func (it Item) Profit() Money { return it.Price.Sub(it.Cost).MulInt(it.Quantity()) }

// Revenue is the sale proceeds of the item, price x qty.
func (it Item) Revenue() Money { return it.Price.MulInt(it.Quantity()) }

// HoldingCost is the acquisition cost of the item, cost x qty.
func (it Item) HoldingCost() Money { return it.Cost.MulInt(it.Quantity()) }

// SaleDate returns the date the sale is accounted on: SoldOn when set,
// falling back to the acquisition date.
func (it Item) SaleDate() Date {
	if !it.SoldOn.IsZero() {
		return it.SoldOn
	}
	return it.Acquired
}

// Validate checks the fields required at the mutation boundary.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("item name is required")
	}
	if it.Acquired.IsZero() {
		return fmt.Errorf("item acquired date is required")
	}
	return nil
}

// normalized enforces the invariant that SoldOn is set if and only if the
// item is Sold: a sold item without a date is stamped with today, an unsold
// item has its stale date cleared. Applied on every mutation.
func (it Item) normalized() Item {
	if it.Status == Sold && it.SoldOn.IsZero() {
		it.SoldOn = Today()
	}
	if it.Status != Sold {
		it.SoldOn = Date{}
	}
	return it
}

// MarshalJSON writes the item with a canonical field order, omitting the
// empty descriptive fields and the sale date of unsold items.
func (it Item) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("name", it.Name)
	w.Optional("category", it.Category)
	w.Optional("condition", it.Condition)
	w.Append("qty", it.Qty)
	w.Append("cost", it.Cost)
	w.Append("price", it.Price)
	w.Optional("source", it.Source)
	w.Append("acquired", it.Acquired)
	w.Append("status", it.Status)
	if !it.SoldOn.IsZero() {
		w.Append("soldOn", it.SoldOn)
	}
	return w.MarshalJSON()
}

func (it *Item) UnmarshalJSON(b []byte) error {
	var temp struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Category  string          `json:"category"`
		Condition string          `json:"condition"`
		Qty       int             `json:"qty"`
		Cost      decimal.Decimal `json:"cost"`
		Price     decimal.Decimal `json:"price"`
		Source    string          `json:"source"`
		Acquired  Date            `json:"acquired"`
		Status    Status          `json:"status"`
		SoldOn    Date            `json:"soldOn"`
	}
	if err := json.Unmarshal(b, &temp); err != nil {
		return err
	}
	*it = Item{
		ID:        temp.ID,
		Name:      temp.Name,
		Category:  temp.Category,
		Condition: temp.Condition,
		Qty:       temp.Qty,
		Cost:      M(temp.Cost, ReportingCurrency),
		Price:     M(temp.Price, ReportingCurrency),
		Source:    temp.Source,
		Acquired:  temp.Acquired,
		Status:    temp.Status,
		SoldOn:    temp.SoldOn,
	}
	return nil
}
