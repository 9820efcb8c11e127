package stashmate

// Metrics are the aggregate financial indicators of a ledger over a resolved
// time range. Every sum treats missing numeric fields as zero; no item is
// excluded from TotalCount regardless of data quality.
type Metrics struct {
	// TotalCount is the total quantity across all items, sold or not.
	TotalCount int
	// InventoryValue is the acquisition cost of unsold inventory on hand.
	InventoryValue Money
	// PotentialProfit is the profit if all unsold inventory sells at list price.
	PotentialProfit Money
	// TotalMade is the realized revenue of items sold within the range.
	TotalMade Money
}

// ComputeMetrics aggregates the items against a resolved range. It is a pure
// function of its inputs: calling it twice on the same snapshot and range
// yields identical results.
func ComputeMetrics(items []Item, r Range) Metrics {
	m := Metrics{
		InventoryValue:  USD(0),
		PotentialProfit: USD(0),
		TotalMade:       USD(0),
	}
	inRange := SoldInRange(r)
	for _, it := range items {
		m.TotalCount += it.Qty
		if it.Status != Sold {
			m.InventoryValue = m.InventoryValue.Add(it.HoldingCost())
			m.PotentialProfit = m.PotentialProfit.Add(it.Profit())
		} else if inRange(it) {
			m.TotalMade = m.TotalMade.Add(it.Revenue())
		}
	}
	return m
}
