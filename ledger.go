package stashmate

import (
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Ledger is the complete set of inventory items of one collection, the sole
// source of truth for every view: table rows, KPIs and chart are recomputed
// from a full scan on every change.
//
// Items are always kept in chronological order of acquisition.
type Ledger struct {
	name  string
	items []Item
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{items: make([]Item, 0)}
}

// Name returns the collection name this ledger belongs to.
func (l *Ledger) Name() string { return l.name }

// Rename changes the collection name. The loader uses the name to derive the
// file path, so renaming and saving effectively copies the collection.
func (l *Ledger) Rename(name string) { l.name = name }

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int { return len(l.items) }

// Get returns the item with the given id.
func (l *Ledger) Get(id string) (Item, bool) {
	for _, it := range l.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Append adds items to the ledger, assigning an id to items that have none,
// and maintains the chronological order. The sold/soldOn invariant is
// enforced on every item appended.
func (l *Ledger) Append(items ...Item) {
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		l.items = append(l.items, it.normalized())
	}
	l.stableSort()
}

// AppendOrUpdate upserts items by id: an item whose id is already present
// replaces the existing one, others are appended.
func (l *Ledger) AppendOrUpdate(items ...Item) {
	for _, it := range items {
		replaced := false
		if it.ID != "" {
			for i, existing := range l.items {
				if existing.ID == it.ID {
					l.items[i] = it.normalized()
					replaced = true
					break
				}
			}
		}
		if !replaced {
			l.Append(it)
		}
	}
	l.stableSort()
}

// Update replaces the item with the given id. It is an error to update an
// item that is not in the ledger, ids are never invented on update.
func (l *Ledger) Update(it Item) error {
	for i, existing := range l.items {
		if existing.ID == it.ID {
			l.items[i] = it.normalized()
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no item with id %q", it.ID)
}

// Delete removes the item with the given id, reporting whether it was found.
func (l *Ledger) Delete(id string) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns an iterator over the items accepted by all given filters,
// in chronological order. With no filter it yields every item.
func (l *Ledger) Items(filters ...func(Item) bool) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range l.items {
			accept := true
			for _, filter := range filters {
				if !filter(it) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the items, so the pure query/metrics/series
// functions always observe a consistent state.
func (l *Ledger) Snapshot() []Item { return slices.Clone(l.items) }

// stableSort sorts the ledger by acquisition date. The sort is stable, so
// items acquired on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i].Acquired.Before(l.items[j].Acquired)
	})
}

// BySold is a predicate selecting sold items.
func BySold() func(Item) bool {
	return func(it Item) bool { return it.Status == Sold }
}

// ByStatus is a predicate selecting items in a given status.
func ByStatus(s Status) func(Item) bool {
	return func(it Item) bool { return it.Status == s }
}

// SoldInRange is a predicate selecting sold items whose sale date falls
// within the range. The unbounded range accepts every sold item; a bounded
// range rejects items with no parsable sale date.
func SoldInRange(r Range) func(Item) bool {
	return func(it Item) bool {
		if it.Status != Sold {
			return false
		}
		if r.IsUnbounded() {
			return true
		}
		d := it.SaleDate()
		if d.IsZero() {
			return false
		}
		return r.Contains(d)
	}
}
