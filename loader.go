package stashmate

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCollection is the collection name used when none is given.
const DefaultCollection = "inventory"

// A stash is a directory of collections, one `<name>.jsonl` ledger file per
// collection, possibly nested ("cards/vintage" lives in cards/vintage.jsonl).

// FindLedger returns the unique ledger matching the collection name.
// An empty name with no ledger on disk yields an empty default collection.
func FindLedger(path, name string) (*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, name)
	if err != nil {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		if name == "" {
			l := NewLedger()
			l.name = DefaultCollection
			return l, nil
		}
		return nil, fmt.Errorf("could not find collection %q", name)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		return nil, fmt.Errorf("multiple collections found for %q", name)
	}
}

// FindLedgers discovers and loads ledgers from a stash directory. An empty
// query loads every collection; otherwise only the named one.
func FindLedgers(path, query string) ([]*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil {
		return nil, err
	}
	var loaded []*Ledger
	for _, fullPath := range ledgerPaths {
		ledger, err := loadLedgerFile(path, fullPath)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, ledger)
	}
	return loaded, nil
}

// LoadOrSeed loads a collection and falls back softly: any read or parse
// failure logs a warning and returns the built-in seed collection instead,
// never an error. This is the ledger store boundary the analytics core sits
// behind.
func LoadOrSeed(path, name string) *Ledger {
	l, err := FindLedger(path, name)
	if err != nil {
		log.Printf("warning: could not load collection %q: %v; starting from the seed collection", name, err)
		return SeedLedger(nameOrDefault(name))
	}
	if l.Len() == 0 && l.Name() == DefaultCollection && name == "" {
		// brand new stash: hand out the demo items rather than an empty table.
		return SeedLedger(DefaultCollection)
	}
	return l
}

func nameOrDefault(name string) string {
	if name == "" {
		return DefaultCollection
	}
	return name
}

// loadLedgerFile opens, decodes, and names a ledger from a file path.
func loadLedgerFile(stashPath, fullPath string) (*Ledger, error) {
	relPath, err := filepath.Rel(stashPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}
	name := strings.TrimSuffix(filepath.ToSlash(relPath), ".jsonl")

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open collection file %q: %w", fullPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode collection file %q: %w", fullPath, err)
	}
	ledger.name = name
	return ledger, nil
}

// SaveLedger saves a ledger to its collection file within the stash
// directory, creating intermediate directories as needed.
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save a collection with an empty name")
	}
	filePath := filepath.Join(path, ledger.Name()+".jsonl")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for collection %q: %w", filePath, err)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening collection file %q for writing: %w", filePath, err)
	}
	defer file.Close()

	return EncodeLedger(file, ledger)
}

// DeleteLedger removes a collection file from the stash directory.
func DeleteLedger(path, name string) error {
	if name == "" {
		return fmt.Errorf("cannot delete a collection with an empty name")
	}
	return os.Remove(filepath.Join(path, name+".jsonl"))
}

// findLedgerPaths scans a stash directory for collection files matching the
// query. An empty query matches all; a missing stash directory is not an
// error, it is just empty.
func findLedgerPaths(path, query string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == path {
				return nil
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			relPath, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.ToSlash(relPath), ".jsonl")
			if query == "" || name == query {
				ledgers = append(ledgers, p)
			}
		}
		return nil
	})

	return ledgers, err
}

// SeedItems returns the built-in demo items a fresh or broken stash falls
// back to.
func SeedItems() []Item {
	return []Item{
		{Name: "Pokémon: Turtwig Holo", Category: "Cards", Condition: "NM", Qty: 2, Cost: USD(8.5), Price: USD(25), Source: "Local show", Acquired: NewDate(2025, 9, 28), Status: Listed},
		{Name: "Funko Pop #18", Category: "Figures", Condition: "Boxed", Qty: 1, Cost: USD(12), Price: USD(28), Source: "Target", Acquired: NewDate(2025, 10, 2), Status: InStock},
		{Name: "Yu-Gi-Oh! Blue-Eyes", Category: "Cards", Condition: "LP", Qty: 1, Cost: USD(40), Price: USD(85), Source: "Online", Acquired: NewDate(2025, 10, 10), Status: Sold, SoldOn: NewDate(2025, 10, 10)},
	}
}

// SeedLedger returns a ledger pre-filled with the seed items.
func SeedLedger(name string) *Ledger {
	l := NewLedger()
	l.name = name
	l.Append(SeedItems()...)
	return l
}
