package stashmate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFindRoundTrip(t *testing.T) {
	dir := t.TempDir()

	l := SeedLedger("cards/vintage")
	if err := SaveLedger(dir, l); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}

	found, err := FindLedger(dir, "cards/vintage")
	if err != nil {
		t.Fatalf("FindLedger() error = %v", err)
	}
	if found.Name() != "cards/vintage" {
		t.Errorf("Name() = %q, want %q", found.Name(), "cards/vintage")
	}
	if found.Len() != l.Len() {
		t.Errorf("Len() = %d, want %d", found.Len(), l.Len())
	}
}

func TestFindLedger_Missing(t *testing.T) {
	dir := t.TempDir()

	if _, err := FindLedger(dir, "nope"); err == nil {
		t.Error("FindLedger() of a missing collection did not fail")
	}

	// No name and no file yields an empty default collection.
	l, err := FindLedger(dir, "")
	if err != nil {
		t.Fatalf("FindLedger() error = %v", err)
	}
	if l.Name() != DefaultCollection || l.Len() != 0 {
		t.Errorf("FindLedger() = %q with %d items, want empty %q", l.Name(), l.Len(), DefaultCollection)
	}
}

func TestFindLedgers(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"inventory", "cards/vintage"} {
		l := NewLedger()
		l.Rename(name)
		l.Append(Item{Name: "x", Acquired: NewDate(2025, 10, 2)})
		if err := SaveLedger(dir, l); err != nil {
			t.Fatalf("SaveLedger(%q) error = %v", name, err)
		}
	}

	all, err := FindLedgers(dir, "")
	if err != nil {
		t.Fatalf("FindLedgers() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("FindLedgers() found %d collections, want 2", len(all))
	}

	only, err := FindLedgers(dir, "cards/vintage")
	if err != nil {
		t.Fatalf("FindLedgers() error = %v", err)
	}
	if len(only) != 1 || only[0].Name() != "cards/vintage" {
		t.Errorf("FindLedgers(query) = %v, want only cards/vintage", only)
	}
}

func TestLoadOrSeed_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.jsonl")
	if err := os.WriteFile(path, []byte("not json at all\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l := LoadOrSeed(dir, "inventory")
	if l.Name() != "inventory" {
		t.Errorf("Name() = %q, want %q", l.Name(), "inventory")
	}
	if l.Len() != len(SeedItems()) {
		t.Errorf("Len() = %d, want the %d seed items", l.Len(), len(SeedItems()))
	}
}

func TestLoadOrSeed_FreshStash(t *testing.T) {
	l := LoadOrSeed(t.TempDir(), "")
	if l.Name() != DefaultCollection {
		t.Errorf("Name() = %q, want %q", l.Name(), DefaultCollection)
	}
	if l.Len() != len(SeedItems()) {
		t.Errorf("a fresh stash has %d items, want the %d seed items", l.Len(), len(SeedItems()))
	}
}

func TestLoadOrSeed_KeepsExistingData(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger()
	l.Rename("inventory")
	l.Append(Item{Name: "mine", Acquired: NewDate(2025, 10, 2)})
	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}

	got := LoadOrSeed(dir, "inventory")
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", got.Len())
	}
	if items := got.Snapshot(); items[0].Name != "mine" {
		t.Errorf("item = %q, want the saved item, not seeds", items[0].Name)
	}
}

func TestDeleteLedger(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger()
	l.Rename("inventory")
	if err := SaveLedger(dir, l); err != nil {
		t.Fatal(err)
	}

	if err := DeleteLedger(dir, "inventory"); err != nil {
		t.Fatalf("DeleteLedger() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "inventory.jsonl")); !os.IsNotExist(err) {
		t.Error("collection file still exists after delete")
	}
}
