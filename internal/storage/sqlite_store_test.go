package storage

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	want := sampleSnapshot()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatalf("Load returned nil after Save")
	}
	assertSnapshotEqual(t, got, want)

	if got.Collection[0].AdjustedValueHigh == nil || *got.Collection[0].AdjustedValueHigh != 30 {
		t.Fatalf("adjusted values lost: %+v", got.Collection[0])
	}
	if got.Collection[0].Colors == nil || got.Collection[0].Colors[0] != "brown" {
		t.Fatalf("colors lost: %+v", got.Collection[0].Colors)
	}
	if len(got.CollectionMilestones) != 1 || got.CollectionMilestones[0] != 1 {
		t.Fatalf("milestones=%v, want [1]", got.CollectionMilestones)
	}
}

func TestSQLiteStoreEmptyDatabase(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fresh.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Fatalf("fresh database must yield nil snapshot, got %+v", snap)
	}
}

func TestSQLiteStoreSaveReplacesDocument(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	first := sampleSnapshot()
	if err := store.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := sampleSnapshot()
	second.Collection = second.Collection[:1]
	second.TotalXP = 999
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Collection) != 1 {
		t.Fatalf("stale rows survived the rewrite: %d items", len(got.Collection))
	}
	if got.TotalXP != 999 {
		t.Fatalf("totalXP=%d, want 999", got.TotalXP)
	}
}

func TestNewByEngine(t *testing.T) {
	dir := t.TempDir()

	js, err := NewByEngine("json", filepath.Join(dir, "s.json"))
	if err != nil {
		t.Fatalf("json engine: %v", err)
	}
	if _, ok := js.(*JSONStore); !ok {
		t.Fatalf("expected *JSONStore, got %T", js)
	}
	_ = js.Close()

	db, err := NewByEngine("sqlite", filepath.Join(dir, "s.db"))
	if err != nil {
		t.Fatalf("sqlite engine: %v", err)
	}
	if _, ok := db.(*SQLiteStore); !ok {
		t.Fatalf("expected *SQLiteStore, got %T", db)
	}
	_ = db.Close()

	if _, err := NewByEngine("bolt", "x"); err == nil {
		t.Fatalf("expected error for unknown engine")
	}
}
