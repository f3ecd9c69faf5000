package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleSnapshot() *Snapshot {
	adjLow, adjHigh := 12.5, 30.0
	snap := &Snapshot{
		Collection: []Item{
			{
				ID:                 "item-1",
				Name:               "Cubbie",
				AnimalType:         "bear",
				Colors:             []string{"brown"},
				EstimatedValueLow:  10,
				EstimatedValueHigh: 25,
				AdjustedValueLow:   &adjLow,
				AdjustedValueHigh:  &adjHigh,
				Tier:               2,
				Condition:          "mint",
				Timestamp:          time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
			},
			{
				ID:                 "item-2",
				Name:               "Hoppity",
				AnimalType:         "rabbit",
				EstimatedValueLow:  5,
				EstimatedValueHigh: 8,
				Tier:               1,
				Timestamp:          time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC),
			},
		},
		UserName:  "Robin",
		Onboarded: true,
		UnlockedAchievements: map[string]time.Time{
			"first_scan": time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC),
		},
		CollectionMilestones: []int{1},
		ValueMilestones:      []int{},
		StreakMilestones:     []int{},
		CurrentStreak:        2,
		LongestStreak:        4,
		LastScanDate:         "2025-03-10",
		TotalXP:              160,
		LastKnownLevel:       2,
		CompletedChallenges:  []string{"daily-2025-03-09"},
		LoginStreak:          3,
		LastLoginDate:        "2025-03-10",
	}
	return snap
}

func assertSnapshotEqual(t *testing.T, got, want *Snapshot) {
	t.Helper()
	if len(got.Collection) != len(want.Collection) {
		t.Fatalf("collection size=%d, want %d", len(got.Collection), len(want.Collection))
	}
	for i := range want.Collection {
		g, w := got.Collection[i], want.Collection[i]
		if g.ID != w.ID || g.Name != w.Name || g.Tier != w.Tier {
			t.Fatalf("item %d mismatch: got %+v, want %+v", i, g, w)
		}
		if g.EffectiveLow() != w.EffectiveLow() || g.EffectiveHigh() != w.EffectiveHigh() {
			t.Fatalf("item %d effective values: got %v-%v, want %v-%v",
				i, g.EffectiveLow(), g.EffectiveHigh(), w.EffectiveLow(), w.EffectiveHigh())
		}
		if !g.Timestamp.Equal(w.Timestamp) {
			t.Fatalf("item %d timestamp: got %v, want %v", i, g.Timestamp, w.Timestamp)
		}
	}
	if got.UserName != want.UserName || got.Onboarded != want.Onboarded {
		t.Fatalf("profile mismatch: got %q/%v", got.UserName, got.Onboarded)
	}
	if len(got.UnlockedAchievements) != len(want.UnlockedAchievements) {
		t.Fatalf("achievements=%v, want %v", got.UnlockedAchievements, want.UnlockedAchievements)
	}
	if got.CurrentStreak != want.CurrentStreak || got.LongestStreak != want.LongestStreak {
		t.Fatalf("streaks: got %d/%d, want %d/%d",
			got.CurrentStreak, got.LongestStreak, want.CurrentStreak, want.LongestStreak)
	}
	if got.LastScanDate != want.LastScanDate || got.LastLoginDate != want.LastLoginDate {
		t.Fatalf("dates: got %q/%q", got.LastScanDate, got.LastLoginDate)
	}
	if got.TotalXP != want.TotalXP || got.LastKnownLevel != want.LastKnownLevel {
		t.Fatalf("xp/level: got %d/%d, want %d/%d",
			got.TotalXP, got.LastKnownLevel, want.TotalXP, want.LastKnownLevel)
	}
	if len(got.CompletedChallenges) != len(want.CompletedChallenges) {
		t.Fatalf("challenges=%v, want %v", got.CompletedChallenges, want.CompletedChallenges)
	}
	if got.LoginStreak != want.LoginStreak {
		t.Fatalf("login streak=%d, want %d", got.LoginStreak, want.LoginStreak)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
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

	if got.Collection[0].AdjustedValueLow == nil || *got.Collection[0].AdjustedValueLow != 12.5 {
		t.Fatalf("adjusted pointers lost in round trip: %+v", got.Collection[0])
	}
	if got.Collection[1].AdjustedValueLow != nil {
		t.Fatalf("absent adjusted value must stay nil")
	}
}

func TestJSONStoreMissingFile(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "never-written.json"))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap != nil {
		t.Fatalf("missing file must yield nil snapshot, got %+v", snap)
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected decode error for corrupt file")
	}
}

func TestJSONStoreRequiresPath(t *testing.T) {
	if _, err := NewJSONStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestJSONStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "state.json")
	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	if err := store.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save into missing directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not created: %v", err)
	}
}
