package engine

import "testing"

func TestCalculateLevelZero(t *testing.T) {
	info := CalculateLevel(0)
	if info.Level != 1 {
		t.Fatalf("level=%d, want 1", info.Level)
	}
	if info.CurrentXP != 0 {
		t.Fatalf("currentXP=%d, want 0", info.CurrentXP)
	}
	if info.NextLevelXP != 100 {
		t.Fatalf("nextLevelXP=%d, want 100", info.NextLevelXP)
	}
	if info.Progress != 0 {
		t.Fatalf("progress=%d, want 0", info.Progress)
	}
	if info.Title != "Beanie Newbie" {
		t.Fatalf("title=%q, want Beanie Newbie", info.Title)
	}
}

func TestCalculateLevelBoundaries(t *testing.T) {
	info := CalculateLevel(99)
	if info.Level != 1 || info.CurrentXP != 99 {
		t.Fatalf("99 XP: level=%d currentXP=%d, want 1/99", info.Level, info.CurrentXP)
	}

	info = CalculateLevel(100)
	if info.Level != 2 || info.CurrentXP != 0 || info.NextLevelXP != 200 {
		t.Fatalf("100 XP: level=%d currentXP=%d next=%d, want 2/0/200", info.Level, info.CurrentXP, info.NextLevelXP)
	}

	// 100 + 200 clears levels 1 and 2 exactly.
	info = CalculateLevel(300)
	if info.Level != 3 || info.CurrentXP != 0 || info.NextLevelXP != 300 {
		t.Fatalf("300 XP: level=%d currentXP=%d next=%d, want 3/0/300", info.Level, info.CurrentXP, info.NextLevelXP)
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 10_000; xp += 7 {
		info := CalculateLevel(xp)
		if info.Level < 1 {
			t.Fatalf("level=%d at xp=%d, want >= 1", info.Level, xp)
		}
		if info.Level < prev {
			t.Fatalf("level decreased at xp=%d: %d -> %d", xp, prev, info.Level)
		}
		prev = info.Level
	}
}

func TestCalculateLevelNegativeClamped(t *testing.T) {
	if got := CalculateLevel(-50); got.Level != 1 || got.CurrentXP != 0 {
		t.Fatalf("negative XP: got %+v, want level 1 at 0", got)
	}
}

func TestLevelTitleBands(t *testing.T) {
	// 100+200+300+400 = 1000 XP clears into level 5.
	info := CalculateLevel(1000)
	if info.Level != 5 {
		t.Fatalf("level=%d, want 5", info.Level)
	}
	if info.Title != "Plush Scout" {
		t.Fatalf("title=%q, want Plush Scout", info.Title)
	}

	// Level 6 is still inside the minLevel-5 band.
	info = CalculateLevel(1500)
	if info.Level != 6 {
		t.Fatalf("level=%d, want 6", info.Level)
	}
	if info.Title != "Plush Scout" {
		t.Fatalf("title=%q, want Plush Scout (band, not exact match)", info.Title)
	}
}
