package engine

import (
	"testing"
	"time"
)

func TestDateOfUsesLocation(t *testing.T) {
	// 2025-03-10 23:30 UTC is already 03-11 in UTC+5.
	ts := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	plus5 := time.FixedZone("UTC+5", 5*3600)

	if got := DateOf(ts, time.UTC); got != (Date{2025, time.March, 10}) {
		t.Fatalf("UTC date=%v", got)
	}
	if got := DateOf(ts, plus5); got != (Date{2025, time.March, 11}) {
		t.Fatalf("UTC+5 date=%v", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2025-03-14" {
		t.Fatalf("String()=%q", d.String())
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	d := Date{2025, time.March, 1}
	if got := d.AddDays(-1); got != (Date{2025, time.February, 28}) {
		t.Fatalf("AddDays(-1)=%v", got)
	}
	if got := (Date{2024, time.December, 31}).AddDays(1); got != (Date{2025, time.January, 1}) {
		t.Fatalf("year rollover=%v", got)
	}
}
