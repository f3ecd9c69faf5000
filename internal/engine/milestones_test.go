package engine

import "testing"

func TestExactMilestoneMatch(t *testing.T) {
	achieved := map[int]bool{}

	m := exactMilestone(CollectionMilestones, 5, achieved)
	if m == nil || m.Threshold != 5 {
		t.Fatalf("expected the 5 milestone, got %+v", m)
	}
	achieved[5] = true

	if m := exactMilestone(CollectionMilestones, 5, achieved); m != nil {
		t.Fatalf("milestone must fire at most once, got %+v", m)
	}
}

func TestExactMilestoneSkipsOnJump(t *testing.T) {
	// Exact equality: a metric that jumps from 4 to 6 never fires the 5
	// entry. Accepted behavior, not a bug to fix.
	if m := exactMilestone(CollectionMilestones, 6, map[int]bool{}); m != nil {
		t.Fatalf("no table entry equals 6, got %+v", m)
	}
}

func TestCrossedMilestonesReturnsAllBelow(t *testing.T) {
	achieved := map[int]bool{}
	crossed := crossedMilestones(ValueMilestones, 1200, achieved)

	want := []int{100, 500, 1000}
	if len(crossed) != len(want) {
		t.Fatalf("crossed=%v, want thresholds %v", crossed, want)
	}
	for i, th := range want {
		if crossed[i].Threshold != th {
			t.Fatalf("crossed[%d]=%d, want %d (ascending order)", i, crossed[i].Threshold, th)
		}
	}

	achieved[100] = true
	achieved[500] = true
	crossed = crossedMilestones(ValueMilestones, 1200, achieved)
	if len(crossed) != 1 || crossed[0].Threshold != 1000 {
		t.Fatalf("achieved thresholds must not re-fire: %v", crossed)
	}
}
