package engine

import (
	"time"

	"beandex/internal/storage"
)

// Collection returns the items, most recent first.
func (s *Store) Collection() []storage.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.Item{}, s.collection...)
}

// Item returns the item with the given id.
func (s *Store) Item(id string) (storage.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.collection {
		if it.ID == id {
			return it, true
		}
	}
	return storage.Item{}, false
}

// TotalValue sums the adjusted-or-base low and high estimates across the
// collection.
func (s *Store) TotalValue() (low, high float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalValueLocked()
}

// Streak returns the current streak, decayed at read time: when the last
// scan is more than one day old the streak reads as zero without being
// reset in storage until the next scan.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := DateOf(s.now(), s.loc)
	if s.lastScanDate == today || s.lastScanDate == today.AddDays(-1) {
		return s.currentStreak
	}
	return 0
}

func (s *Store) LongestStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.longestStreak
}

func (s *Store) TotalXP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalXP
}

// Level returns the derived progression state for the current XP total.
func (s *Store) Level() LevelInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CalculateLevel(s.totalXP)
}

func (s *Store) UserName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userName
}

func (s *Store) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarded
}

// AchievementStatus is a catalog entry with its unlock state.
type AchievementStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// Achievements lists the catalog with unlock state. Secret achievements
// are excluded until unlocked.
func (s *Store) Achievements() []AchievementStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []AchievementStatus
	for _, a := range AchievementCatalog() {
		at, unlocked := s.unlocked[a.ID]
		if a.Secret && !unlocked {
			continue
		}
		st := AchievementStatus{Achievement: a, Unlocked: unlocked}
		if unlocked {
			t := at
			st.UnlockedAt = &t
		}
		out = append(out, st)
	}
	return out
}

// AchievementProgress returns unlocked and total counts. Locked secret
// achievements do not count toward the total.
func (s *Store) AchievementProgress() (unlocked, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range AchievementCatalog() {
		_, has := s.unlocked[a.ID]
		if a.Secret && !has {
			continue
		}
		total++
		if has {
			unlocked++
		}
	}
	return unlocked, total
}

// IsUnlocked reports whether an achievement id has been earned.
func (s *Store) IsUnlocked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.unlocked[id]
	return ok
}

// TodaysChallenge returns the active challenge for the current date with
// its completion state filled in.
func (s *Store) TodaysChallenge() DailyChallenge {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := ChallengeForDate(DateOf(s.now(), s.loc))
	ch.Completed = s.completedChallenges[ch.ID]
	return ch
}

// AchievedMilestones returns the fired thresholds of one table kind.
func (s *Store) AchievedMilestones(kind string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case "collection":
		return sortedKeys(s.collectionMilestones)
	case "value":
		return sortedKeys(s.valueMilestones)
	case "streak":
		return sortedKeys(s.streakMilestones)
	default:
		return nil
	}
}
