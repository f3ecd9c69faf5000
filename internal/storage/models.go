package storage

import "time"

// Item is one identified collectible in the collection. Items are created
// once by the save-to-collection flow and never mutated afterwards; the
// only lifecycle operations are deletion and bulk clear.
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	AnimalType string   `json:"animal_type"`
	Variant    string   `json:"variant,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Thumbnail  string   `json:"thumbnail,omitempty"`

	// Base estimate from identification, immutable once set.
	EstimatedValueLow  float64 `json:"estimated_value_low"`
	EstimatedValueHigh float64 `json:"estimated_value_high"`
	// Present only when the follow-up condition/pellet questions were
	// answered. When present they replace the base estimate in every
	// financial aggregation.
	AdjustedValueLow  *float64 `json:"adjusted_value_low,omitempty"`
	AdjustedValueHigh *float64 `json:"adjusted_value_high,omitempty"`

	Tier       int    `json:"tier"`
	Condition  string `json:"condition,omitempty"`
	PelletType string `json:"pellet_type,omitempty"`
	ValueNotes string `json:"value_notes,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// EffectiveLow returns the adjusted low value when present, else the base
// estimate. Aggregations must use this accessor, never the raw fields.
func (it Item) EffectiveLow() float64 {
	if it.AdjustedValueLow != nil {
		return *it.AdjustedValueLow
	}
	return it.EstimatedValueLow
}

// EffectiveHigh is the high-end counterpart of EffectiveLow.
func (it Item) EffectiveHigh() float64 {
	if it.AdjustedValueHigh != nil {
		return *it.AdjustedValueHigh
	}
	return it.EstimatedValueHigh
}

// Snapshot is the persisted subset of the collection store's state. Pending
// notification slots are session-scoped and deliberately absent.
type Snapshot struct {
	Collection           []Item               `json:"collection"`
	UserName             string               `json:"user_name,omitempty"`
	Onboarded            bool                 `json:"onboarded"`
	UnlockedAchievements map[string]time.Time `json:"unlocked_achievements"`
	CollectionMilestones []int                `json:"collection_milestones"`
	ValueMilestones      []int                `json:"value_milestones"`
	StreakMilestones     []int                `json:"streak_milestones"`
	CurrentStreak        int                  `json:"current_streak"`
	LongestStreak        int                  `json:"longest_streak"`
	LastScanDate         string               `json:"last_scan_date,omitempty"`
	TotalXP              int                  `json:"total_xp"`
	LastKnownLevel       int                  `json:"last_known_level"`
	CompletedChallenges  []string             `json:"completed_challenges"`
	LoginStreak          int                  `json:"login_streak"`
	LastLoginDate        string               `json:"last_login_date,omitempty"`
}

// Normalize repairs nil containers after decoding from an older or empty
// document.
func (s *Snapshot) Normalize() {
	if s.Collection == nil {
		s.Collection = []Item{}
	}
	if s.UnlockedAchievements == nil {
		s.UnlockedAchievements = map[string]time.Time{}
	}
	if s.CollectionMilestones == nil {
		s.CollectionMilestones = []int{}
	}
	if s.ValueMilestones == nil {
		s.ValueMilestones = []int{}
	}
	if s.StreakMilestones == nil {
		s.StreakMilestones = []int{}
	}
	if s.CompletedChallenges == nil {
		s.CompletedChallenges = []string{}
	}
}
