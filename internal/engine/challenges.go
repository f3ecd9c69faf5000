package engine

import (
	"strings"

	"beandex/internal/storage"
)

type ChallengeKind string

const (
	ChallengeScanAny    ChallengeKind = "scan_any"
	ChallengeScanCount  ChallengeKind = "scan_count"
	ChallengeFindAnimal ChallengeKind = "find_animal"
	ChallengeFindTier   ChallengeKind = "find_tier"
	ChallengeFindColor  ChallengeKind = "find_color"
	ChallengeBeatValue  ChallengeKind = "beat_value"
)

// ChallengeTemplate is one entry in the fixed rotation. TargetText is used
// by the animal/color kinds, TargetNum by the count/tier/value kinds.
type ChallengeTemplate struct {
	Kind        ChallengeKind `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Emoji       string        `json:"emoji"`
	TargetText  string        `json:"target_text,omitempty"`
	TargetNum   int           `json:"target_num,omitempty"`
	XP          int           `json:"xp"`
}

// DailyChallenge is the day-scoped instance of a template. Exactly one is
// active per calendar date, the same one for every installation.
type DailyChallenge struct {
	ID string `json:"id"`
	ChallengeTemplate
	Date      Date `json:"-"`
	Completed bool `json:"completed"`
}

var challengeTemplates = []ChallengeTemplate{
	{Kind: ChallengeScanAny, Name: "Daily Collector", Description: "Add any plush today", Emoji: "🧸", XP: 50},
	{Kind: ChallengeScanCount, Name: "Hat Trick", Description: "Add 3 plush today", Emoji: "🎩", TargetNum: 3, XP: 100},
	{Kind: ChallengeFindAnimal, Name: "Bear Hunt", Description: "Add a bear today", Emoji: "🐻", TargetText: "bear", XP: 75},
	{Kind: ChallengeFindTier, Name: "Rarity Run", Description: "Add a tier 3+ plush today", Emoji: "💎", TargetNum: 3, XP: 100},
	{Kind: ChallengeFindColor, Name: "Pretty in Pink", Description: "Add a pink plush today", Emoji: "🌸", TargetText: "pink", XP: 75},
	{Kind: ChallengeBeatValue, Name: "Money Maker", Description: "Add a plush worth over $50", Emoji: "💵", TargetNum: 50, XP: 100},
	{Kind: ChallengeFindAnimal, Name: "Bunny Business", Description: "Add a bunny today", Emoji: "🐰", TargetText: "bunny", XP: 75},
	{Kind: ChallengeScanCount, Name: "High Five", Description: "Add 5 plush today", Emoji: "🖐️", TargetNum: 5, XP: 150},
	{Kind: ChallengeFindColor, Name: "Feeling Blue", Description: "Add a blue plush today", Emoji: "🌊", TargetText: "blue", XP: 75},
	{Kind: ChallengeFindTier, Name: "Big Game", Description: "Add a tier 4+ plush today", Emoji: "🏆", TargetNum: 4, XP: 150},
	{Kind: ChallengeBeatValue, Name: "Jackpot", Description: "Add a plush worth over $100", Emoji: "🎰", TargetNum: 100, XP: 150},
	{Kind: ChallengeFindAnimal, Name: "Cat Day", Description: "Add a cat today", Emoji: "🐱", TargetText: "cat", XP: 75},
}

// ChallengeForDate deterministically selects the challenge for a calendar
// date: the sum of the date's numeric components modulo the template count.
// No per-user randomness.
func ChallengeForDate(d Date) DailyChallenge {
	idx := (d.Year + int(d.Month) + d.Day) % len(challengeTemplates)
	return DailyChallenge{
		ID:                "daily-" + d.String(),
		ChallengeTemplate: challengeTemplates[idx],
		Date:              d,
	}
}

// CheckChallengeCompletion reports whether adding newItem satisfies the
// challenge. todaysScans is the list of items added on the challenge's day
// with newItem already included. A challenge already completed today cannot
// complete again; an unrecognized kind never completes.
func CheckChallengeCompletion(ch DailyChallenge, newItem storage.Item, todaysScans []storage.Item) bool {
	if ch.Completed {
		return false
	}

	switch ch.Kind {
	case ChallengeScanAny:
		return true
	case ChallengeScanCount:
		return len(todaysScans) >= ch.TargetNum
	case ChallengeFindAnimal:
		animal := strings.ToLower(newItem.AnimalType)
		target := strings.ToLower(ch.TargetText)
		if strings.Contains(animal, target) {
			return true
		}
		// "bunny" and "rabbit" are the same animal to collectors.
		return target == "bunny" && strings.Contains(animal, "rabbit")
	case ChallengeFindTier:
		return newItem.Tier >= ch.TargetNum
	case ChallengeFindColor:
		target := strings.ToLower(ch.TargetText)
		for _, c := range newItem.Colors {
			if strings.Contains(strings.ToLower(c), target) {
				return true
			}
		}
		return false
	case ChallengeBeatValue:
		return newItem.EffectiveHigh() > float64(ch.TargetNum)
	default:
		return false
	}
}
