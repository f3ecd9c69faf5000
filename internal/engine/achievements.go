package engine

import (
	"strings"
	"time"

	"beandex/internal/storage"
)

type AchievementCategory string

const (
	CategoryCollection AchievementCategory = "collection"
	CategoryValue      AchievementCategory = "value"
	CategoryRarity     AchievementCategory = "rarity"
	CategoryVariety    AchievementCategory = "variety"
	CategorySpecial    AchievementCategory = "special"
	CategoryDedication AchievementCategory = "dedication"
)

// Achievement is one catalog entry. The catalog is immutable static data;
// unlock state lives in the store.
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Emoji       string              `json:"emoji"`
	Category    AchievementCategory `json:"category"`
	Secret      bool                `json:"secret,omitempty"`
}

// Unlock is an achievement stamped with the time it was earned.
type Unlock struct {
	Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}

// OriginalNine are the names of the nine original 1993 releases.
var OriginalNine = []string{
	"legs", "squealer", "spot", "flash", "splash",
	"chocolate", "patti", "cubbie", "brownie", "pinchers",
}

// rareVariantKeywords mark factory oddities and early-generation finds in
// the variant or value-notes text.
var rareVariantKeywords = []string{
	"1st gen", "first generation", "error", "misprint",
	"prototype", "oddity", "korean tag", "german tag",
}

type achievementDef struct {
	Achievement
	earned func(*collectionStats) bool
}

// catalog order is the order unlocks are reported in, regardless of which
// predicate fired first.
var achievementCatalog = []achievementDef{
	{Achievement{ID: "first_scan", Name: "First Find", Description: "Add your first plush to the collection", Emoji: "🧸", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 1 }},
	{Achievement{ID: "collection_5", Name: "Starter Shelf", Description: "Grow the collection to 5 plush", Emoji: "🗄️", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 5 }},
	{Achievement{ID: "collection_10", Name: "Double Digits", Description: "Grow the collection to 10 plush", Emoji: "📦", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 10 }},
	{Achievement{ID: "collection_25", Name: "Serious Collector", Description: "Grow the collection to 25 plush", Emoji: "🏠", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 25 }},
	{Achievement{ID: "collection_50", Name: "Half Century", Description: "Grow the collection to 50 plush", Emoji: "🏛️", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 50 }},
	{Achievement{ID: "collection_100", Name: "Plush Museum", Description: "Grow the collection to 100 plush", Emoji: "🏰", Category: CategoryCollection}, func(s *collectionStats) bool { return s.count >= 100 }},

	{Achievement{ID: "value_100", Name: "Pocket Money", Description: "Collection worth $100 or more", Emoji: "💵", Category: CategoryValue}, func(s *collectionStats) bool { return s.totalHigh >= 100 }},
	{Achievement{ID: "value_500", Name: "Nest Egg", Description: "Collection worth $500 or more", Emoji: "💰", Category: CategoryValue}, func(s *collectionStats) bool { return s.totalHigh >= 500 }},
	{Achievement{ID: "value_1000", Name: "Four Figures", Description: "Collection worth $1,000 or more", Emoji: "🤑", Category: CategoryValue}, func(s *collectionStats) bool { return s.totalHigh >= 1000 }},
	{Achievement{ID: "value_5000", Name: "Small Fortune", Description: "Collection worth $5,000 or more", Emoji: "💎", Category: CategoryValue, Secret: true}, func(s *collectionStats) bool { return s.totalHigh >= 5000 }},

	{Achievement{ID: "found_tier3", Name: "Rare Find", Description: "Find a tier 3 or better plush", Emoji: "🥉", Category: CategoryRarity}, func(s *collectionStats) bool { return s.maxTier >= 3 }},
	{Achievement{ID: "found_tier4", Name: "Very Rare Find", Description: "Find a tier 4 or better plush", Emoji: "🥈", Category: CategoryRarity}, func(s *collectionStats) bool { return s.maxTier >= 4 }},
	{Achievement{ID: "found_tier5", Name: "Legendary Find", Description: "Find a tier 5 plush", Emoji: "🥇", Category: CategoryRarity}, func(s *collectionStats) bool { return s.maxTier >= 5 }},
	{Achievement{ID: "tier_complete", Name: "Full Spectrum", Description: "Own at least one plush of every tier", Emoji: "🌈", Category: CategoryRarity}, func(s *collectionStats) bool { return len(s.tiers) == 5 }},

	{Achievement{ID: "animal_5", Name: "Menagerie", Description: "Collect 5 different animal types", Emoji: "🦁", Category: CategoryVariety}, func(s *collectionStats) bool { return len(s.animals) >= 5 }},
	{Achievement{ID: "animal_10", Name: "Noah's Ark", Description: "Collect 10 different animal types", Emoji: "🛶", Category: CategoryVariety}, func(s *collectionStats) bool { return len(s.animals) >= 10 }},
	{Achievement{ID: "bear_fan", Name: "Bear Necessities", Description: "Add any bear to the collection", Emoji: "🐻", Category: CategoryVariety}, func(s *collectionStats) bool { return s.hasBear }},

	{Achievement{ID: "original_nine", Name: "Where It Began", Description: "Find one of the Original 9", Emoji: "🕰️", Category: CategorySpecial}, func(s *collectionStats) bool { return s.hasOriginalNine }},
	{Achievement{ID: "royal_plush", Name: "Royalty", Description: "Find the purple one", Emoji: "👸", Category: CategorySpecial, Secret: true}, func(s *collectionStats) bool { return s.hasPrincess }},
	{Achievement{ID: "rare_variant", Name: "Oddity Hunter", Description: "Find a rare variant or factory error", Emoji: "🔬", Category: CategorySpecial}, func(s *collectionStats) bool { return s.hasRareVariant }},

	{Achievement{ID: "busy_day", Name: "Busy Day", Description: "Add 3 plush in a single day", Emoji: "☀️", Category: CategoryDedication}, func(s *collectionStats) bool { return s.maxPerDay >= 3 }},
	{Achievement{ID: "mega_day", Name: "Haul Day", Description: "Add 10 plush in a single day", Emoji: "🌋", Category: CategoryDedication, Secret: true}, func(s *collectionStats) bool { return s.maxPerDay >= 10 }},
	{Achievement{ID: "week_scanner", Name: "Perfect Week", Description: "Add a plush every day for 7 days", Emoji: "📅", Category: CategoryDedication}, func(s *collectionStats) bool { return s.trailingWeekDays == 7 }},
}

// AchievementCatalog returns a copy of the static catalog in declaration
// order.
func AchievementCatalog() []Achievement {
	out := make([]Achievement, 0, len(achievementCatalog))
	for _, def := range achievementCatalog {
		out = append(out, def.Achievement)
	}
	return out
}

type collectionStats struct {
	count            int
	totalHigh        float64
	maxTier          int
	tiers            map[int]struct{}
	animals          map[string]struct{}
	hasBear          bool
	hasOriginalNine  bool
	hasPrincess      bool
	hasRareVariant   bool
	maxPerDay        int
	trailingWeekDays int
}

func statsFor(collection []storage.Item, now time.Time, loc *time.Location) *collectionStats {
	s := &collectionStats{
		tiers:   map[int]struct{}{},
		animals: map[string]struct{}{},
	}
	perDay := map[Date]int{}

	for _, it := range collection {
		s.count++
		s.totalHigh += it.EffectiveHigh()
		if it.Tier > s.maxTier {
			s.maxTier = it.Tier
		}
		if Tier(it.Tier).IsValid() {
			s.tiers[it.Tier] = struct{}{}
		}

		animal := strings.ToLower(strings.TrimSpace(it.AnimalType))
		if animal != "" {
			s.animals[animal] = struct{}{}
		}
		if strings.Contains(animal, "bear") {
			s.hasBear = true
		}

		name := strings.ToLower(it.Name)
		for _, orig := range OriginalNine {
			if strings.Contains(name, orig) {
				s.hasOriginalNine = true
				break
			}
		}
		if strings.Contains(name, "princess") {
			s.hasPrincess = true
		}

		variantText := strings.ToLower(it.Variant + " " + it.ValueNotes)
		for _, kw := range rareVariantKeywords {
			if strings.Contains(variantText, kw) {
				s.hasRareVariant = true
				break
			}
		}

		perDay[DateOf(it.Timestamp, loc)]++
	}

	for _, n := range perDay {
		if n > s.maxPerDay {
			s.maxPerDay = n
		}
	}

	today := DateOf(now, loc)
	for i := 0; i < 7; i++ {
		if perDay[today.AddDays(-i)] > 0 {
			s.trailingWeekDays++
		}
	}

	return s
}

// CheckAchievements evaluates the catalog against a collection snapshot and
// returns the achievements that qualify now and are not already unlocked,
// stamped with the evaluation time, in catalog order. Pure: the caller owns
// persisting the returned ids and queuing them for display.
func CheckAchievements(collection []storage.Item, unlocked map[string]bool, now time.Time, loc *time.Location) []Unlock {
	stats := statsFor(collection, now, loc)

	var newly []Unlock
	for _, def := range achievementCatalog {
		if unlocked[def.ID] {
			continue
		}
		if def.earned(stats) {
			newly = append(newly, Unlock{Achievement: def.Achievement, UnlockedAt: now})
		}
	}
	return newly
}
