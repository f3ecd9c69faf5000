package engine

import "math"

// LevelCostStep is the per-level cost increment: clearing level N costs
// exactly N*100 XP (level 1→2 costs 100, level 2→3 costs 200, ...).
const LevelCostStep = 100

// LevelInfo is the full derived progression state for a total XP amount.
type LevelInfo struct {
	Level       int    `json:"level"`
	CurrentXP   int    `json:"current_xp"`
	NextLevelXP int    `json:"next_level_xp"`
	Progress    int    `json:"progress"`
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Color       string `json:"color"`
}

// LevelTitle is one band in the title table. The last entry whose MinLevel
// is <= the current level wins.
type LevelTitle struct {
	MinLevel int
	Title    string
	Emoji    string
	Color    string
}

var LevelTitles = []LevelTitle{
	{MinLevel: 1, Title: "Beanie Newbie", Emoji: "🧸", Color: "#A0AEC0"},
	{MinLevel: 3, Title: "Tag Checker", Emoji: "🏷️", Color: "#68D391"},
	{MinLevel: 5, Title: "Plush Scout", Emoji: "🔍", Color: "#63B3ED"},
	{MinLevel: 8, Title: "Bean Counter", Emoji: "💰", Color: "#F6E05E"},
	{MinLevel: 12, Title: "Rare Hunter", Emoji: "💎", Color: "#B794F4"},
	{MinLevel: 16, Title: "Vault Keeper", Emoji: "🗝️", Color: "#F687B3"},
	{MinLevel: 20, Title: "Plush Master", Emoji: "👑", Color: "#F6AD55"},
	{MinLevel: 30, Title: "Beanie Legend", Emoji: "🌟", Color: "#FC8181"},
}

// CalculateLevel maps total XP to a level, the progress within that level,
// and the cosmetic title band. It is the sole authority for level
// derivation; no other code computes level from XP.
func CalculateLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remaining := totalXP
	for remaining >= level*LevelCostStep {
		remaining -= level * LevelCostStep
		level++
	}

	next := level * LevelCostStep
	progress := int(math.Round(float64(remaining) / float64(next) * 100))

	info := LevelInfo{
		Level:       level,
		CurrentXP:   remaining,
		NextLevelXP: next,
		Progress:    progress,
	}
	for _, band := range LevelTitles {
		if band.MinLevel > level {
			break
		}
		info.Title = band.Title
		info.Emoji = band.Emoji
		info.Color = band.Color
	}
	return info
}
