package engine

// Tier is the 1-5 rarity/value band assigned to an item at creation time.
// It is never recomputed after creation.
type Tier int

const (
	TierCommon    Tier = 1
	TierUncommon  Tier = 2
	TierRare      Tier = 3
	TierVeryRare  Tier = 4
	TierLegendary Tier = 5
)

func (t Tier) IsValid() bool {
	return t >= TierCommon && t <= TierLegendary
}

// TierForValue derives a tier band from a high-end value estimate. Used
// when the identification input does not carry an explicit tier.
func TierForValue(high float64) Tier {
	switch {
	case high < 15:
		return TierCommon
	case high < 40:
		return TierUncommon
	case high < 100:
		return TierRare
	case high < 500:
		return TierVeryRare
	default:
		return TierLegendary
	}
}

// AddItemInput carries the fields produced by the identification flow.
// Valuation fields are the AI's base estimate; the adjusted pair is present
// only when the follow-up condition/pellet questions were answered.
type AddItemInput struct {
	Name         string
	AnimalType   string
	Variant      string
	Colors       []string
	Thumbnail    string
	ValueLow     float64
	ValueHigh    float64
	AdjustedLow  *float64
	AdjustedHigh *float64
	Tier         Tier
	Condition    string
	PelletType   string
	ValueNotes   string
}
