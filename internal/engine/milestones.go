package engine

// Milestone is one (threshold, celebration metadata) entry in a static
// table. Each threshold fires at most once ever; the achieved sets are
// never reset, even if the underlying metric later decreases.
type Milestone struct {
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Emoji     string `json:"emoji"`
}

var CollectionMilestones = []Milestone{
	{Threshold: 1, Title: "First Plush!", Message: "Your collection has begun", Emoji: "🧸"},
	{Threshold: 5, Title: "Five Strong", Message: "5 plush and counting", Emoji: "🖐️"},
	{Threshold: 10, Title: "Perfect Ten", Message: "10 plush on the shelf", Emoji: "🔟"},
	{Threshold: 25, Title: "Quarter Hundred", Message: "25 plush strong", Emoji: "🎯"},
	{Threshold: 50, Title: "Fifty Friends", Message: "Half way to a hundred", Emoji: "🎊"},
	{Threshold: 100, Title: "The Big 100", Message: "A true plush museum", Emoji: "💯"},
}

var ValueMilestones = []Milestone{
	{Threshold: 100, Title: "First $100", Message: "Your collection is worth $100", Emoji: "💵"},
	{Threshold: 500, Title: "$500 Club", Message: "Your collection is worth $500", Emoji: "💰"},
	{Threshold: 1000, Title: "Grand Collection", Message: "Your collection broke $1,000", Emoji: "🤑"},
	{Threshold: 5000, Title: "Serious Money", Message: "Your collection broke $5,000", Emoji: "💎"},
	{Threshold: 10000, Title: "Five Figures", Message: "Your collection broke $10,000", Emoji: "🏦"},
}

var StreakMilestones = []Milestone{
	{Threshold: 3, Title: "On a Roll", Message: "3 days in a row", Emoji: "🔥"},
	{Threshold: 7, Title: "Week Streak", Message: "A full week of finds", Emoji: "📅"},
	{Threshold: 14, Title: "Two Weeks", Message: "14 days without missing", Emoji: "⚡"},
	{Threshold: 30, Title: "Monthly Devotion", Message: "30 consecutive days", Emoji: "🗓️"},
	{Threshold: 60, Title: "Unstoppable", Message: "60 consecutive days", Emoji: "🚀"},
	{Threshold: 100, Title: "Century Streak", Message: "100 consecutive days", Emoji: "🏅"},
}

// exactMilestone returns the single entry whose threshold exactly equals
// value and is not yet achieved. The match is intentionally equality, not
// crossing: a metric that jumps past a threshold in one update skips that
// milestone.
func exactMilestone(table []Milestone, value int, achieved map[int]bool) *Milestone {
	for i := range table {
		if table[i].Threshold == value && !achieved[table[i].Threshold] {
			m := table[i]
			return &m
		}
	}
	return nil
}

// crossedMilestones returns every entry with threshold <= value that is not
// yet achieved, in ascending table order. The value metric is continuous,
// so equality matching would never fire; crossing semantics apply to this
// table only.
func crossedMilestones(table []Milestone, value float64, achieved map[int]bool) []Milestone {
	var out []Milestone
	for i := range table {
		if float64(table[i].Threshold) <= value && !achieved[table[i].Threshold] {
			out = append(out, table[i])
		}
	}
	return out
}
