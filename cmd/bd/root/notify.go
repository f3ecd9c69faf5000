package root

import (
	"fmt"
	"io"

	"beandex/internal/engine"
	"beandex/internal/ui"
)

// renderPending prints every queued gamification event and clears the
// slots afterwards — the CLI is the consuming screen here.
func renderPending(out io.Writer, store *engine.Store) {
	n := store.Pending()
	if n.Empty() {
		return
	}

	if n.CollectionMilestone != nil {
		m := n.CollectionMilestone
		fmt.Fprintf(out, "%s %s %s\n", m.Emoji, ui.Gold.Render(m.Title), ui.Muted.Render(m.Message))
	}
	if n.StreakMilestone != nil {
		m := n.StreakMilestone
		fmt.Fprintf(out, "%s %s %s\n", m.Emoji, ui.Gold.Render(m.Title), ui.Muted.Render(m.Message))
	}
	if n.ValueMilestone != nil {
		m := n.ValueMilestone
		fmt.Fprintf(out, "%s %s %s\n", m.Emoji, ui.Gold.Render(m.Title), ui.Muted.Render(m.Message))
	}
	for _, u := range n.Achievements {
		fmt.Fprintf(out, "%s %s %s %s\n", ui.IconTrophy, ui.Good.Render("Achievement:"), u.Emoji+" "+u.Name, ui.Muted.Render(u.Description))
	}
	if n.Challenge != nil {
		fmt.Fprintf(out, "%s %s %s %s\n", ui.IconTarget, ui.Good.Render("Challenge complete:"), n.Challenge.Challenge.Name, ui.Gold.Render(fmt.Sprintf("+%d XP", n.Challenge.XP)))
	}
	if n.LuckyBonus != nil {
		fmt.Fprintf(out, "%s %s %s\n", ui.IconClover, ui.Good.Render(fmt.Sprintf("Lucky bonus x%d!", n.LuckyBonus.Multiplier)), ui.Gold.Render(fmt.Sprintf("+%d XP", n.LuckyBonus.XP)))
	}
	if n.LoginBonus != nil {
		fmt.Fprintf(out, "%s %s %s\n", ui.IconCalen, ui.Good.Render(fmt.Sprintf("Daily login (streak %d)", n.LoginBonus.Streak)), ui.Gold.Render(fmt.Sprintf("+%d XP", n.LoginBonus.XP)))
	}
	if n.LevelUp != nil {
		fmt.Fprintf(out, "%s %s → level %d %s %s\n", ui.IconSparkle, ui.BadgeLevelUp, n.LevelUp.Level, n.LevelUp.Info.Emoji, n.LevelUp.Info.Title)
	}

	store.ClearAllPending()
}
