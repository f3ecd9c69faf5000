package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show collector stats and progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			name := store.UserName()
			if name == "" {
				name = "Collector"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconPlush, name+"'s Collection"))

			info := store.Level()
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %s", info.Level, info.Emoji, info.Title)))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d / %d to next level (%d%%)", info.CurrentXP, info.NextLevelXP, info.Progress)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", store.TotalXP()))
			fmt.Fprintln(out, "")

			streak := store.Streak()
			streakText := fmt.Sprintf("%d days", streak)
			if streak == 0 {
				streakText = ui.Muted.Render("none — scan today to start one")
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Streak"))
			fmt.Fprintln(out, ui.LabelValue("Current", streakText))
			fmt.Fprintln(out, ui.LabelValue("Longest", fmt.Sprintf("%d days", store.LongestStreak())))
			fmt.Fprintln(out, "")

			items := store.Collection()
			low, high := store.TotalValue()
			fmt.Fprintln(out, ui.H2.Render(ui.IconMoney+" Collection"))
			fmt.Fprintln(out, ui.LabelValue("Plush", len(items)))
			fmt.Fprintln(out, ui.LabelValue("Value", ui.Gold.Render(ui.ValueRange(low, high))))
			fmt.Fprintln(out, "")

			unlocked, total := store.AchievementProgress()
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Unlocked", fmt.Sprintf("%d / %d", unlocked, total)))

			ch := store.TodaysChallenge()
			state := ui.Warn.Render("open")
			if ch.Completed {
				state = ui.Good.Render("done")
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Daily Challenge"))
			fmt.Fprintf(out, "%s %s %s — %s [%s]\n", ch.Emoji, ui.Key.Render(ch.Name), ui.Gold.Render(fmt.Sprintf("+%d XP", ch.XP)), ch.Description, state)

			renderPending(out, store)
			return nil
		},
	}
	return cmd
}
