package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			unlocked, total := store.AchievementProgress()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements (%d/%d)", unlocked, total)))

			for _, a := range store.Achievements() {
				mark := ui.Muted.Render("🔒")
				name := ui.Muted.Render(a.Name)
				when := ""
				if a.Unlocked {
					mark = ui.Good.Render("✔")
					name = ui.Key.Render(a.Name)
					when = ui.Dim.Render(a.UnlockedAt.Format("2006-01-02"))
				}
				fmt.Fprintf(out, "%s %s %s %s %s\n", mark, a.Emoji, name, ui.Muted.Render(a.Description), when)
			}
			return nil
		},
	}
	return cmd
}
