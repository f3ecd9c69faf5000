package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show today's challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			ch := store.TodaysChallenge()
			state := ui.Warn.Render("open")
			if ch.Completed {
				state = ui.Good.Render("done")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTarget, "Daily Challenge"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s %s [%s]\n",
				ch.Emoji, ui.Key.Render(ch.Name), ch.Description,
				ui.Gold.Render(fmt.Sprintf("+%d XP", ch.XP)), state)
			return nil
		},
	}
	return cmd
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Claim the daily login bonus",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			bonus := store.CheckDailyLoginBonus()
			if bonus == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already claimed today. Come back tomorrow."))
				return nil
			}
			renderPending(cmd.OutOrStdout(), store)
			return nil
		},
	}
	return cmd
}

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup <name>",
		Short: "Set the collector name and finish onboarding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			store.SetUserName(args[0])
			store.CompleteOnboarding()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSparkle, ui.Good.Render("Welcome, "+store.UserName()+"!"))
			return nil
		},
	}
	return cmd
}
