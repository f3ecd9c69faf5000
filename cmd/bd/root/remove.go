package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item from the collection",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			if !store.RemoveItem(args[0]) {
				return fmt.Errorf("item %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Removed.")+" "+ui.Muted.Render("Earned XP, achievements and milestones are kept."))
			return nil
		},
	}
	return cmd
}

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the collection (keeps all gamification progress)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear without --yes")
			}
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			store.ClearCollection()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Collection cleared."))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the clear")
	return cmd
}
