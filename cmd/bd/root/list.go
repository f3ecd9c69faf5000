package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			items := store.Collection()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No plush yet. Add one with `bd add`."))
				return nil
			}

			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s %s\n",
					ui.TierText(it.Tier),
					ui.Key.Render(it.Name),
					ui.Muted.Render("("+it.AnimalType+")"),
					ui.ValueRange(it.EffectiveLow(), it.EffectiveHigh()),
					ui.Dim.Render(it.Timestamp.Format("2006-01-02")),
					ui.Dim.Render(it.ID),
				)
			}
			low, high := store.TotalValue()
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d plush, %s\n",
				ui.IconMoney, len(items), ui.Gold.Render(ui.ValueRange(low, high)))
			return nil
		},
	}
	return cmd
}
