package root

import (
	"github.com/spf13/cobra"

	"beandex/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive collection board",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(store)
		},
	}
	return cmd
}
