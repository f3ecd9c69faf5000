package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"beandex/internal/ui"
)

const Version = "0.1.0"

var (
	flagEngine string
	flagPath   string
)

var rootCmd = &cobra.Command{
	Use:           "bd",
	Short:         "Beandex — local-first plush collection tracker",
	Long:          "Beandex tracks a collectible plush collection with streaks, XP levels, achievements, daily challenges and milestones.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagEngine, "store", envOr("BEANDEX_STORE", "json"), "Storage engine (json|sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", envOr("BEANDEX_PATH", ""), "Storage path (defaults under the home directory)")

	rootCmd.AddCommand(
		newAddCmd(),
		newRemoveCmd(),
		newClearCmd(),
		newListCmd(),
		newStatusCmd(),
		newAchievementsCmd(),
		newChallengeCmd(),
		newLoginCmd(),
		newSetupCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
