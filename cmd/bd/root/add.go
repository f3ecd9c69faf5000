package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"beandex/internal/engine"
	"beandex/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		animal    string
		variant   string
		colors    []string
		low       float64
		high      float64
		adjLow    float64
		adjHigh   float64
		tier      int
		condition string
		pellet    string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an identified plush to the collection",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cleanup, err := openStore()
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.AddItemInput{
				Name:       args[0],
				AnimalType: animal,
				Variant:    variant,
				Colors:     colors,
				ValueLow:   low,
				ValueHigh:  high,
				Tier:       engine.Tier(tier),
				Condition:  condition,
				PelletType: pellet,
				ValueNotes: notes,
			}
			if cmd.Flags().Changed("adj-low") {
				v := adjLow
				in.AdjustedLow = &v
			}
			if cmd.Flags().Changed("adj-high") {
				v := adjHigh
				in.AdjustedHigh = &v
			}

			item, err := store.AddItem(in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				ui.IconPlush, ui.Good.Render("Added"), item.Name,
				ui.TierText(item.Tier),
				ui.ValueRange(item.EffectiveLow(), item.EffectiveHigh()))
			renderPending(cmd.OutOrStdout(), store)
			return nil
		},
	}

	cmd.Flags().StringVarP(&animal, "animal", "a", "", "Animal type (bear, cat, ...)")
	cmd.Flags().StringVar(&variant, "variant", "", "Variant description")
	cmd.Flags().StringSliceVarP(&colors, "color", "c", nil, "Colors (repeatable)")
	cmd.Flags().Float64Var(&low, "low", 0, "Base value estimate, low end")
	cmd.Flags().Float64Var(&high, "high", 0, "Base value estimate, high end")
	cmd.Flags().Float64Var(&adjLow, "adj-low", 0, "Adjusted low value (after condition questions)")
	cmd.Flags().Float64Var(&adjHigh, "adj-high", 0, "Adjusted high value (after condition questions)")
	cmd.Flags().IntVarP(&tier, "tier", "t", 0, "Tier 1-5 (derived from value when omitted)")
	cmd.Flags().StringVar(&condition, "condition", "", "Condition answer")
	cmd.Flags().StringVar(&pellet, "pellet", "", "Pellet type answer")
	cmd.Flags().StringVar(&notes, "notes", "", "Value notes")

	return cmd
}
