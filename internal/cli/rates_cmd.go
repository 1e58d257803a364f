package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rates [x y]",
		Short: "Show or set the default multiplier rates",
		Long: `With no arguments, prints the current default rate pair.
With two arguments, replaces the defaults used for newly logged flights.
Existing flights keep the rates that were in effect when they were logged.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fmt.Errorf("provide both rates or neither")
			}

			if len(args) == 2 {
				x, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("rate x: %w", err)
				}
				y, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("rate y: %w", err)
				}
				app.Store.SetMultipliers(context.Background(), x, y)
			}

			mult := app.Store.Multipliers()
			fmt.Fprintf(cmd.OutOrStdout(), "Rate X: %.2f\nRate Y: %.2f\n", mult.X, mult.Y)
			return nil
		},
	}
}
