package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/flightlog/internal/cli/formatter"
	"github.com/alexanderramin/flightlog/internal/earnings"
	"github.com/alexanderramin/flightlog/internal/flighttime"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged flights, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs := app.Store.Logs()
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No flights logged yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDEPARTURE\tARRIVAL\tDURATION\tAMOUNT X\tAMOUNT Y")
			for _, l := range logs {
				d := earnings.Compute(l.DurationMinutes, l.MultiplierX, l.MultiplierY)
				fmt.Fprintf(w, "%s\t%s %s\t%s %s\t%s\t%.2f\t%.2f\n",
					formatter.ShortID(l.ID),
					l.DepartureDate, l.DepartureTime,
					l.ArrivalDate, l.ArrivalTime,
					flighttime.FormatMinutes(l.DurationMinutes),
					d.AmountX, d.AmountY)
			}
			return w.Flush()
		},
	}
}
