package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/flightlog/internal/flighttime"
	"github.com/alexanderramin/flightlog/internal/stats"
)

func newStatsCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show monthly flight totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}

			totals := stats.MonthlyTotals(app.Store.Logs(), year)
			if len(totals) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No flights logged in %d.\n", year)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tFLIGHTS\tHOURS\tAMOUNT X\tAMOUNT Y")
			var minutes, flights int
			var amountX, amountY float64
			for _, m := range totals {
				fmt.Fprintf(w, "%s %d\t%d\t%s\t%.2f\t%.2f\n",
					m.Month.String(), m.Year, m.Flights,
					flighttime.FormatMinutes(m.Minutes),
					m.AmountX, m.AmountY)
				flights += m.Flights
				minutes += m.Minutes
				amountX += m.AmountX
				amountY += m.AmountY
			}
			fmt.Fprintf(w, "TOTAL\t%d\t%s (%s hrs)\t%.2f\t%.2f\n",
				flights,
				flighttime.FormatMinutes(minutes),
				flighttime.FormatDecimalHours(minutes),
				amountX, amountY)
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to aggregate (default current year)")
	return cmd
}
