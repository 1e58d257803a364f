package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/earnings"
	"github.com/alexanderramin/flightlog/internal/flighttime"
)

func newAddCmd(app *App) *cobra.Command {
	var depDate, arrDate, depTime, arrTime string
	var rateX, rateY float64
	var longHaul bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a flight leg",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if depDate == "" {
				depDate = time.Now().Format(domain.DateLayout)
			}
			if arrDate == "" {
				arrDate = depDate
			}
			if _, err := flighttime.ParseTimeOfDay(depTime); err != nil {
				return fmt.Errorf("departure time: %w", err)
			}
			if _, err := flighttime.ParseTimeOfDay(arrTime); err != nil {
				return fmt.Errorf("arrival time: %w", err)
			}

			if flighttime.ComputeDurationMinutes(depDate, depTime, arrDate, arrTime) <= 0 {
				return fmt.Errorf("arrival must be after departure, check dates and times")
			}

			mult := app.Store.Multipliers()
			if !cmd.Flags().Changed("rate-x") {
				rateX = mult.X
			}
			if !cmd.Flags().Changed("rate-y") {
				rateY = mult.Y
			}

			var rec domain.FlightLog
			if longHaul {
				rec = app.Store.AddAdjustedLog(ctx, depDate, arrDate, depTime, arrTime, rateX, rateY)
			} else {
				rec = app.Store.AddLog(ctx, depDate, arrDate, depTime, arrTime, rateX, rateY)
			}

			d := earnings.Compute(rec.DurationMinutes, rec.MultiplierX, rec.MultiplierY)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s—%s: %s (%.2f x%.2f, %.2f x%.2f) [%s]\n",
				rec.DepartureDate, rec.DepartureTime, rec.ArrivalTime,
				flighttime.FormatMinutes(rec.DurationMinutes),
				d.AmountX, rec.MultiplierX,
				d.AmountY, rec.MultiplierY,
				rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&depDate, "dep-date", "", "Departure date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&arrDate, "arr-date", "", "Arrival date (YYYY-MM-DD, default departure date)")
	cmd.Flags().StringVar(&depTime, "dep-time", "", "Departure time (HHmm)")
	cmd.Flags().StringVar(&arrTime, "arr-time", "", "Arrival time (HHmm)")
	cmd.Flags().Float64Var(&rateX, "rate-x", 0, "Rate X for this leg (default current setting)")
	cmd.Flags().Float64Var(&rateY, "rate-y", 0, "Rate Y for this leg (default current setting)")
	cmd.Flags().BoolVar(&longHaul, "long-haul", false, "Report 10-24h legs as a flat 24h")
	_ = cmd.MarkFlagRequired("dep-time")
	_ = cmd.MarkFlagRequired("arr-time")

	return cmd
}
