package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/flightlog/internal/domain"
)

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a logged flight by id or unique id prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := resolveLog(app, args[0])
			if err != nil {
				return err
			}

			app.Store.RemoveLog(context.Background(), rec.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted flight %s (%s %s—%s)\n",
				rec.ID, rec.DepartureDate, rec.DepartureTime, rec.ArrivalTime)
			return nil
		},
	}
}

// resolveLog finds the record whose id matches ref exactly or by unique
// prefix.
func resolveLog(app *App, ref string) (domain.FlightLog, error) {
	var matches []domain.FlightLog
	for _, l := range app.Store.Logs() {
		if l.ID == ref {
			return l, nil
		}
		if strings.HasPrefix(l.ID, ref) {
			matches = append(matches, l)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return domain.FlightLog{}, fmt.Errorf("no flight with id %q", ref)
	default:
		return domain.FlightLog{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", ref, len(matches))
	}
}
