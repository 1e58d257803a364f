package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/earnings"
	"github.com/alexanderramin/flightlog/internal/flighttime"
)

// FormatAmount renders a monetary figure with 2 decimal places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate renders a stored calendar date as "02 Jan 2006". Unparseable
// dates are shown verbatim rather than hidden.
func FormatDate(date string) string {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return day.Format("02 Jan 2006")
}

// ShortID returns the display prefix of a record id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// LegSummary renders a flight leg as a one-line history entry.
func LegSummary(l domain.FlightLog) string {
	d := earnings.Compute(l.DurationMinutes, l.MultiplierX, l.MultiplierY)
	return fmt.Sprintf("%s  %s %s—%s  %s  %s / %s",
		Dim(ShortID(l.ID)),
		FormatDate(l.DepartureDate),
		l.DepartureTime,
		l.ArrivalTime,
		StyleIndigo.Render(flighttime.FormatMinutes(l.DurationMinutes)),
		StylePurple.Render(FormatAmount(d.AmountX)),
		StylePink.Render(FormatAmount(d.AmountY)),
	)
}
