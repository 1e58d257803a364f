// Package stats derives monthly views from the flight log. Totals are
// recomputed from the full log list on every call; nothing here is cached,
// so there is no invalidation to get wrong.
package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/earnings"
)

// MonthlyTotal aggregates the legs departing in one calendar month.
// Amounts are summed from each record's own snapshotted multiplier pair.
type MonthlyTotal struct {
	Year    int
	Month   time.Month
	Flights int
	Minutes int
	AmountX float64
	AmountY float64
}

// MonthlyTotals returns one entry per month of the given year that has at
// least one flight, January first. Records whose departure date does not
// parse are skipped.
func MonthlyTotals(logs []domain.FlightLog, year int) []MonthlyTotal {
	byMonth := make(map[time.Month]*MonthlyTotal)
	for _, l := range logs {
		day, err := time.Parse(domain.DateLayout, l.DepartureDate)
		if err != nil || day.Year() != year {
			continue
		}
		m := byMonth[day.Month()]
		if m == nil {
			m = &MonthlyTotal{Year: year, Month: day.Month()}
			byMonth[day.Month()] = m
		}
		d := earnings.Compute(l.DurationMinutes, l.MultiplierX, l.MultiplierY)
		m.Flights++
		m.Minutes += l.DurationMinutes
		m.AmountX += d.AmountX
		m.AmountY += d.AmountY
	}

	out := make([]MonthlyTotal, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// MonthLogs returns the legs departing in the given month, most recent
// departure date first.
func MonthLogs(logs []domain.FlightLog, year int, month time.Month) []domain.FlightLog {
	var out []domain.FlightLog
	for _, l := range logs {
		day, err := time.Parse(domain.DateLayout, l.DepartureDate)
		if err != nil {
			continue
		}
		if day.Year() == year && day.Month() == month {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureDate > out[j].DepartureDate
	})
	return out
}

// Years returns the distinct departure years present in the log, descending.
// An empty log yields the current year so year selectors have something to
// show.
func Years(logs []domain.FlightLog, now func() time.Time) []int {
	seen := make(map[int]bool)
	for _, l := range logs {
		day, err := time.Parse(domain.DateLayout, l.DepartureDate)
		if err != nil {
			continue
		}
		seen[day.Year()] = true
	}
	if len(seen) == 0 {
		return []int{now().Year()}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
