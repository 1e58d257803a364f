package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/testutil"
)

func TestMonthlyTotals_GroupsByDepartureMonth(t *testing.T) {
	logs := []domain.FlightLog{
		testutil.NewTestLog(testutil.WithDates("2025-01-10", "2025-01-10"), testutil.WithDuration(720), testutil.WithRates(1.5, 2.0)),
		testutil.NewTestLog(testutil.WithDates("2025-01-31", "2025-02-01"), testutil.WithDuration(150), testutil.WithRates(1.5, 2.0)),
		testutil.NewTestLog(testutil.WithDates("2025-03-05", "2025-03-05"), testutil.WithDuration(60), testutil.WithRates(2.0, 3.0)),
		testutil.NewTestLog(testutil.WithDates("2024-01-10", "2024-01-10"), testutil.WithDuration(999)),
	}

	totals := MonthlyTotals(logs, 2025)
	require.Len(t, totals, 2)

	jan := totals[0]
	assert.Equal(t, time.January, jan.Month)
	assert.Equal(t, 2, jan.Flights)
	assert.Equal(t, 870, jan.Minutes)
	// 720min: 12h*1.5=18.00, *2.0=36.00; 150min: 2.5h*1.5=3.75, *2.0=7.50
	assert.InDelta(t, 21.75, jan.AmountX, 1e-9)
	assert.InDelta(t, 43.50, jan.AmountY, 1e-9)

	mar := totals[1]
	assert.Equal(t, time.March, mar.Month)
	assert.Equal(t, 1, mar.Flights)
	assert.Equal(t, 60, mar.Minutes)
	assert.InDelta(t, 2.0, mar.AmountX, 1e-9)
	assert.InDelta(t, 6.0, mar.AmountY, 1e-9)
}

func TestMonthlyTotals_UsesRecordSnapshots(t *testing.T) {
	// Two legs in the same month with different snapshotted rates; the sum
	// must honor each record's own pair.
	logs := []domain.FlightLog{
		testutil.NewTestLog(testutil.WithDates("2025-05-01", "2025-05-01"), testutil.WithDuration(60), testutil.WithRates(1.0, 1.0)),
		testutil.NewTestLog(testutil.WithDates("2025-05-02", "2025-05-02"), testutil.WithDuration(60), testutil.WithRates(2.0, 2.0)),
	}

	totals := MonthlyTotals(logs, 2025)
	require.Len(t, totals, 1)
	assert.InDelta(t, 3.0, totals[0].AmountX, 1e-9) // 1.0 + 2.0
	assert.InDelta(t, 5.0, totals[0].AmountY, 1e-9) // 1.0 + 4.0
}

func TestMonthlyTotals_SkipsUnparseableDates(t *testing.T) {
	logs := []domain.FlightLog{
		testutil.NewTestLog(testutil.WithDates("garbage", "2025-01-01")),
	}
	assert.Empty(t, MonthlyTotals(logs, 2025))
}

func TestMonthLogs_FiltersAndSorts(t *testing.T) {
	logs := []domain.FlightLog{
		testutil.NewTestLog(testutil.WithDates("2025-01-05", "2025-01-05")),
		testutil.NewTestLog(testutil.WithDates("2025-01-20", "2025-01-20")),
		testutil.NewTestLog(testutil.WithDates("2025-02-01", "2025-02-01")),
	}

	jan := MonthLogs(logs, 2025, time.January)
	require.Len(t, jan, 2)
	assert.Equal(t, "2025-01-20", jan[0].DepartureDate)
	assert.Equal(t, "2025-01-05", jan[1].DepartureDate)
}

func TestYears(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, []int{2025}, Years(nil, now))

	logs := []domain.FlightLog{
		testutil.NewTestLog(testutil.WithDates("2023-01-01", "2023-01-01")),
		testutil.NewTestLog(testutil.WithDates("2025-01-01", "2025-01-01")),
		testutil.NewTestLog(testutil.WithDates("2023-06-01", "2023-06-01")),
	}
	assert.Equal(t, []int{2025, 2023}, Years(logs, now))
}
