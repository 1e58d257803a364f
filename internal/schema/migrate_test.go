package schema

import (
	"testing"
	"time"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func TestMigrate_V0SplitsLegacyDate(t *testing.T) {
	b := Blob{
		Version: 0,
		State: State{
			Logs: []Log{
				{ID: "a", Date: "2024-03-01", DepTime: "0800", ArrTime: "2020", DurationMinutes: 740},
			},
		},
	}

	got := Migrate(b, fixedNow)
	require.Len(t, got.State.Logs, 1)
	assert.Equal(t, CurrentVersion, got.Version)
	assert.Equal(t, "2024-03-01", got.State.Logs[0].DepDate)
	assert.Equal(t, "2024-03-01", got.State.Logs[0].ArrDate)
	// The legacy field is preserved, not stripped.
	assert.Equal(t, "2024-03-01", got.State.Logs[0].Date)
}

func TestMigrate_V0MissingDateDefaultsToToday(t *testing.T) {
	b := Blob{Version: 0, State: State{Logs: []Log{{ID: "a", DepTime: "0800", ArrTime: "0900"}}}}

	got := Migrate(b, fixedNow)
	assert.Equal(t, "2025-06-15", got.State.Logs[0].DepDate)
	assert.Equal(t, "2025-06-15", got.State.Logs[0].ArrDate)
}

func TestMigrate_SnapshotsPersistedGlobalRates(t *testing.T) {
	b := Blob{
		Version: 2,
		State: State{
			Logs:        []Log{{ID: "a", DepDate: "2024-03-01", ArrDate: "2024-03-01", DepTime: "0800", ArrTime: "0900", DurationMinutes: 60}},
			Multipliers: &Rates{X: 2.0, Y: 4.0},
		},
	}

	got := Migrate(b, fixedNow)
	require.NotNil(t, got.State.Logs[0].MultiplierX)
	require.NotNil(t, got.State.Logs[0].MultiplierY)
	assert.Equal(t, 2.0, *got.State.Logs[0].MultiplierX)
	assert.Equal(t, 4.0, *got.State.Logs[0].MultiplierY)
}

func TestMigrate_SnapshotFallsBackToHardcodedDefaults(t *testing.T) {
	b := Blob{Version: 2, State: State{Logs: []Log{{ID: "a", DepDate: "2024-03-01", ArrDate: "2024-03-01"}}}}

	got := Migrate(b, fixedNow)
	assert.Equal(t, domain.DefaultMultiplierX, *got.State.Logs[0].MultiplierX)
	assert.Equal(t, domain.DefaultMultiplierY, *got.State.Logs[0].MultiplierY)
}

func TestMigrate_ExistingSnapshotKept(t *testing.T) {
	x, y := 9.0, 10.0
	b := Blob{
		Version: 1,
		State: State{
			Logs:        []Log{{ID: "a", DepDate: "2024-03-01", ArrDate: "2024-03-01", MultiplierX: &x, MultiplierY: &y}},
			Multipliers: &Rates{X: 2.0, Y: 4.0},
		},
	}

	got := Migrate(b, fixedNow)
	assert.Equal(t, 9.0, *got.State.Logs[0].MultiplierX)
	assert.Equal(t, 10.0, *got.State.Logs[0].MultiplierY)
}

func TestMigrate_Idempotent(t *testing.T) {
	b := Blob{
		Version: 0,
		State: State{
			Logs: []Log{
				{ID: "a", Date: "2024-03-01", DepTime: "0800", ArrTime: "2020", DurationMinutes: 740},
				{ID: "b", DepTime: "1000", ArrTime: "1100", DurationMinutes: 60},
			},
		},
	}

	once := Migrate(b, fixedNow)
	twice := Migrate(once, fixedNow)
	assert.Equal(t, once, twice)
}

func TestMigrate_NewerVersionPassesThrough(t *testing.T) {
	b := Blob{Version: 7, State: State{Logs: []Log{{ID: "a"}}}}
	got := Migrate(b, fixedNow)
	assert.Equal(t, b, got)
}

func TestMigrate_CurrentVersionIsNoOp(t *testing.T) {
	x, y := 1.5, 3.64
	b := Blob{
		Version: CurrentVersion,
		State: State{
			Logs:        []Log{{ID: "a", DepDate: "2024-03-01", ArrDate: "2024-03-01", MultiplierX: &x, MultiplierY: &y}},
			Multipliers: &Rates{X: 1.5, Y: 3.64},
		},
	}
	assert.Equal(t, b, Migrate(b, fixedNow))
}

func TestMigrate_NeverDropsRecords(t *testing.T) {
	b := Blob{
		Version: 0,
		State: State{
			Logs: []Log{
				{ID: "a"}, // no dates, no times at all
				{ID: "b", Date: "2024-01-01"},
				{ID: "c", DepDate: "2024-02-02", ArrDate: "2024-02-03"},
			},
		},
	}

	got := Migrate(b, fixedNow)
	require.Len(t, got.State.Logs, 3)
	for _, l := range got.State.Logs {
		assert.NotEmpty(t, l.DepDate)
		assert.NotEmpty(t, l.ArrDate)
		assert.NotNil(t, l.MultiplierX)
		assert.NotNil(t, l.MultiplierY)
	}
	// Pre-split dates on "c" are untouched.
	assert.Equal(t, "2024-02-02", got.State.Logs[2].DepDate)
	assert.Equal(t, "2024-02-03", got.State.Logs[2].ArrDate)
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	logs := []domain.FlightLog{{
		ID:              "a",
		DepartureDate:   "2025-01-01",
		ArrivalDate:     "2025-01-02",
		DepartureTime:   "2300",
		ArrivalTime:     "0130",
		DurationMinutes: 150,
		MultiplierX:     1.5,
		MultiplierY:     3.64,
	}}
	mult := domain.Multipliers{X: 1.5, Y: 3.64}

	data, err := Encode(FromDomain(logs, mult))
	require.NoError(t, err)

	b, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, b.Version)

	gotLogs, gotMult := b.ToDomain()
	assert.Equal(t, logs, gotLogs)
	assert.Equal(t, mult, gotMult)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}
