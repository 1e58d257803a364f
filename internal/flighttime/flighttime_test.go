package flighttime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_Valid(t *testing.T) {
	tod, err := ParseTimeOfDay("0630")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 6, Minute: 30}, tod)
}

func TestParseTimeOfDay_StripsSeparators(t *testing.T) {
	tod, err := ParseTimeOfDay("20:20")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 20, Minute: 20}, tod)
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	cases := []string{"", "8", "080", "08000", "2400", "0860", "ab"}
	for _, raw := range cases {
		_, err := ParseTimeOfDay(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", raw)
	}
}

func TestComputeDurationMinutes_SameDay(t *testing.T) {
	// 0800 to 2020 is 12h20m.
	got := ComputeDurationMinutes("2025-01-01", "0800", "2025-01-01", "2020")
	assert.Equal(t, 740, got)
}

func TestComputeDurationMinutes_TwelveHours(t *testing.T) {
	got := ComputeDurationMinutes("2025-01-01", "0800", "2025-01-01", "2000")
	assert.Equal(t, 720, got)
}

func TestComputeDurationMinutes_Overnight(t *testing.T) {
	// Overnight legs carry an explicit later arrival date; the raw arrival
	// clock being numerically smaller than departure must not trigger any
	// +24h heuristic.
	got := ComputeDurationMinutes("2025-01-01", "2300", "2025-01-02", "0130")
	assert.Equal(t, 150, got)
}

func TestComputeDurationMinutes_ArrivalNotAfterDeparture(t *testing.T) {
	assert.Equal(t, 0, ComputeDurationMinutes("2025-01-02", "0800", "2025-01-01", "2020"))
	assert.Equal(t, 0, ComputeDurationMinutes("2025-01-01", "0800", "2025-01-01", "0800"))
}

func TestComputeDurationMinutes_Malformed(t *testing.T) {
	assert.Equal(t, 0, ComputeDurationMinutes("not-a-date", "0800", "2025-01-01", "2020"))
	assert.Equal(t, 0, ComputeDurationMinutes("2025-01-01", "banana", "2025-01-01", "2020"))
	assert.Equal(t, 0, ComputeDurationMinutes("2025-01-01", "0800", "2025-01-01", "99"))
}

func TestAdjustDurationMinutes(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{300, 300},
		{599, 599},
		{600, 1440},
		{650, 1440},
		{1440, 1440},
		{1441, 1441},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AdjustDurationMinutes(tc.in), "minutes %d", tc.in)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "12h 00m", FormatMinutes(720))
	assert.Equal(t, "2h 05m", FormatMinutes(125))
	assert.Equal(t, "0h 00m", FormatMinutes(0))
	assert.Equal(t, "24h 00m", FormatMinutes(1440))
}

func TestFormatDecimalHours(t *testing.T) {
	assert.Equal(t, "12.00", FormatDecimalHours(720))
	assert.Equal(t, "1.50", FormatDecimalHours(90))
	assert.Equal(t, "0.17", FormatDecimalHours(10))
}
