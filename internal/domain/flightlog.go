package domain

// DateLayout is the calendar-date format used throughout the logbook.
const DateLayout = "2006-01-02"

// FlightLog is one logged flight leg. Dates are calendar dates in DateLayout,
// times are local wall-clock HHmm strings as entered. DurationMinutes and the
// multiplier pair are computed/snapshotted at creation and never change; the
// only mutation a record supports is deletion.
type FlightLog struct {
	ID              string
	DepartureDate   string
	ArrivalDate     string
	DepartureTime   string
	ArrivalTime     string
	DurationMinutes int
	MultiplierX     float64
	MultiplierY     float64
}

// Multipliers is the current default rate pair applied to newly created
// records. Changing it never touches the snapshot on existing records.
type Multipliers struct {
	X float64
	Y float64
}

// Default multiplier rates used when nothing has been configured yet:
// a pay-rate conversion followed by a QAR currency conversion.
const (
	DefaultMultiplierX = 1.5
	DefaultMultiplierY = 3.64
)

// DefaultMultipliers returns the hardcoded fallback rate pair.
func DefaultMultipliers() Multipliers {
	return Multipliers{X: DefaultMultiplierX, Y: DefaultMultiplierY}
}
