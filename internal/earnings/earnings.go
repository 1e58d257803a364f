package earnings

import "math"

// Derived holds the figures computed from a flight duration and its rate pair.
type Derived struct {
	Hours   float64 // decimal flight hours, unrounded
	AmountX float64 // Hours x rate X, rounded to 2 places
	AmountY float64 // AmountX x rate Y, rounded to 2 places
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Compute derives the monetary figures for a flight. AmountY is chained off
// the already-rounded AmountX rather than off the raw decimal hours; the
// rounding error from X deliberately propagates into Y, and both the rounding
// mode and the multiplication order are part of the output contract.
func Compute(durationMinutes int, x, y float64) Derived {
	hours := float64(durationMinutes) / 60
	amountX := Round2(hours * x)
	amountY := Round2(amountX * y)
	return Derived{Hours: hours, AmountX: amountX, AmountY: amountY}
}
