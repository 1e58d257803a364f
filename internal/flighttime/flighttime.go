package flighttime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/flightlog/internal/domain"
)

// ErrInvalidTimeFormat is returned when a raw time string is not a valid
// 4-digit HHmm value.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HHmm")

// TimeOfDay is a local wall-clock time of day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a raw HHmm string such as "0630". Non-digit characters
// are stripped first, so "06:30" is accepted. Anything that does not leave
// exactly four digits, or whose hour/minute fall outside 0-23/0-59, is
// rejected with ErrInvalidTimeFormat.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	clean := digits.String()
	if len(clean) != 4 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	hour := int(clean[0]-'0')*10 + int(clean[1]-'0')
	minute := int(clean[2]-'0')*10 + int(clean[3]-'0')
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, raw)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ComputeDurationMinutes returns the whole-minute difference between the
// departure and arrival instants. Each instant is the given calendar date
// combined with its HHmm wall-clock time; no timezone conversion is applied.
// Overnight flights are expressed through an explicit later arrival date, not
// a same-day wraparound heuristic. An arrival at or before the departure, or
// any unparseable field, yields 0.
func ComputeDurationMinutes(depDate, depTime, arrDate, arrTime string) int {
	dep, err := combine(depDate, depTime)
	if err != nil {
		return 0
	}
	arr, err := combine(arrDate, arrTime)
	if err != nil {
		return 0
	}

	minutes := int(arr.Sub(dep) / time.Minute)
	if minutes <= 0 {
		return 0
	}
	return minutes
}

// combine builds a wall-clock instant from a calendar date and an HHmm time.
func combine(date, clock string) (time.Time, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	tod, err := ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, time.UTC), nil
}

// AdjustDurationMinutes applies the long-haul reporting rule: a raw duration
// in the inclusive 600-1440 range (10h up to 24h) is reported as a flat 1440
// minutes; everything else passes through unchanged. Callers decide whether
// the rule applies to a given leg; it is never applied implicitly.
func AdjustDurationMinutes(minutes int) int {
	if minutes >= 600 && minutes <= 1440 {
		return 1440
	}
	return minutes
}

// FormatMinutes converts raw minutes into human-friendly "12h 00m" form.
func FormatMinutes(min int) string {
	return fmt.Sprintf("%dh %02dm", min/60, min%60)
}

// FormatDecimalHours renders raw minutes as decimal hours with 2 places.
func FormatDecimalHours(min int) string {
	return fmt.Sprintf("%.2f", float64(min)/60)
}
