package testutil

import (
	"github.com/google/uuid"

	"github.com/alexanderramin/flightlog/internal/domain"
)

// LogOption mutates a fixture flight log.
type LogOption func(*domain.FlightLog)

func WithDates(dep, arr string) LogOption {
	return func(l *domain.FlightLog) {
		l.DepartureDate = dep
		l.ArrivalDate = arr
	}
}

func WithTimes(dep, arr string) LogOption {
	return func(l *domain.FlightLog) {
		l.DepartureTime = dep
		l.ArrivalTime = arr
	}
}

func WithDuration(minutes int) LogOption {
	return func(l *domain.FlightLog) {
		l.DurationMinutes = minutes
	}
}

func WithRates(x, y float64) LogOption {
	return func(l *domain.FlightLog) {
		l.MultiplierX = x
		l.MultiplierY = y
	}
}

// NewTestLog builds a plausible single-day flight leg.
func NewTestLog(opts ...LogOption) domain.FlightLog {
	l := domain.FlightLog{
		ID:              uuid.NewString(),
		DepartureDate:   "2025-01-01",
		ArrivalDate:     "2025-01-01",
		DepartureTime:   "0800",
		ArrivalTime:     "2000",
		DurationMinutes: 720,
		MultiplierX:     domain.DefaultMultiplierX,
		MultiplierY:     domain.DefaultMultiplierY,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
