package schema

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/flightlog/internal/domain"
)

// CurrentVersion is the schema version newly persisted blobs are tagged with.
const CurrentVersion = 3

// Blob is the top-level persisted structure: the store state plus the schema
// version the state was written under.
type Blob struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// State mirrors the store: the log list (newest first) and the current
// default multiplier pair. Multipliers is a pointer because blobs written
// before the pair existed carry no value at all.
type State struct {
	Logs        []Log  `json:"logs"`
	Multipliers *Rates `json:"multipliers,omitempty"`
}

// Rates is the persisted multiplier pair.
type Rates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Log is one persisted flight leg. Optional fields cover every version this
// schema has gone through: Date is the pre-split single date from version 0,
// and the multiplier snapshot only exists from version 3 on.
type Log struct {
	ID              string   `json:"id"`
	Date            string   `json:"date,omitempty"`
	DepDate         string   `json:"depDate,omitempty"`
	ArrDate         string   `json:"arrDate,omitempty"`
	DepTime         string   `json:"depTime"`
	ArrTime         string   `json:"arrTime"`
	DurationMinutes int      `json:"durationMinutes"`
	MultiplierX     *float64 `json:"multiplierX,omitempty"`
	MultiplierY     *float64 `json:"multiplierY,omitempty"`
}

// Decode parses a persisted blob.
func Decode(data []byte) (Blob, error) {
	var b Blob
	if err := json.Unmarshal(data, &b); err != nil {
		return Blob{}, fmt.Errorf("parsing persisted state: %w", err)
	}
	return b, nil
}

// Encode serializes a blob for persistence.
func Encode(b Blob) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding persisted state: %w", err)
	}
	return data, nil
}

// FromDomain builds a current-version blob from live store state.
func FromDomain(logs []domain.FlightLog, mult domain.Multipliers) Blob {
	out := make([]Log, 0, len(logs))
	for _, l := range logs {
		x, y := l.MultiplierX, l.MultiplierY
		out = append(out, Log{
			ID:              l.ID,
			DepDate:         l.DepartureDate,
			ArrDate:         l.ArrivalDate,
			DepTime:         l.DepartureTime,
			ArrTime:         l.ArrivalTime,
			DurationMinutes: l.DurationMinutes,
			MultiplierX:     &x,
			MultiplierY:     &y,
		})
	}
	return Blob{
		State: State{
			Logs:        out,
			Multipliers: &Rates{X: mult.X, Y: mult.Y},
		},
		Version: CurrentVersion,
	}
}

// ToDomain converts a migrated, current-version blob into live store state.
// Call Migrate first; ToDomain assumes every record carries the split dates
// and a multiplier snapshot.
func (b Blob) ToDomain() ([]domain.FlightLog, domain.Multipliers) {
	logs := make([]domain.FlightLog, 0, len(b.State.Logs))
	for _, l := range b.State.Logs {
		logs = append(logs, domain.FlightLog{
			ID:              l.ID,
			DepartureDate:   l.DepDate,
			ArrivalDate:     l.ArrDate,
			DepartureTime:   l.DepTime,
			ArrivalTime:     l.ArrTime,
			DurationMinutes: l.DurationMinutes,
			MultiplierX:     floatOrDefault(l.MultiplierX, domain.DefaultMultiplierX),
			MultiplierY:     floatOrDefault(l.MultiplierY, domain.DefaultMultiplierY),
		})
	}

	mult := domain.DefaultMultipliers()
	if b.State.Multipliers != nil {
		mult = domain.Multipliers{X: b.State.Multipliers.X, Y: b.State.Multipliers.Y}
	}
	return logs, mult
}

func floatOrDefault(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}
