// Package store owns the authoritative in-memory flight log state and its
// write-through persistence. All mutations go through AddLog, RemoveLog and
// SetMultipliers; persistence failures are logged and swallowed, leaving the
// in-memory state as the source of truth for the session.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexanderramin/flightlog/internal/domain"
	"github.com/alexanderramin/flightlog/internal/flighttime"
	"github.com/alexanderramin/flightlog/internal/schema"
	"github.com/alexanderramin/flightlog/internal/storage"
)

// StateKey is the storage key the whole store state is persisted under.
const StateKey = "flight-storage"

// Snapshot is a point-in-time copy of the store state handed to readers and
// subscribers. Mutating it never affects the store.
type Snapshot struct {
	Logs        []domain.FlightLog
	Multipliers domain.Multipliers
}

// Listener receives a fresh snapshot after every store mutation.
type Listener func(Snapshot)

// Store is the flight log store.
type Store struct {
	mu          sync.Mutex
	backend     storage.Backend
	log         *zap.Logger
	now         func() time.Time
	newID       func() string
	logs        []domain.FlightLog
	multipliers domain.Multipliers
	listeners   map[int]Listener
	nextSubID   int
}

// Open hydrates a Store from the backend, migrating older persisted schema
// versions first. An absent or unreadable blob yields an empty store with
// default multipliers; a read failure is logged, never fatal.
func Open(ctx context.Context, backend storage.Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		backend:     backend,
		log:         log,
		now:         time.Now,
		newID:       uuid.NewString,
		multipliers: domain.DefaultMultipliers(),
		listeners:   make(map[int]Listener),
	}

	data, ok, err := backend.Load(ctx, StateKey)
	if err != nil {
		log.Warn("loading persisted state failed, starting empty", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}

	blob, err := schema.Decode(data)
	if err != nil {
		log.Warn("persisted state unreadable, starting empty", zap.Error(err))
		return s
	}
	if blob.Version < schema.CurrentVersion {
		log.Info("migrating persisted state",
			zap.Int("from", blob.Version),
			zap.Int("to", schema.CurrentVersion))
	}
	blob = schema.Migrate(blob, s.now)
	s.logs, s.multipliers = blob.ToDomain()
	return s
}

// AddLog computes the leg duration, builds a record with a fresh id and the
// supplied multiplier pair, prepends it to the log list and persists. The
// store does not reject zero durations; callers gate on duration > 0.
func (s *Store) AddLog(ctx context.Context, depDate, arrDate, depTime, arrTime string, x, y float64) domain.FlightLog {
	minutes := flighttime.ComputeDurationMinutes(depDate, depTime, arrDate, arrTime)
	return s.add(ctx, depDate, arrDate, depTime, arrTime, minutes, x, y)
}

// AddAdjustedLog is AddLog with the long-haul reporting rule applied to the
// computed duration before the record is frozen.
func (s *Store) AddAdjustedLog(ctx context.Context, depDate, arrDate, depTime, arrTime string, x, y float64) domain.FlightLog {
	minutes := flighttime.AdjustDurationMinutes(flighttime.ComputeDurationMinutes(depDate, depTime, arrDate, arrTime))
	return s.add(ctx, depDate, arrDate, depTime, arrTime, minutes, x, y)
}

func (s *Store) add(ctx context.Context, depDate, arrDate, depTime, arrTime string, minutes int, x, y float64) domain.FlightLog {
	rec := domain.FlightLog{
		ID:              s.newID(),
		DepartureDate:   depDate,
		ArrivalDate:     arrDate,
		DepartureTime:   depTime,
		ArrivalTime:     arrTime,
		DurationMinutes: minutes,
		MultiplierX:     x,
		MultiplierY:     y,
	}

	s.mu.Lock()
	s.logs = append([]domain.FlightLog{rec}, s.logs...)
	s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return rec
}

// RemoveLog deletes the record with the given id. Absent ids are a no-op.
func (s *Store) RemoveLog(ctx context.Context, id string) {
	s.mu.Lock()
	removed := false
	for i, l := range s.logs {
		if l.ID == id {
			s.logs = append(s.logs[:i], s.logs[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SetMultipliers replaces the default rate pair used for new records.
// Existing records keep their snapshotted pair.
func (s *Store) SetMultipliers(ctx context.Context, x, y float64) {
	s.mu.Lock()
	s.multipliers = domain.Multipliers{X: x, Y: y}
	s.persistLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Logs returns a copy of the log list, newest first.
func (s *Store) Logs() []domain.FlightLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().Logs
}

// Multipliers returns the current default rate pair.
func (s *Store) Multipliers() domain.Multipliers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.multipliers
}

// Subscribe registers a listener for change notifications and returns the
// current snapshot plus an unsubscribe func.
func (s *Store) Subscribe(l Listener) (Snapshot, func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = l
	snap := s.snapshotLocked()
	s.mu.Unlock()

	return snap, func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// persistLocked writes the full state through to the backend. Failures only
// cost durability, so they are logged and swallowed. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := schema.Encode(schema.FromDomain(s.logs, s.multipliers))
	if err != nil {
		s.log.Warn("encoding state failed, skipping persist", zap.Error(err))
		return
	}
	if err := s.backend.Save(ctx, StateKey, data); err != nil {
		s.log.Warn("persisting state failed, in-memory state kept", zap.Error(err))
	}
}

func (s *Store) snapshotLocked() Snapshot {
	logs := make([]domain.FlightLog, len(s.logs))
	copy(logs, s.logs)
	return Snapshot{Logs: logs, Multipliers: s.multipliers}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
