package schema

import (
	"time"

	"github.com/alexanderramin/flightlog/internal/domain"
)

// Migrate upgrades a persisted blob to CurrentVersion. It is pure and
// idempotent: blobs already at or beyond the current version pass through
// unchanged, so re-applying it is a no-op. Records are never dropped; a record
// that cannot be confidently upgraded keeps its existing fields and only has
// the missing ones filled with defaults.
//
// now supplies the migration-time calendar date used when a version-0 record
// carries no date at all; pass time.Now outside of tests.
func Migrate(b Blob, now func() time.Time) Blob {
	if b.Version >= CurrentVersion {
		return b
	}

	out := b
	out.State.Logs = make([]Log, len(b.State.Logs))
	copy(out.State.Logs, b.State.Logs)

	if b.Version < 1 {
		today := now().Format(domain.DateLayout)
		for i := range out.State.Logs {
			splitLegacyDate(&out.State.Logs[i], today)
		}
	}

	if b.Version < 3 {
		x, y := defaultRates(b.State.Multipliers)
		for i := range out.State.Logs {
			snapshotRates(&out.State.Logs[i], x, y)
		}
	}

	out.Version = CurrentVersion
	return out
}

// splitLegacyDate fills the departure/arrival dates on a pre-split record
// from its legacy single date, falling back to the migration-time date.
func splitLegacyDate(l *Log, today string) {
	fallback := l.Date
	if fallback == "" {
		fallback = today
	}
	if l.DepDate == "" {
		l.DepDate = fallback
	}
	if l.ArrDate == "" {
		l.ArrDate = fallback
	}
}

// snapshotRates stamps the given rates onto a record that predates per-record
// multiplier snapshots. Records that already carry a snapshot keep it.
func snapshotRates(l *Log, x, y float64) {
	if l.MultiplierX == nil {
		vx := x
		l.MultiplierX = &vx
	}
	if l.MultiplierY == nil {
		vy := y
		l.MultiplierY = &vy
	}
}

// defaultRates picks the persisted global pair when present, else the
// hardcoded defaults.
func defaultRates(r *Rates) (float64, float64) {
	if r != nil {
		return r.X, r.Y
	}
	return domain.DefaultMultiplierX, domain.DefaultMultiplierY
}
