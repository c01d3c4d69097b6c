// Package session turns a finished timer run into a named, exportable
// record. A session is a one-shot snapshot: it is built at save time
// from copied lap data and written out once, never read back.
package session

import (
	"time"

	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/stopwatch"
)

type Session struct {
	Name    string
	SavedAt time.Time
	Total   time.Duration
	Laps    []stopwatch.Lap
}

// New builds a session snapshot stamped with the current wall-clock
// time. The laps slice is stored as given; callers hand over a copy
// they no longer mutate.
func New(name string, total time.Duration, laps []stopwatch.Lap) *Session {
	return &Session{
		Name:    name,
		SavedAt: time.Now(),
		Total:   total,
		Laps:    laps,
	}
}

// DefaultName returns the session name offered when saving, derived
// from the wall clock, e.g. "Session_20260823_154030".
func DefaultName(now time.Time) string {
	return "Session_" + now.Format("20060102_150405")
}
