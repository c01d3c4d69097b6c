// Package stopwatch implements the lap-timer core: a pause/resume
// elapsed-time accumulator and the ordered sequence of lap records
// derived from it.
//
// The package never reads the clock itself. Every transition takes the
// current instant as an argument, so any scheduler or test can drive it.
package stopwatch

import "time"

// Stopwatch tracks elapsed time across start/stop cycles and records
// laps against the running total. The zero value is a stopped stopwatch
// with no laps. Methods are not safe for concurrent use; a single owner
// is expected to drive all transitions.
type Stopwatch struct {
	running  bool
	startRef time.Time
	elapsed  time.Duration
	laps     []Lap
}

func New() *Stopwatch {
	return &Stopwatch{}
}

// Toggle starts the stopwatch if it is stopped and stops it if it is
// running. Starting anchors the reference instant at now minus the
// already-accumulated elapsed time, so resuming continues exactly where
// the last stop left off.
func (s *Stopwatch) Toggle(now time.Time) {
	if s.running {
		s.elapsed = now.Sub(s.startRef)
		s.running = false
		return
	}
	s.startRef = now.Add(-s.elapsed)
	s.running = true
}

// Tick refreshes the elapsed time while running. Elapsed time is
// recomputed from the reference instant, never accumulated tick by
// tick; missed or irregular ticks cost display freshness only.
func (s *Stopwatch) Tick(now time.Time) {
	if s.running {
		s.elapsed = now.Sub(s.startRef)
	}
}

// Lap records a lap carrying the given label and reports whether it was
// accepted. While stopped nothing is recorded and ok is false. The lap
// duration is the time since the previous lap, or the full elapsed time
// for the first lap.
func (s *Stopwatch) Lap(label int, now time.Time) (Lap, bool) {
	if !s.running {
		return Lap{}, false
	}
	s.elapsed = now.Sub(s.startRef)

	lap := Lap{
		Label:      label,
		Duration:   s.elapsed,
		Cumulative: s.elapsed,
		RecordedAt: now,
	}
	if n := len(s.laps); n > 0 {
		lap.Duration = s.elapsed - s.laps[n-1].Cumulative
	}
	s.laps = append(s.laps, lap)
	return lap, true
}

// Reset restores the initial state from any state: stopped, zero
// elapsed time, no laps.
func (s *Stopwatch) Reset() {
	s.running = false
	s.startRef = time.Time{}
	s.elapsed = 0
	s.laps = nil
}

// Running reports whether the stopwatch is accumulating time.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the elapsed time as of the last transition or tick.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// LapCount returns the number of recorded laps.
func (s *Stopwatch) LapCount() int {
	return len(s.laps)
}

// Laps returns a copy of the recorded laps in recording order.
func (s *Stopwatch) Laps() []Lap {
	if len(s.laps) == 0 {
		return nil
	}
	out := make([]Lap, len(s.laps))
	copy(out, s.laps)
	return out
}
