package stopwatch

import (
	"fmt"
	"time"
)

// Lap is one recorded lap mark. Label carries the digit key that
// recorded it, Duration the time since the previous lap, Cumulative the
// total elapsed time at the moment of recording. Laps never change once
// recorded.
type Lap struct {
	Label      int
	Duration   time.Duration
	Cumulative time.Duration
	RecordedAt time.Time
}

// String renders the lap-log display line, e.g.
// "[3] 00:12.34 (Total: 01:23.45) - 15:04:05".
func (l Lap) String() string {
	return fmt.Sprintf("[%d] %s (Total: %s) - %s",
		l.Label,
		FormatDuration(l.Duration),
		FormatDuration(l.Cumulative),
		l.RecordedAt.Format("15:04:05"))
}
