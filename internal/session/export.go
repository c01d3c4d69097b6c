package session

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/stopwatch"
)

// ErrNoLaps reports a save request for a session without recorded laps.
// It is informational rather than a failure; nothing is written.
var ErrNoLaps = errors.New("no lap times to save")

const (
	saveDateLayout  = "2006-01-02 15:04:05"
	timestampLayout = "2006-01-02 15:04:05.000"
)

// WriteCSV serializes the session to w: a "# Session Information"
// metadata block, a blank separator row, a column-header row, then one
// row per lap in recording order. Durations appear twice per lap, as
// raw seconds at millisecond precision and as the formatted display
// string.
func (s *Session) WriteCSV(w io.Writer) error {
	rows := [][]string{
		{"# Session Information"},
		{"Session Name", s.Name},
		{"Save Date", s.SavedAt.Format(saveDateLayout)},
		{"Total Laps", strconv.Itoa(len(s.Laps))},
		{"Total Time", stopwatch.FormatDuration(s.Total)},
		{},
		{"Lap Number", "Lap Time (sec)", "Lap Time (display)",
			"Total Time (sec)", "Total Time (display)", "Timestamp"},
	}
	for _, lap := range s.Laps {
		rows = append(rows, []string{
			strconv.Itoa(lap.Label),
			fmt.Sprintf("%.3f", lap.Duration.Seconds()),
			stopwatch.FormatDuration(lap.Duration),
			fmt.Sprintf("%.3f", lap.Cumulative.Seconds()),
			stopwatch.FormatDuration(lap.Cumulative),
			lap.RecordedAt.Format(timestampLayout),
		})
	}

	if err := csv.NewWriter(w).WriteAll(rows); err != nil {
		return fmt.Errorf("write session rows: %w", err)
	}
	return nil
}

// Save writes the session to path as a CSV file. A session with no laps
// returns ErrNoLaps and writes nothing. Rows are serialized in memory
// before the file is created, in one write.
func (s *Session) Save(path string) error {
	if len(s.Laps) == 0 {
		return ErrNoLaps
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
