package session

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/stopwatch"
)

func sampleSession() *Session {
	return &Session{
		Name:    "Test Session",
		SavedAt: time.Date(2026, time.August, 23, 10, 11, 12, 0, time.UTC),
		Total:   83450 * time.Millisecond,
		Laps: []stopwatch.Lap{
			{
				Label:      3,
				Duration:   12345 * time.Millisecond,
				Cumulative: 12345 * time.Millisecond,
				RecordedAt: time.Date(2026, time.August, 23, 10, 10, 1, 123000000, time.UTC),
			},
			{
				Label:      7,
				Duration:   71105 * time.Millisecond,
				Cumulative: 83450 * time.Millisecond,
				RecordedAt: time.Date(2026, time.August, 23, 10, 11, 0, 456000000, time.UTC),
			},
		},
	}
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleSession().WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := strings.Join([]string{
		"# Session Information",
		"Session Name,Test Session",
		"Save Date,2026-08-23 10:11:12",
		"Total Laps,2",
		"Total Time,01:23.45",
		"",
		"Lap Number,Lap Time (sec),Lap Time (display),Total Time (sec),Total Time (display),Timestamp",
		"3,12.345,00:12.34,12.345,00:12.34,2026-08-23 10:10:01.123",
		"7,71.105,01:11.10,83.450,01:23.45,2026-08-23 10:11:00.456",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("layout mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteCSVQuotesDelimiters(t *testing.T) {
	s := sampleSession()
	s.Name = "splits, morning"

	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), `Session Name,"splits, morning"`) {
		t.Errorf("name containing the delimiter was not quoted:\n%s", buf.String())
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")

	if err := sampleSession().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Session Information\n") {
		t.Errorf("metadata block does not lead the file:\n%s", data)
	}
	if got := strings.Count(string(data), "\n"); got != 9 {
		t.Errorf("line count = %d, want 9", got)
	}
}

func TestSaveEmptySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	s := &Session{Name: "Empty", SavedAt: time.Now()}

	if err := s.Save(path); !errors.Is(err, ErrNoLaps) {
		t.Fatalf("Save with no laps = %v, want ErrNoLaps", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("a file was written for an empty session")
	}
}

func TestSaveWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := sampleSession().Save(path)
	if err == nil {
		t.Fatal("Save into a missing directory succeeded")
	}
	if errors.Is(err, ErrNoLaps) {
		t.Fatal("write failure must stay distinct from ErrNoLaps")
	}
}

func TestDefaultName(t *testing.T) {
	now := time.Date(2026, time.August, 23, 9, 5, 7, 0, time.UTC)
	if got, want := DefaultName(now), "Session_20260823_090507"; got != want {
		t.Errorf("DefaultName = %q, want %q", got, want)
	}
}
