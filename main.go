package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/hinada1970-phd/simple-lap-time-recoder/internal"
	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/logger"
)

const (
	appName    = "simple-lap-time-recoder"
	appVersion = "1.0.0"

	// tickInterval drives the display refresh. The stopwatch recomputes
	// elapsed time from the clock on every tick, so the interval sets
	// display granularity, not timing accuracy.
	tickInterval = 100 * time.Millisecond
)

func main() {
	dir := flag.String("dir", defaultExportDir(), "directory offered for exported session files")
	logPath := flag.String("log", "", "append a JSON log to this file")
	debug := flag.Bool("debug", false, "log at debug level")
	version := flag.Bool("v", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	}

	log, closeLog, err := logger.Open(*logPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Info().Str("version", appVersion).Str("export_dir", *dir).Msg("starting")

	m := internal.NewModel(*dir, log)

	p := tea.NewProgram(m, tea.WithAltScreen())

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				p.Send(internal.MsgTick{At: time.Now()})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// defaultExportDir is the desktop when a home directory is known, the
// working directory otherwise.
func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}
