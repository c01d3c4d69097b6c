package internal

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/session"
	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/stopwatch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// MsgTick is the periodic display-refresh event. At carries the instant
// the tick fired; the stopwatch never reads the clock itself.
type MsgTick struct {
	At time.Time
}

// MsgExportDone reports the outcome of a background session export.
type MsgExportDone struct {
	Path string
	Laps int
	Err  error
}

type Model struct {
	Watch *stopwatch.Stopwatch

	// Save form state (shown after pressing "s")
	ShowSaveForm bool
	NameInput    string
	FileInput    string
	InputFocus   int

	// Notice is the one-line status message under the lap log:
	// export results, errors, empty-save hints.
	Notice string

	exportDir string
	log       zerolog.Logger
}

func NewModel(exportDir string, log zerolog.Logger) *Model {
	return &Model{
		Watch:     stopwatch.New(),
		exportDir: exportDir,
		log:       log,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		m.Watch.Tick(msg.At)
		return m, nil
	case MsgExportDone:
		if msg.Err != nil {
			m.Notice = fmt.Sprintf("Save error: %v", msg.Err)
			m.log.Error().Err(msg.Err).Str("path", msg.Path).Msg("session export failed")
		} else {
			m.Notice = fmt.Sprintf("Results saved to %s", msg.Path)
			m.log.Info().Str("path", msg.Path).Int("laps", msg.Laps).Msg("session exported")
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.ShowSaveForm {
		return m.saveFormView()
	}
	return m.mainView()
}

// CanExport reports whether a save may be offered: at least one lap has
// been recorded.
func (m *Model) CanExport() bool {
	return m.Watch.LapCount() > 0
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowSaveForm {
		return m.handleSaveFormInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case " ":
		m.Watch.Toggle(time.Now())
		m.log.Debug().Bool("running", m.Watch.Running()).
			Dur("elapsed", m.Watch.Elapsed()).Msg("timer toggled")
	case "esc":
		m.Watch.Reset()
		m.Notice = ""
		m.log.Debug().Msg("timer reset")
	case "s":
		if !m.CanExport() {
			m.Notice = "No lap times to save."
			m.log.Debug().Msg("save requested with no laps")
			break
		}
		m.ShowSaveForm = true
		m.NameInput = session.DefaultName(time.Now())
		m.FileInput = ""
		m.InputFocus = 0
		m.Notice = ""
	default:
		runes := []rune(msg.String())
		if len(runes) == 1 && runes[0] >= '0' && runes[0] <= '9' {
			label := int(runes[0] - '0')
			lap, ok := m.Watch.Lap(label, time.Now())
			if !ok {
				// Laps are recorded only while the timer runs.
				m.log.Debug().Int("label", label).Msg("lap ignored while stopped")
				break
			}
			m.log.Debug().Int("label", lap.Label).Dur("lap", lap.Duration).
				Dur("total", lap.Cumulative).Msg("lap recorded")
		}
	}
	return m, nil
}

func (m *Model) handleSaveFormInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.ShowSaveForm = false
	case "enter":
		if m.InputFocus == 0 {
			m.InputFocus = 1
			if m.FileInput == "" {
				m.FileInput = m.defaultFilePath()
			}
		} else {
			return m.submitSaveForm()
		}
	case "backspace":
		if m.InputFocus == 0 {
			if len(m.NameInput) > 0 {
				m.NameInput = m.NameInput[:len(m.NameInput)-1]
			}
		} else {
			if len(m.FileInput) > 0 {
				m.FileInput = m.FileInput[:len(m.FileInput)-1]
			}
		}
	case "tab":
		m.InputFocus = 1 - m.InputFocus
	default:
		runes := []rune(msg.String())
		if len(runes) == 1 {
			if m.InputFocus == 0 {
				m.NameInput += string(runes[0])
			} else {
				m.FileInput += string(runes[0])
			}
		}
	}
	return m, nil
}

func (m *Model) defaultFilePath() string {
	name := strings.TrimSpace(m.NameInput)
	if name == "" {
		name = session.DefaultName(time.Now())
	}
	return filepath.Join(m.exportDir, name+".csv")
}

func (m *Model) submitSaveForm() (tea.Model, tea.Cmd) {
	m.ShowSaveForm = false

	name := strings.TrimSpace(m.NameInput)
	if name == "" {
		// An empty name cancels the save.
		m.log.Debug().Msg("save cancelled, empty session name")
		return m, nil
	}
	path := strings.TrimSpace(m.FileInput)
	if path == "" {
		path = filepath.Join(m.exportDir, name+".csv")
	}

	sess := session.New(name, m.Watch.Elapsed(), m.Watch.Laps())
	m.log.Debug().Str("name", name).Str("path", path).
		Int("laps", len(sess.Laps)).Msg("export dispatched")
	return m, exportCmd(sess, path)
}

// exportCmd runs the file write outside the update loop. The session
// holds copied lap data, detached from the live stopwatch.
func exportCmd(sess *session.Session, path string) tea.Cmd {
	return func() tea.Msg {
		return MsgExportDone{Path: path, Laps: len(sess.Laps), Err: sess.Save(path)}
	}
}
