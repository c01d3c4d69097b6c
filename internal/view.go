package internal

import (
	"fmt"
	"strings"

	"github.com/hinada1970-phd/simple-lap-time-recoder/internal/stopwatch"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	timeIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	timeRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	timeStoppedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	inputInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	lapHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)
)

// maxLapLines bounds the lap log to the newest entries; earlier laps
// collapse into a count marker but stay in the record.
const maxLapLines = 8

func (m *Model) statusText() string {
	if m.Watch.Running() {
		return "Running - Press Space to Stop"
	}
	if m.Watch.Elapsed() > 0 || m.Watch.LapCount() > 0 {
		return "Stopped - Press Space to Resume"
	}
	return "Press Space to Start"
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(80).Render("Simple Lap-Time Recorder"))
	sb.WriteString("\n\n")

	timeStyle := timeIdleStyle
	switch {
	case m.Watch.Running():
		timeStyle = timeRunningStyle
	case m.Watch.Elapsed() > 0:
		timeStyle = timeStoppedStyle
	}
	sb.WriteString(timeStyle.Width(80).Align(lipgloss.Center).
		Render(stopwatch.FormatDuration(m.Watch.Elapsed())))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Width(80).Align(lipgloss.Center).Render(m.statusText()))
	sb.WriteString("\n\n")

	sb.WriteString(m.lapLogView())
	sb.WriteString("\n")

	if m.Notice != "" {
		sb.WriteString(noticeStyle.Render(m.Notice))
		sb.WriteString("\n")
	}

	saveHint := helpStyle.Render("s: Save")
	if !m.CanExport() {
		saveHint = inactiveStyle.Render("s: Save")
	}
	sb.WriteString(helpStyle.Render("Space: Start/Stop | 0-9: Record Lap | Esc: Reset"))
	sb.WriteString("\n")
	sb.WriteString(saveHint)
	sb.WriteString(helpStyle.Render(" | q: Quit"))

	return sb.String()
}

func (m *Model) lapLogView() string {
	var sb strings.Builder

	sb.WriteString(lapHeaderStyle.Render("Lap Times Record"))
	sb.WriteString("\n")

	laps := m.Watch.Laps()
	if len(laps) == 0 {
		sb.WriteString(inactiveStyle.Render("No laps recorded yet."))
		sb.WriteString("\n")
	} else {
		start := 0
		if len(laps) > maxLapLines {
			start = len(laps) - maxLapLines
		}
		if start > 0 {
			sb.WriteString(inactiveStyle.Render(fmt.Sprintf("... %d earlier laps", start)))
			sb.WriteString("\n")
		}
		for _, lap := range laps[start:] {
			sb.WriteString(lap.String())
			sb.WriteString("\n")
		}
	}

	return boxStyle.Width(76).Render(sb.String())
}

func (m *Model) saveFormView() string {
	nameMarker := "  "
	if m.InputFocus == 0 {
		nameMarker = "→ "
	}
	nameLabel := fmt.Sprintf("%sSession Name: ", nameMarker)
	if m.InputFocus == 0 {
		nameLabel = inputStyle.Render(nameLabel)
	} else {
		nameLabel = inputInactiveStyle.Render(nameLabel)
	}

	fileMarker := "  "
	if m.InputFocus == 1 {
		fileMarker = "→ "
	}
	fileLabel := fmt.Sprintf("%sFile: ", fileMarker)
	if m.InputFocus == 1 {
		fileLabel = inputStyle.Render(fileLabel)
	} else {
		fileLabel = inputInactiveStyle.Render(fileLabel)
	}

	nameValue := m.NameInput
	if m.InputFocus == 0 {
		nameValue = inputStyle.Render(nameValue + "█")
	}

	fileValue := m.FileInput
	if m.InputFocus == 1 {
		fileValue = inputStyle.Render(fileValue + "█")
	}

	// The help line names the focused field to make tab behavior explicit.
	focusName := "Session Name"
	if m.InputFocus == 1 {
		focusName = "File"
	}
	helpText := fmt.Sprintf("Tab: Switch (Focused: %s) | Enter: Save | Esc: Cancel", focusName)

	form := fmt.Sprintf("%s\n\n%s%s\n\n%s%s\n\n%s",
		titleStyle.Render("Save Results"),
		nameLabel, nameValue,
		fileLabel, fileValue,
		helpStyle.Render(helpText),
	)

	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Width(68).Render(form),
	)
}

var (
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))
)
