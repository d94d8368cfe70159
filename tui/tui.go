// Package tui is the terminal presentation layer. It renders the session
// snapshot and forwards user intents as calls into the orchestrator; all
// state lives in the session, never here.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhpenta/toybox"
)

type inputMode int

const (
	modePrompt inputMode = iota
	modeAttach
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Messages posted by async operations.
type (
	generateDoneMsg   struct{ err error }
	brainstormDoneMsg struct{ err error }
	attachDoneMsg     struct {
		path string
		err  error
	}
	exportDoneMsg struct {
		path string
		err  error
	}
)

// Model is the bubbletea model wrapping a toybox session.
type Model struct {
	session  *toybox.Session
	exporter toybox.Exporter

	input    textinput.Model
	spin     spinner.Model
	mode     inputMode
	selected int
	notice   string
	width    int
}

// New creates the presentation model for a session.
func New(session *toybox.Session, exporter toybox.Exporter) Model {
	input := textinput.New()
	input.Placeholder = "Describe the room style, items, or specific details to add..."
	input.Prompt = "> "
	input.CharLimit = 0
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		session:  session,
		exporter: exporter,
		input:    input,
		spin:     spin,
		width:    80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case generateDoneMsg, brainstormDoneMsg:
		m.selected = 0
		return m, nil

	case attachDoneMsg:
		if msg.err != nil {
			m.notice = "Attach failed: " + msg.err.Error()
		} else {
			m.notice = "Attached " + msg.path
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.notice = "Export failed: " + msg.err.Error()
		} else {
			m.notice = "Saved " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode == modeAttach {
			m.mode = modePrompt
			m.input.Reset()
			m.input.Placeholder = "Describe the room style, items, or specific details to add..."
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		if m.busy() {
			return m, nil
		}
		if m.mode == modeAttach {
			path := strings.TrimSpace(m.input.Value())
			m.mode = modePrompt
			m.input.Reset()
			m.input.Placeholder = "Describe the room style, items, or specific details to add..."
			if path == "" {
				return m, nil
			}
			return m, m.attachCmd(path)
		}
		m.session.SetPrompt(m.input.Value())
		m.notice = ""
		return m, tea.Batch(m.generateCmd(), m.spin.Tick)

	case "ctrl+b":
		if m.busy() || m.mode == modeAttach {
			return m, nil
		}
		m.session.SetPrompt(m.input.Value())
		m.notice = ""
		return m, tea.Batch(m.brainstormCmd(), m.spin.Tick)

	case "ctrl+e":
		m.session.ToggleAutoEnhance()
		return m, nil

	case "ctrl+a":
		m.session.CycleAspectRatio()
		return m, nil

	case "ctrl+o":
		if m.busy() {
			return m, nil
		}
		m.mode = modeAttach
		m.input.Reset()
		m.input.Placeholder = "Path to a reference image (png, jpg, webp, gif)..."
		return m, nil

	case "ctrl+x":
		m.session.ClearInput()
		return m, nil

	case "ctrl+s":
		if m.busy() {
			return m, nil
		}
		return m, m.exportCmd()

	case "ctrl+n":
		if n := len(m.session.Snapshot().History); n > 0 && m.selected < n-1 {
			m.selected++
		}
		return m, nil

	case "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "ctrl+r":
		history := m.session.Snapshot().History
		if m.selected < len(history) {
			if err := m.session.RestoreFromHistory(history[m.selected].ID); err == nil {
				m.input.SetValue(m.session.Snapshot().UserPrompt)
				m.notice = "Restored from history"
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("TOYBOX"))
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("NFT ROOM GENERATOR"))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(statusLine(snap)))
	if m.busy() {
		b.WriteString(" ")
		b.WriteString(m.spin.View())
		b.WriteString(phaseLabel(snap))
	}
	b.WriteString("\n")

	if snap.ErrorMessage != "" {
		b.WriteString(errorStyle.Render("⚠ " + snap.ErrorMessage))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if snap.GeneratedImage != "" {
		b.WriteString(noticeStyle.Render(fmt.Sprintf("✔ image ready (%d bytes encoded) · ctrl+s to save", len(snap.GeneratedImage))))
		b.WriteString("\n")
	}

	if snap.BrainstormIdeas != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("BRAINSTORMING"))
		b.WriteString("\n")
		b.WriteString(boxStyle.Width(m.width - 4).Render(snap.BrainstormIdeas))
		b.WriteString("\n")
	}

	if len(snap.History) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("HISTORY"))
		b.WriteString("\n")
		b.WriteString(m.renderHistory(snap.History))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(helpLine(m.mode)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHistory(history []toybox.HistoryItem) string {
	var b strings.Builder
	for i, item := range history {
		line := fmt.Sprintf("%s  %s", item.Timestamp.Format("15:04:05"), truncate(item.Prompt, m.width-16))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) busy() bool {
	return m.session.Snapshot().Phase != toybox.PhaseIdle
}

func (m Model) generateCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return generateDoneMsg{err: session.Generate(context.Background())}
	}
}

func (m Model) brainstormCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return brainstormDoneMsg{err: session.Brainstorm(context.Background())}
	}
}

func (m Model) attachCmd(path string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		img, err := LoadImageFile(path)
		if err != nil {
			return attachDoneMsg{path: path, err: err}
		}
		if err := session.AttachImage(img.Data, img.MIMEType); err != nil {
			return attachDoneMsg{path: path, err: err}
		}
		return attachDoneMsg{path: path}
	}
}

func (m Model) exportCmd() tea.Cmd {
	session := m.session
	exporter := m.exporter
	return func() tea.Msg {
		path, err := session.Export(context.Background(), exporter)
		return exportDoneMsg{path: path, err: err}
	}
}

func statusLine(snap toybox.Snapshot) string {
	parts := []string{"ratio " + snap.AspectRatio.String()}
	if snap.AutoEnhance {
		parts = append(parts, "enhance on")
	} else {
		parts = append(parts, "enhance off")
	}
	if snap.HasInputImage {
		parts = append(parts, "image attached ("+snap.InputMIMEType+")")
	} else {
		parts = append(parts, "no image")
	}
	return strings.Join(parts, " · ")
}

func phaseLabel(snap toybox.Snapshot) string {
	if snap.Enhancing {
		return "enhancing prompt..."
	}
	switch snap.Phase {
	case toybox.PhaseGenerating:
		return "generating..."
	case toybox.PhaseBrainstorming:
		return "thinking..."
	default:
		return ""
	}
}

func helpLine(mode inputMode) string {
	if mode == modeAttach {
		return "enter attach · esc cancel"
	}
	return "enter generate · ctrl+b brainstorm · ctrl+e enhance · ctrl+a ratio · ctrl+o attach · ctrl+x clear · ctrl+s save · ctrl+p/n select · ctrl+r restore · ctrl+c quit"
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
