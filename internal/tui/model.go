package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nao1215/pwstrength/internal/generator"
	"github.com/nao1215/pwstrength/internal/model"
	"github.com/nao1215/pwstrength/internal/session"
	"github.com/nao1215/pwstrength/internal/strength"
)

// ExportFunc writes a history export somewhere and returns a description
// of the destination, typically a file path.
type ExportFunc func(export *model.HistoryExport) (string, error)

// Config configures the session model.
type Config struct {
	// Length is the generated password length.
	Length int

	// MaskRune is echoed in place of each candidate character.
	MaskRune rune

	// Export handles ctrl+s. When nil, export is unavailable.
	Export ExportFunc

	// Logger receives debug events. Defaults to slog.Default().
	Logger *slog.Logger
}

// generatedMsg carries a finished background generation.
type generatedMsg generator.Outcome

// exportedMsg carries the result of an export.
type exportedMsg struct {
	dest string
	err  error
}

// Model is the bubbletea model for the interactive session.
type Model struct {
	input   textinput.Model
	spinner spinner.Model

	history *session.History
	worker  *generator.Worker
	config  Config
	logger  *slog.Logger

	// result is the score of the current input, recomputed on every change.
	result model.ScoreResult

	revealed   bool
	generating bool

	status    string
	statusErr bool
	quitting  bool
}

// New creates the session model.
func New(history *session.History, worker *generator.Worker, cfg Config) Model {
	if cfg.MaskRune == 0 {
		cfg.MaskRune = session.DefaultMaskRune
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Prompt = "Password: "
	ti.Placeholder = "type a password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = cfg.MaskRune
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		input:   ti,
		spinner: sp,
		history: history,
		worker:  worker,
		config:  cfg,
		logger:  logger,
		result:  strength.Score(""),
	}
}

// Init initializes the bubbletea model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events for the bubbletea model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case generatedMsg:
		return m.handleGenerated(msg), nil

	case exportedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.setStatus("Exported history to " + msg.dest)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.commit()
		return m, nil

	case "ctrl+r":
		m.revealed = !m.revealed
		if m.revealed {
			m.input.EchoMode = textinput.EchoNormal
		} else {
			m.input.EchoMode = textinput.EchoPassword
		}
		return m, nil

	case "ctrl+g":
		return m.startGeneration()

	case "ctrl+s":
		return m, m.export()

	case "ctrl+x":
		m.history.Clear()
		m.setStatus("History cleared")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rescore()
	}
	return m, cmd
}

// rescore recomputes the result for the current input.
func (m *Model) rescore() {
	m.result = strength.Score(m.input.Value())
}

// commit appends the current input to the history. A blank input shows
// the invalid sentinel and is not committed.
func (m *Model) commit() {
	entry, err := m.history.Commit(m.input.Value())
	if errors.Is(err, session.ErrEmptyCandidate) {
		m.result = strength.Invalid()
		m.setError("Nothing to commit")
		return
	}
	if err != nil {
		m.setError(fmt.Sprintf("Commit failed: %v", err))
		return
	}

	m.input.SetValue("")
	m.rescore()
	m.setStatus(fmt.Sprintf("Committed #%d (%s)", entry.Sequence, entry.Verdict))
}

// startGeneration submits a generation unless one is already running.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	ch, err := m.worker.Submit(m.config.Length)
	if errors.Is(err, generator.ErrBusy) {
		return m, nil
	}
	if err != nil {
		m.setError(fmt.Sprintf("Generation failed: %v", err))
		return m, nil
	}

	m.generating = true
	m.setStatus("Generating...")
	return m, tea.Batch(m.spinner.Tick, waitForOutcome(ch))
}

// waitForOutcome blocks on the worker channel from a command goroutine.
func waitForOutcome(ch <-chan generator.Outcome) tea.Cmd {
	return func() tea.Msg {
		return generatedMsg(<-ch)
	}
}

func (m Model) handleGenerated(msg generatedMsg) Model {
	m.generating = false
	if msg.Err != nil {
		m.setError(fmt.Sprintf("Generation failed: %v", msg.Err))
		return m
	}

	m.input.SetValue(msg.Generation.Password)
	m.input.CursorEnd()
	m.rescore()

	m.logger.Debug("generated password",
		"length", msg.Generation.Length,
		"phase", msg.Generation.Phase.String(),
		"attempts", msg.Generation.Attempts,
	)
	m.setStatus(fmt.Sprintf("Generated %d-character password (%s)", msg.Generation.Length, msg.Generation.Phase))
	return m
}

// export returns a command that exports the history, or nil when export
// is unavailable.
func (m *Model) export() tea.Cmd {
	if m.config.Export == nil {
		m.setError("Export is not configured")
		return nil
	}
	history, exportFn := m.history, m.config.Export
	return func() tea.Msg {
		exp, err := history.Export()
		if err != nil {
			return exportedMsg{err: err}
		}
		dest, err := exportFn(exp)
		return exportedMsg{dest: dest, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

// Result returns the score of the current input.
func (m Model) Result() model.ScoreResult {
	return m.result
}

// Generating reports whether a background generation is running.
func (m Model) Generating() bool {
	return m.generating
}

// Revealed reports whether the candidate is shown in clear text.
func (m Model) Revealed() bool {
	return m.revealed
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// View renders the session.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Password Strength"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	if m.generating {
		sb.WriteString(" ")
		sb.WriteString(m.spinner.View())
	}
	sb.WriteString("\n\n")

	sb.WriteString(renderBar(m.result.Score))
	sb.WriteString(" ")
	sb.WriteString(labelStyle.Foreground(BarColor(m.result.Score)).Render(m.result.Label()))
	sb.WriteString("\n")
	for _, s := range m.result.NumberedSuggestions() {
		sb.WriteString(suggestionStyle.Render("  " + s))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderHistory())
	sb.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		sb.WriteString(style.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(helpStyle.Render("enter commit • ctrl+r show/hide • ctrl+g generate • ctrl+s export • ctrl+x clear • esc quit"))
	sb.WriteString("\n")
	return sb.String()
}

// renderBar draws score as a filled bar colored by BarColor.
func renderBar(score int) string {
	filled := model.ClampScore(score) * barWidth / model.MaxScore
	bar := lipgloss.NewStyle().Foreground(BarColor(score)).Render(strings.Repeat("█", filled))
	return bar + emptyBarStyle.Render(strings.Repeat("░", barWidth-filled))
}

// renderHistory draws the read-only projection of the session history.
func (m Model) renderHistory() string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return helpStyle.Render("History is empty.") + "\n"
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(e.Sequence),
			e.Masked,
			strconv.Itoa(e.Score),
			e.Verdict.String(),
			e.Timestamp.Format("15:04:05"),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Password", "Score", "Verdict", "Time").
		Rows(rows...)
	return t.String() + "\n"
}
