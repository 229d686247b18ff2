// Package settingsview is the scheduling settings panel.
//
// Two selectors: how often the backend polls sources, and how old a news
// item may be before ingestion drops it. The panel never talks to the
// network itself — it raises a save intent the root model acts on.
package settingsview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murrasil/console/internal/api"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type selector struct {
	label   string
	key     string
	unit    string
	options []string
	idx     int
}

func (s *selector) set(value string) {
	for i, opt := range s.options {
		if opt == value {
			s.idx = i
			return
		}
	}
	// Preserve a backend value that is not one of our presets
	s.options = append([]string{value}, s.options...)
	s.idx = 0
}

func (s *selector) value() string { return s.options[s.idx] }

func (s *selector) next() { s.idx = (s.idx + 1) % len(s.options) }

func (s *selector) prev() { s.idx = (s.idx - 1 + len(s.options)) % len(s.options) }

// Model is the settings panel.
type Model struct {
	selectors [2]selector
	cursor    int
	saving    bool
	quitting  bool
	saveReq   bool
	width     int
	height    int
}

// New creates the panel with default selections matching the backend
// defaults (15 minutes, 48 hours).
func New() Model {
	m := Model{
		selectors: [2]selector{
			{
				label:   "Fetch interval",
				key:     api.KeyFetchInterval,
				unit:    "min",
				options: []string{"5", "15", "30", "60", "120"},
			},
			{
				label:   "Max news age",
				key:     api.KeyMaxNewsAge,
				unit:    "h",
				options: []string{"12", "24", "48", "72", "168"},
			},
		},
	}
	m.selectors[0].set("15")
	m.selectors[1].set("48")
	return m
}

// Load applies fetched settings. A selector only changes when its key is
// present — an absent key leaves the current selection alone.
func (m *Model) Load(values map[string]string) {
	for i := range m.selectors {
		if v, ok := values[m.selectors[i].key]; ok && v != "" {
			m.selectors[i].set(v)
		}
	}
}

// Values returns the full settings map to save.
func (m Model) Values() map[string]string {
	out := make(map[string]string, len(m.selectors))
	for _, s := range m.selectors {
		out[s.key] = s.value()
	}
	return out
}

// SetSaving toggles the busy affordance on the save hint.
func (m *Model) SetSaving(saving bool) { m.saving = saving }

// Saving reports whether a save is in flight.
func (m Model) Saving() bool { return m.saving }

// SaveRequested reports a pending save intent.
func (m Model) SaveRequested() bool { return m.saveReq }

// ResetSaveRequested clears the save intent.
func (m *Model) ResetSaveRequested() { m.saveReq = false }

// IsQuitting reports whether the user closed the panel.
func (m Model) IsQuitting() bool { return m.quitting }

// ResetQuitting clears the quitting flag.
func (m *Model) ResetQuitting() { m.quitting = false }

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc":
		m.quitting = true

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.selectors)-1 {
			m.cursor++
		}

	case "right", "l":
		if !m.saving {
			m.selectors[m.cursor].next()
		}

	case "left", "h":
		if !m.saving {
			m.selectors[m.cursor].prev()
		}

	case "s", "enter":
		if !m.saving {
			m.saveReq = true
		}
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Scheduling Settings"))
	b.WriteString("\n\n")

	for i, s := range m.selectors {
		line := fmt.Sprintf("%s  ‹ %s %s ›", labelStyle.Render(s.label), valueStyle.Render(s.value()), s.unit)
		if i == m.cursor {
			line = selectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.saving {
		b.WriteString(hintStyle.Render("Saving…"))
	} else {
		b.WriteString(hintStyle.Render("[←→] change  [↑↓] select  [s] save  [esc] close"))
	}
	return b.String()
}
