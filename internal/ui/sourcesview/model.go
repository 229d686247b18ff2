// Package sourcesview manages the ingestion source list.
//
// The panel raises intents (add/toggle/delete) that the root model turns
// into API calls; after any mutation the root reloads the whole list rather
// than diffing it.
package sourcesview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murrasil/console/internal/api"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	enabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
)

// ToggleIntent is a pending enabled-flag change.
type ToggleIntent struct {
	ID          int
	Enabled     int
	PrevEnabled int
}

// AddIntent is a pending source creation.
type AddIntent struct {
	Name string
	URL  string
}

// Model is the sources panel.
type Model struct {
	sources []api.Source
	cursor  int
	mode    mode

	nameInput textinput.Model
	urlInput  textinput.Model
	focusURL  bool

	validation string
	quitting   bool

	addReq    *AddIntent
	toggleReq *ToggleIntent
	deleteReq *int

	width  int
	height int
}

// New creates the panel.
func New() Model {
	name := textinput.New()
	name.Placeholder = "Source name"
	name.CharLimit = 100
	name.Width = 40

	url := textinput.New()
	url.Placeholder = "https://example.com/feed.xml"
	url.CharLimit = 300
	url.Width = 40

	return Model{nameInput: name, urlInput: url}
}

// SetSources installs a freshly loaded list.
func (m *Model) SetSources(sources []api.Source) {
	m.sources = sources
	if m.cursor >= len(sources) {
		m.cursor = len(sources) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Sources returns the current list.
func (m Model) Sources() []api.Source { return m.sources }

// RevertToggle rolls a source's enabled flag back after a failed call.
func (m *Model) RevertToggle(id, prevEnabled int) {
	for i := range m.sources {
		if m.sources[i].ID == id {
			m.sources[i].Enabled = prevEnabled
			return
		}
	}
}

// AddRequested returns a pending add intent, or nil.
func (m Model) AddRequested() *AddIntent { return m.addReq }

// ToggleRequested returns a pending toggle intent, or nil.
func (m Model) ToggleRequested() *ToggleIntent { return m.toggleReq }

// DeleteRequested returns the id of a confirmed delete, or nil.
func (m Model) DeleteRequested() *int { return m.deleteReq }

// ResetIntents clears all pending intents.
func (m *Model) ResetIntents() {
	m.addReq = nil
	m.toggleReq = nil
	m.deleteReq = nil
}

// ClearInputs empties the add form after a successful create.
func (m *Model) ClearInputs() {
	m.nameInput.SetValue("")
	m.urlInput.SetValue("")
}

// IsQuitting reports whether the user closed the panel.
func (m Model) IsQuitting() bool { return m.quitting }

// ResetQuitting clears the quitting flag.
func (m *Model) ResetQuitting() { m.quitting = false }

// Validation returns the current validation prompt, if any.
func (m Model) Validation() string { return m.validation }

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
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
		if m.cursor < len(m.sources)-1 {
			m.cursor++
		}

	case " ", "enter":
		// Flip enabled locally, remember the old value for rollback
		if m.cursor < len(m.sources) {
			src := &m.sources[m.cursor]
			prev := src.Enabled
			if src.Enabled == 0 {
				src.Enabled = 1
			} else {
				src.Enabled = 0
			}
			m.toggleReq = &ToggleIntent{ID: src.ID, Enabled: src.Enabled, PrevEnabled: prev}
		}

	case "a":
		m.mode = modeAdd
		m.validation = ""
		m.focusURL = false
		m.nameInput.Focus()
		m.urlInput.Blur()
		return m, textinput.Blink

	case "d":
		if m.cursor < len(m.sources) {
			m.mode = modeConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			m.validation = ""
			m.nameInput.Blur()
			m.urlInput.Blur()
			return m, nil

		case "tab", "shift+tab":
			m.focusURL = !m.focusURL
			if m.focusURL {
				m.nameInput.Blur()
				m.urlInput.Focus()
			} else {
				m.urlInput.Blur()
				m.nameInput.Focus()
			}
			return m, textinput.Blink

		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			url := strings.TrimSpace(m.urlInput.Value())
			// Presence check only; no network call on a bad form
			if name == "" || url == "" {
				m.validation = "Both name and URL are required"
				return m, nil
			}
			m.validation = ""
			m.addReq = &AddIntent{Name: name, URL: url}
			m.mode = modeList
			m.nameInput.Blur()
			m.urlInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focusURL {
		m.urlInput, cmd = m.urlInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if m.cursor < len(m.sources) {
			id := m.sources[m.cursor].ID
			m.deleteReq = &id
		}
		m.mode = modeList

	case "n", "esc":
		m.mode = modeList
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ingestion Sources"))
	b.WriteString("\n\n")

	if len(m.sources) == 0 {
		b.WriteString(hintStyle.Render("No sources configured"))
		b.WriteString("\n")
	}

	for i, src := range m.sources {
		mark := disabledStyle.Render("○")
		if src.Enabled != 0 {
			mark = enabledStyle.Render("●")
		}
		line := fmt.Sprintf("%s %s  %s", mark, src.Name, urlStyle.Render(src.URL))
		if i == m.cursor && m.mode != modeAdd {
			line = selectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("Add source\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		b.WriteString(m.urlInput.View())
		b.WriteString("\n")
		if m.validation != "" {
			b.WriteString(warnStyle.Render(m.validation))
			b.WriteString("\n")
		}
		b.WriteString(hintStyle.Render("[tab] switch field  [enter] add  [esc] cancel"))

	case modeConfirmDelete:
		if m.cursor < len(m.sources) {
			b.WriteString(warnStyle.Render(fmt.Sprintf("Delete %q? [y/n]", m.sources[m.cursor].Name)))
		}

	default:
		if m.validation != "" {
			b.WriteString(warnStyle.Render(m.validation))
			b.WriteString("\n")
		}
		b.WriteString(hintStyle.Render("[space] toggle  [a] add  [d] delete  [esc] close"))
	}

	return b.String()
}
