// Package article provides the modal viewer for a full generated article.
package article

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// emptyBody is shown when an approved item has no article text, which
// happens when generation failed but the backend still approved the item.
const emptyBody = "No article content"

// Styles
var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the modal article viewer.
type Model struct {
	title  string
	body   string
	view   viewport.Model
	open   bool
	width  int
	height int
}

// New creates a closed viewer.
func New() Model {
	return Model{view: viewport.New(0, 0)}
}

// Open shows the modal with the given title and body.
func (m *Model) Open(title, body string) {
	if strings.TrimSpace(body) == "" {
		body = emptyBody
	}
	m.title = title
	m.body = body
	m.open = true
	m.resize()
	m.view.SetContent(m.body)
	m.view.GotoTop()
}

// Close hides the modal.
func (m *Model) Close() { m.open = false }

// IsOpen reports whether the modal is visible.
func (m Model) IsOpen() bool { return m.open }

// CopyText returns the clipboard payload: title, blank line, body.
func (m Model) CopyText() string { return m.title + "\n\n" + m.body }

// Copy writes the article to the system clipboard.
func (m Model) Copy() error { return clipboard.WriteAll(m.CopyText()) }

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
	if m.open {
		m.view.SetContent(m.body)
	}
}

func (m *Model) resize() {
	w := m.width - 8
	h := m.height - 8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.view.Width = w
	m.view.Height = h
}

// Update forwards scroll keys to the viewport while open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View renders the modal.
func (m Model) View() string {
	if !m.open {
		return ""
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		m.view.View(),
		"",
		footerStyle.Render("[c] copy  [esc] close  [↑↓] scroll"),
	)
	frame := frameStyle.Render(content)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}
