// Package queue renders the tab-scoped, paginated moderation queue.
//
// The model owns the queue store state: current tab, page, page size, and
// the items of the page being shown. It does not perform network calls —
// the root model issues loads and feeds results back in.
package queue

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/murrasil/console/internal/api"
)

// loadState tracks what the content area should show.
type loadState int

const (
	stateLoading loadState = iota
	stateFailed
	stateReady
)

// Model is the queue view.
type Model struct {
	tab    api.Status
	page   int
	limit  int
	total  int
	cursor int
	offset int
	items  []api.NewsItem
	busy   map[string]bool
	state  loadState

	width  int
	height int
}

// New creates a queue model on the "new" tab, page 1.
func New(limit int) Model {
	if limit <= 0 {
		limit = 20
	}
	return Model{
		tab:   api.StatusNew,
		page:  1,
		limit: limit,
		busy:  make(map[string]bool),
		state: stateLoading,
	}
}

// Tab returns the active tab.
func (m Model) Tab() api.Status { return m.tab }

// Page returns the current page (1-based).
func (m Model) Page() int { return m.page }

// Limit returns the page size.
func (m Model) Limit() int { return m.limit }

// Total returns the item total the backend reported for this tab.
func (m Model) Total() int { return m.total }

// Items returns the items of the current page.
func (m Model) Items() []api.NewsItem { return m.items }

// SetTab switches tabs and resets to page 1. Returns false when the target
// equals the active tab — switching to the same tab is a no-op and no
// reload should be issued.
func (m *Model) SetTab(tab api.Status) bool {
	if tab == m.tab {
		return false
	}
	m.tab = tab
	m.page = 1
	return true
}

// OnFirstPage reports whether the previous-page affordance is disabled.
func (m Model) OnFirstPage() bool { return m.page == 1 }

// HasMore reports whether a next page exists.
func (m Model) HasMore() bool { return m.page*m.limit < m.total }

// NextPage advances a page if one exists.
func (m *Model) NextPage() bool {
	if !m.HasMore() {
		return false
	}
	m.page++
	return true
}

// PrevPage goes back a page if not on the first.
func (m *Model) PrevPage() bool {
	if m.OnFirstPage() {
		return false
	}
	m.page--
	return true
}

// SetLoading switches the content area to the loading placeholder.
func (m *Model) SetLoading() { m.state = stateLoading }

// SetFailed switches the content area to the error placeholder. Pagination
// state is left untouched.
func (m *Model) SetFailed() { m.state = stateFailed }

// SetItems installs a freshly loaded page.
func (m *Model) SetItems(items []api.NewsItem, total int) {
	m.items = items
	m.total = total
	m.state = stateReady
	m.busy = make(map[string]bool)
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset = 0
}

// SelectedItem returns the item under the cursor, or nil.
func (m Model) SelectedItem() *api.NewsItem {
	if m.state != stateReady || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// MoveUp moves the cursor up one card.
func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor down one card.
func (m *Model) MoveDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Remove takes an item out of the page by id, returning the removed item
// and its index so a failed mutation can put it back.
func (m *Model) Remove(id string) (api.NewsItem, int, bool) {
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			m.items = append(m.items[:i], m.items[i+1:]...)
			if m.total > 0 {
				m.total--
			}
			if m.cursor >= len(m.items) && m.cursor > 0 {
				m.cursor--
			}
			delete(m.busy, id)
			return item, i, true
		}
	}
	return api.NewsItem{}, 0, false
}

// InsertAt reinserts an item at its original index (rollback of Remove).
func (m *Model) InsertAt(index int, item api.NewsItem) {
	if index < 0 {
		index = 0
	}
	if index > len(m.items) {
		index = len(m.items)
	}
	m.items = append(m.items[:index], append([]api.NewsItem{item}, m.items[index:]...)...)
	m.total++
}

// SetBusy marks an item as having an in-flight mutation.
func (m *Model) SetBusy(id string, busy bool) {
	if busy {
		m.busy[id] = true
	} else {
		delete(m.busy, id)
	}
}

// Busy reports whether an item has an in-flight mutation.
func (m Model) Busy(id string) bool { return m.busy[id] }

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the content area.
func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return placeholderStyle.Render("Loading…")
	case stateFailed:
		return errorPlaceholderStyle.Render("Failed to load the queue — check the backend and try again")
	}

	if len(m.items) == 0 {
		return placeholderStyle.Render("Nothing to show here")
	}

	// Cards vary in height, so scroll by whole cards: render from an offset
	// chosen to keep the cursor visible within the available height.
	m.ensureVisible()

	var b strings.Builder
	used := 0
	for i := m.offset; i < len(m.items); i++ {
		card := m.renderCard(m.items[i], i == m.cursor)
		h := lipgloss.Height(card)
		if m.height > 0 && used+h > m.height && i > m.offset {
			break
		}
		b.WriteString(card)
		b.WriteString("\n")
		used += h + 1
	}
	return b.String()
}

func (m *Model) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	if m.height <= 0 {
		return
	}
	// Walk back from the cursor until the window is full
	used := 0
	for i := m.cursor; i >= 0; i-- {
		used += lipgloss.Height(m.renderCard(m.items[i], false)) + 1
		if used > m.height {
			m.offset = i + 1
			return
		}
		if i <= m.offset {
			return
		}
	}
	m.offset = 0
}
