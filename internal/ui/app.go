package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/murrasil/console/internal/api"
	"github.com/murrasil/console/internal/journal"
	"github.com/murrasil/console/internal/logging"
	"github.com/murrasil/console/internal/ui/article"
	"github.com/murrasil/console/internal/ui/queue"
	"github.com/murrasil/console/internal/ui/settingsview"
	"github.com/murrasil/console/internal/ui/sourcesview"
)

// toastDuration is how long a notification stays visible.
const toastDuration = 3 * time.Second

// View mode
type viewMode int

const (
	modeQueue viewMode = iota
	modeSettings
	modeSources
)

// undo is the snapshot kept for an optimistic removal so a failed backend
// call can put the card back where it was. Tab and seq pin the snapshot to
// the listing the removal happened in: once the user switches tabs or a new
// load cycle renders, the index no longer refers to that listing and the
// card must not be reinserted into whatever is showing now.
type undo struct {
	item  api.NewsItem
	index int
	tab   api.Status
	seq   int
}

// Model is the root Bubble Tea model.
type Model struct {
	client  *api.Client
	journal *journal.Journal // nil when the journal could not be opened

	queue    queue.Model
	modal    article.Model
	settings settingsview.Model
	sources  sourcesview.Model

	mode   viewMode
	counts api.Counts

	// loadSeq tags each outgoing queue load; a response carrying an older
	// tag lost the race to a newer request and is discarded.
	loadSeq int

	pendingUndo map[string]undo

	toastText string
	toastErr  bool
	toastGen  int

	lastFetch string
	fetching  bool

	width  int
	height int
}

// New creates the root model.
func New(client *api.Client, jour *journal.Journal, pageLimit int) Model {
	return Model{
		client:      client,
		journal:     jour,
		queue:       queue.New(pageLimit),
		modal:       article.New(),
		settings:    settingsview.New(),
		sources:     sourcesview.New(),
		pendingUndo: make(map[string]undo),
		lastFetch:   "last update: —",
	}
}

// Init loads counts, the first queue page, settings, and sources.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadQueueCmd(m.loadSeq, m.queue.Tab(), m.queue.Page(), m.queue.Limit()),
		m.loadCountsCmd(),
		m.loadSettingsCmd(),
		m.loadSourcesCmd(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 4 // header, tabs, toast, status
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.queue.SetSize(msg.Width, contentHeight)
		m.modal.SetSize(msg.Width, msg.Height)
		m.settings.SetSize(msg.Width, contentHeight)
		m.sources.SetSize(msg.Width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ToastExpiredMsg:
		if msg.Gen == m.toastGen {
			m.toastText = ""
		}
		return m, nil
	}

	return m.handleAPIMsg(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal intercepts everything while open.
	if m.modal.IsOpen() {
		switch msg.String() {
		case "esc", "q":
			m.modal.Close()
			// Escape also closes the settings panel when it is open
			if msg.String() == "esc" && m.mode == modeSettings {
				m.mode = modeQueue
			}
			return m, nil
		case "c":
			if err := m.modal.Copy(); err != nil {
				logging.Error("clipboard copy failed", "error", err)
				return m, m.notify("Copy failed", true)
			}
			return m, m.notify("Copied to clipboard", false)
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case modeSettings:
		return m.updateSettings(msg)
	case modeSources:
		return m.updateSources(msg)
	}

	return m.handleQueueKey(msg)
}

func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.queue.MoveUp()

	case "down", "j":
		m.queue.MoveDown()

	case "1":
		return m.switchTab(api.StatusNew)
	case "2":
		return m.switchTab(api.StatusApproved)
	case "3":
		return m.switchTab(api.StatusRejected)
	case "tab":
		return m.switchTab(nextTab(m.queue.Tab()))

	case "right", "l":
		if m.queue.NextPage() {
			return m, m.reloadQueue()
		}

	case "left", "h":
		if m.queue.PrevPage() {
			return m, m.reloadQueue()
		}

	case "a":
		return m.approveSelected()

	case "x":
		return m.rejectSelected()

	case "u":
		return m.restoreSelected()

	case "enter":
		return m.viewSelected()

	case "f":
		if !m.fetching {
			m.fetching = true
			return m, m.triggerFetchCmd()
		}

	case "r":
		return m, tea.Batch(m.reloadQueue(), m.loadCountsCmd())

	case "c":
		m.mode = modeSettings
		return m, m.loadSettingsCmd()

	case "S":
		m.mode = modeSources
		return m, m.loadSourcesCmd()
	}

	return m, nil
}

// switchTab changes tabs; switching to the active tab is a no-op.
func (m Model) switchTab(tab api.Status) (tea.Model, tea.Cmd) {
	if !m.queue.SetTab(tab) {
		return m, nil
	}
	return m, m.reloadQueue()
}

func nextTab(tab api.Status) api.Status {
	switch tab {
	case api.StatusNew:
		return api.StatusApproved
	case api.StatusApproved:
		return api.StatusRejected
	default:
		return api.StatusNew
	}
}

// reloadQueue starts a fresh load cycle for the current tab and page.
func (m *Model) reloadQueue() tea.Cmd {
	m.queue.SetLoading()
	m.loadSeq++
	return m.loadQueueCmd(m.loadSeq, m.queue.Tab(), m.queue.Page(), m.queue.Limit())
}

func (m Model) approveSelected() (tea.Model, tea.Cmd) {
	item := m.queue.SelectedItem()
	if item == nil || m.queue.Tab() != api.StatusNew || m.queue.Busy(item.ID) {
		return m, nil
	}
	m.queue.SetBusy(item.ID, true)
	return m, m.approveCmd(item.ID, item.TitleAr)
}

func (m Model) rejectSelected() (tea.Model, tea.Cmd) {
	item := m.queue.SelectedItem()
	if item == nil || m.queue.Tab() != api.StatusNew || m.queue.Busy(item.ID) {
		return m, nil
	}
	// Optimistic: hide now, keep a snapshot to revert on failure
	removed, index, ok := m.queue.Remove(item.ID)
	if !ok {
		return m, nil
	}
	m.pendingUndo[removed.ID] = undo{item: removed, index: index, tab: m.queue.Tab(), seq: m.loadSeq}
	return m, m.rejectCmd(removed.ID)
}

func (m Model) restoreSelected() (tea.Model, tea.Cmd) {
	item := m.queue.SelectedItem()
	if item == nil || m.queue.Tab() != api.StatusRejected || m.queue.Busy(item.ID) {
		return m, nil
	}
	removed, index, ok := m.queue.Remove(item.ID)
	if !ok {
		return m, nil
	}
	m.pendingUndo[removed.ID] = undo{item: removed, index: index, tab: m.queue.Tab(), seq: m.loadSeq}
	return m, m.restoreCmd(removed.ID)
}

func (m Model) viewSelected() (tea.Model, tea.Cmd) {
	item := m.queue.SelectedItem()
	if item == nil || m.queue.Tab() != api.StatusApproved {
		return m, nil
	}
	return m, m.loadItemCmd(item.ID)
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)

	if m.settings.IsQuitting() {
		m.settings.ResetQuitting()
		m.mode = modeQueue
		return m, cmd
	}

	if m.settings.SaveRequested() {
		m.settings.ResetSaveRequested()
		m.settings.SetSaving(true)
		return m, tea.Batch(cmd, m.saveSettingsCmd(m.settings.Values()))
	}

	return m, cmd
}

func (m Model) updateSources(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.sources, cmd = m.sources.Update(msg)

	if m.sources.IsQuitting() {
		m.sources.ResetQuitting()
		m.mode = modeQueue
		return m, cmd
	}

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	if add := m.sources.AddRequested(); add != nil {
		cmds = append(cmds, m.addSourceCmd(add.Name, add.URL))
	}
	if tog := m.sources.ToggleRequested(); tog != nil {
		cmds = append(cmds, m.toggleSourceCmd(tog.ID, tog.Enabled, tog.PrevEnabled))
	}
	if del := m.sources.DeleteRequested(); del != nil {
		cmds = append(cmds, m.deleteSourceCmd(*del))
	}
	m.sources.ResetIntents()

	return m, tea.Batch(cmds...)
}

// handleAPIMsg applies the results of finished backend calls.
func (m Model) handleAPIMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case QueueLoadedMsg:
		// Only the most recently requested listing may render
		if msg.Seq != m.loadSeq {
			logging.Debug("discarding stale queue response", "seq", msg.Seq, "want", m.loadSeq)
			return m, nil
		}
		if msg.Resp == nil {
			m.queue.SetFailed()
			return m, nil
		}
		m.queue.SetItems(msg.Resp.Data, msg.Resp.Total)
		return m, nil

	case CountsMsg:
		if msg.Counts != nil {
			m.counts = *msg.Counts
		}
		return m, nil

	case ApproveDoneMsg:
		if msg.Resp == nil || msg.Resp.Status != api.StatusSuccess {
			m.queue.SetBusy(msg.ID, false)
			return m, m.notify("Article generation failed", true)
		}
		m.queue.Remove(msg.ID)
		m.modal.Open(msg.Title, msg.Resp.ArticleAr)
		return m, tea.Batch(
			m.notify("Article generated", false),
			m.loadCountsCmd(),
			m.recordCmd(msg.ID, msg.Title, journal.ActionApprove),
		)

	case RejectDoneMsg:
		return m.finishOptimistic(msg.ID, msg.Resp, journal.ActionReject, "Reject failed — item restored to the queue")

	case RestoreDoneMsg:
		return m.finishOptimistic(msg.ID, msg.Resp, journal.ActionRestore, "Restore failed — item kept in rejected")

	case ItemLoadedMsg:
		if msg.Item == nil {
			return m, m.notify("Could not load the article", true)
		}
		m.modal.Open(msg.Item.TitleAr, msg.Item.ArticleAr)
		return m, nil

	case FetchDoneMsg:
		m.fetching = false
		if msg.Resp == nil || msg.Resp.Status != api.StatusSuccess {
			return m, m.notify("Connection error — manual fetch failed", true)
		}
		m.lastFetch = "last update: moments ago"
		cmds := []tea.Cmd{
			m.notify(fmt.Sprintf("Fetch complete. %d new items added", msg.Resp.Fetched), false),
			m.loadCountsCmd(),
		}
		// Only the new tab shows freshly fetched items
		if m.queue.Tab() == api.StatusNew {
			cmds = append(cmds, m.reloadQueue())
		}
		return m, tea.Batch(cmds...)

	case SettingsLoadedMsg:
		if msg.Values != nil {
			m.settings.Load(msg.Values)
		}
		return m, nil

	case SettingsSavedMsg:
		m.settings.SetSaving(false)
		if msg.Resp.OK() {
			m.mode = modeQueue
			return m, m.notify("Settings saved", false)
		}
		return m, m.notify("Could not save settings", true)

	case SourcesLoadedMsg:
		if msg.Sources != nil {
			m.sources.SetSources(msg.Sources)
		}
		return m, nil

	case SourceAddedMsg:
		if msg.Resp.OK() {
			m.sources.ClearInputs()
			return m, tea.Batch(m.notify("Source added", false), m.loadSourcesCmd())
		}
		return m, m.notify("Could not add source", true)

	case SourceToggledMsg:
		if !msg.Resp.OK() {
			m.sources.RevertToggle(msg.ID, msg.PrevEnabled)
			return m, m.notify("Could not update source", true)
		}
		return m, nil

	case SourceDeletedMsg:
		if msg.Resp.OK() {
			return m, m.loadSourcesCmd()
		}
		return m, m.notify("Could not delete source", true)
	}

	return m, nil
}

// finishOptimistic resolves a reject/restore whose card was already hidden.
func (m Model) finishOptimistic(id string, resp *api.StatusResponse, action journal.Action, failMsg string) (tea.Model, tea.Cmd) {
	u, ok := m.pendingUndo[id]
	delete(m.pendingUndo, id)

	if !resp.OK() {
		// Reinsert only while the listing the card was removed from is
		// still the one on screen; a stale snapshot would put an item
		// into a tab its status does not belong to.
		if ok && m.queue.Tab() == u.tab && m.loadSeq == u.seq {
			m.queue.InsertAt(u.index, u.item)
		}
		return m, m.notify(failMsg, true)
	}
	return m, tea.Batch(
		m.loadCountsCmd(),
		m.recordCmd(id, u.item.TitleAr, action),
	)
}

// notify shows a transient notification; the previous one is overwritten
// and its dismissal timer voided (last call wins).
func (m *Model) notify(text string, isErr bool) tea.Cmd {
	m.toastText = text
	m.toastErr = isErr
	m.toastGen++
	gen := m.toastGen
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Gen: gen}
	})
}

// View renders the UI.
func (m Model) View() string {
	if m.modal.IsOpen() {
		return m.modal.View()
	}

	var sections []string

	header := Header.Width(m.width).Render("MURRASIL · moderation console") // قاعة التحرير
	sections = append(sections, header)
	sections = append(sections, m.renderTabs())

	switch m.mode {
	case modeSettings:
		sections = append(sections, m.settings.View())
	case modeSources:
		sections = append(sections, m.sources.View())
	default:
		sections = append(sections, m.queue.View())
	}

	sections = append(sections, m.renderToast())
	sections = append(sections, StatusBar.Width(m.width).Render(m.renderStatusBar()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	type tabDef struct {
		status api.Status
		label  string
		count  int
	}
	tabs := []tabDef{
		{api.StatusNew, "New", m.counts.New},
		{api.StatusApproved, "Approved", m.counts.Approved},
		{api.StatusRejected, "Rejected", m.counts.Rejected},
	}

	var parts []string
	for _, t := range tabs {
		label := fmt.Sprintf("%s %s", t.label, TabBadge.Render(fmt.Sprintf("%d", t.count)))
		if t.status == m.queue.Tab() && m.mode == modeQueue {
			parts = append(parts, ActiveTab.Render(label))
		} else {
			parts = append(parts, InactiveTab.Render(label))
		}
	}
	parts = append(parts, LastFetch.Render(m.lastFetch))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderToast() string {
	if m.toastText == "" {
		return ""
	}
	if m.toastErr {
		return ToastError.Render("✗ " + m.toastText)
	}
	return ToastSuccess.Render("✓ " + m.toastText)
}

func (m Model) renderStatusBar() string {
	if m.fetching {
		return "  fetching…"
	}
	switch m.mode {
	case modeSettings:
		return "  settings"
	case modeSources:
		return "  sources"
	}

	pageInfo := fmt.Sprintf("page %d", m.queue.Page())
	nav := ""
	if !m.queue.OnFirstPage() {
		nav += "  [←] prev"
	}
	if m.queue.HasMore() {
		nav += "  [→] next"
	}
	return fmt.Sprintf("  %s%s  ·  [1/2/3] tabs  [f] fetch now  [c] settings  [S] sources  [q] quit", pageInfo, nav)
}

// Commands

func (m Model) loadQueueCmd(seq int, tab api.Status, page, limit int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp := client.ListNews(context.Background(), tab, page, limit)
		return QueueLoadedMsg{Seq: seq, Tab: tab, Resp: resp}
	}
}

func (m Model) loadCountsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return CountsMsg{Counts: client.Counts(context.Background())}
	}
}

func (m Model) approveCmd(id, title string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return ApproveDoneMsg{ID: id, Title: title, Resp: client.Approve(context.Background(), id)}
	}
}

func (m Model) rejectCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return RejectDoneMsg{ID: id, Resp: client.Reject(context.Background(), id)}
	}
}

func (m Model) restoreCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return RestoreDoneMsg{ID: id, Resp: client.Restore(context.Background(), id)}
	}
}

func (m Model) loadItemCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return ItemLoadedMsg{ID: id, Item: client.GetNews(context.Background(), id)}
	}
}

func (m Model) triggerFetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return FetchDoneMsg{Resp: client.TriggerFetch(context.Background())}
	}
}

func (m Model) loadSettingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SettingsLoadedMsg{Values: client.Settings(context.Background())}
	}
}

func (m Model) saveSettingsCmd(values map[string]string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SettingsSavedMsg{Resp: client.SaveSettings(context.Background(), values)}
	}
}

func (m Model) loadSourcesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SourcesLoadedMsg{Sources: client.Sources(context.Background())}
	}
}

func (m Model) addSourceCmd(name, url string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SourceAddedMsg{Resp: client.AddSource(context.Background(), name, url)}
	}
}

func (m Model) toggleSourceCmd(id, enabled, prevEnabled int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SourceToggledMsg{
			ID:          id,
			PrevEnabled: prevEnabled,
			Resp:        client.ToggleSource(context.Background(), id, enabled),
		}
	}
}

func (m Model) deleteSourceCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return SourceDeletedMsg{ID: id, Resp: client.DeleteSource(context.Background(), id)}
	}
}

// recordCmd appends a decision to the local journal. Journal failures are
// logged and swallowed; the journal never blocks moderation.
func (m Model) recordCmd(itemID, title string, action journal.Action) tea.Cmd {
	jour := m.journal
	if jour == nil {
		return nil
	}
	return func() tea.Msg {
		if err := jour.Record(context.Background(), itemID, title, action); err != nil {
			logging.Error("journal record failed", "item", itemID, "action", action, "error", err)
		}
		return nil
	}
}
