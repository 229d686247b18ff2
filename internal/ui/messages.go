// Package ui provides the Bubble Tea TUI for the Murrasil moderation console.
package ui

import "github.com/murrasil/console/internal/api"

// QueueLoadedMsg is sent when a queue page has been fetched.
// Seq identifies the load cycle that issued the request; responses whose Seq
// no longer matches the latest issued load are stale and must be discarded.
type QueueLoadedMsg struct {
	Seq  int
	Tab  api.Status
	Resp *api.ListResponse // nil on failure
}

// CountsMsg is sent when the per-tab totals have been fetched.
type CountsMsg struct {
	Counts *api.Counts // nil on failure
}

// ApproveDoneMsg is sent when an approve call finishes.
type ApproveDoneMsg struct {
	ID    string
	Title string
	Resp  *api.ApproveResponse // nil on failure
}

// RejectDoneMsg is sent when a reject call finishes.
type RejectDoneMsg struct {
	ID   string
	Resp *api.StatusResponse // nil on failure
}

// RestoreDoneMsg is sent when a restore call finishes.
type RestoreDoneMsg struct {
	ID   string
	Resp *api.StatusResponse // nil on failure
}

// ItemLoadedMsg is sent when a single item has been fetched for viewing.
type ItemLoadedMsg struct {
	ID   string
	Item *api.NewsItem // nil on failure
}

// FetchDoneMsg is sent when a manual ingestion pass finishes.
type FetchDoneMsg struct {
	Resp *api.FetchResponse // nil on failure
}

// SettingsLoadedMsg is sent when the settings map has been fetched.
type SettingsLoadedMsg struct {
	Values map[string]string // nil on failure
}

// SettingsSavedMsg is sent when a settings save finishes.
type SettingsSavedMsg struct {
	Resp *api.StatusResponse // nil on failure
}

// SourcesLoadedMsg is sent when the source list has been fetched.
type SourcesLoadedMsg struct {
	Sources []api.Source // nil on failure
}

// SourceAddedMsg is sent when an add-source call finishes.
type SourceAddedMsg struct {
	Resp *api.StatusResponse // nil on failure
}

// SourceToggledMsg is sent when a toggle call finishes. PrevEnabled holds
// the flag's value before the toggle so a failure can roll it back.
type SourceToggledMsg struct {
	ID          int
	PrevEnabled int
	Resp        *api.StatusResponse // nil on failure
}

// SourceDeletedMsg is sent when a delete-source call finishes.
type SourceDeletedMsg struct {
	ID   int
	Resp *api.StatusResponse // nil on failure
}

// ToastExpiredMsg clears the transient notification. Gen guards against an
// old timer clearing a newer toast (last call wins).
type ToastExpiredMsg struct {
	Gen int
}
