package settingsview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/murrasil/console/internal/api"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDefaultsMatchBackend(t *testing.T) {
	m := New()
	values := m.Values()
	if values[api.KeyFetchInterval] != "15" {
		t.Errorf("default interval = %q, want 15", values[api.KeyFetchInterval])
	}
	if values[api.KeyMaxNewsAge] != "48" {
		t.Errorf("default max age = %q, want 48", values[api.KeyMaxNewsAge])
	}
}

func TestLoadAppliesOnlyPresentKeys(t *testing.T) {
	m := New()
	m.Load(map[string]string{api.KeyFetchInterval: "30"})

	values := m.Values()
	if values[api.KeyFetchInterval] != "30" {
		t.Errorf("interval = %q, want 30", values[api.KeyFetchInterval])
	}
	if values[api.KeyMaxNewsAge] != "48" {
		t.Errorf("absent key changed max age to %q, want untouched 48", values[api.KeyMaxNewsAge])
	}
}

func TestLoadPreservesUnknownBackendValue(t *testing.T) {
	m := New()
	m.Load(map[string]string{api.KeyFetchInterval: "7"})

	if got := m.Values()[api.KeyFetchInterval]; got != "7" {
		t.Errorf("interval = %q, want the backend's 7 even though it is not a preset", got)
	}
	// Cycling must not lose it
	m, _ = m.Update(keyMsg("right"))
	m, _ = m.Update(keyMsg("left"))
	if got := m.Values()[api.KeyFetchInterval]; got != "7" {
		t.Errorf("interval after cycle round trip = %q, want 7", got)
	}
}

func TestCycleOptions(t *testing.T) {
	m := New()
	m, _ = m.Update(keyMsg("right")) // 15 -> 30
	if got := m.Values()[api.KeyFetchInterval]; got != "30" {
		t.Errorf("interval = %q, want 30", got)
	}

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("left")) // 48 -> 24
	if got := m.Values()[api.KeyMaxNewsAge]; got != "24" {
		t.Errorf("max age = %q, want 24", got)
	}
}

func TestSaveIntent(t *testing.T) {
	m := New()
	m, _ = m.Update(keyMsg("s"))
	if !m.SaveRequested() {
		t.Fatal("s should raise the save intent")
	}
	m.ResetSaveRequested()
	if m.SaveRequested() {
		t.Error("ResetSaveRequested should clear the intent")
	}

	// No edits while a save is in flight
	m.SetSaving(true)
	m, _ = m.Update(keyMsg("right"))
	if got := m.Values()[api.KeyFetchInterval]; got != "15" {
		t.Errorf("interval changed to %q during save, want 15", got)
	}
	m, _ = m.Update(keyMsg("s"))
	if m.SaveRequested() {
		t.Error("save intent must not fire while saving")
	}
	if !strings.Contains(m.View(), "Saving") {
		t.Error("view should show the busy affordance while saving")
	}
}

func TestEscClosesPanel(t *testing.T) {
	m := New()
	m, _ = m.Update(keyMsg("esc"))
	if !m.IsQuitting() {
		t.Fatal("esc should close the panel")
	}
	m.ResetQuitting()
	if m.IsQuitting() {
		t.Error("ResetQuitting should clear the flag")
	}
}
