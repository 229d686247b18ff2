// Command murrasil is the interactive moderation console for the Murrasil
// news-curation pipeline.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/murrasil/console/internal/api"
	"github.com/murrasil/console/internal/config"
	"github.com/murrasil/console/internal/journal"
	"github.com/murrasil/console/internal/logging"
	"github.com/murrasil/console/internal/ui"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("config load failed, using defaults", "error", err)
	}

	client := api.New(cfg.BaseURL)

	// The journal is advisory; run without it if it cannot be opened
	var jour *journal.Journal
	homeDir, err := os.UserHomeDir()
	if err == nil {
		dataDir := filepath.Join(homeDir, ".murrasil")
		if err := os.MkdirAll(dataDir, 0755); err == nil {
			jour, err = journal.Open(filepath.Join(dataDir, "journal.db"))
			if err != nil {
				logging.Warn("journal unavailable", "error", err)
				jour = nil
			}
		}
	}
	if jour != nil {
		defer jour.Close()
	}

	app := ui.New(client, jour, cfg.PageLimit)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
