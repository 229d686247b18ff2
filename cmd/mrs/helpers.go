package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/murrasil/console/internal/api"
	"github.com/murrasil/console/internal/config"
	"github.com/murrasil/console/internal/journal"
)

// newClient builds an API client from the usual configuration sources.
func newClient() *api.Client {
	cfg, _ := config.Load()
	return api.New(cfg.BaseURL)
}

// openJournal opens the local decision journal, exiting on failure since
// the history command has nothing else to show.
func openJournal() *journal.Journal {
	home, err := os.UserHomeDir()
	if err != nil {
		fail("cannot resolve home directory: %v", err)
	}
	jour, err := journal.Open(filepath.Join(home, ".murrasil", "journal.db"))
	if err != nil {
		fail("cannot open journal: %v", err)
	}
	return jour
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mrs: "+format+"\n", args...)
	os.Exit(1)
}
