package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PageLimit != 20 {
		t.Errorf("PageLimit = %d, want 20", cfg.PageLimit)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{"base_url": "http://10.0.0.5:9000", "page_limit": 50}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://10.0.0.5:9000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PageLimit != 50 {
		t.Errorf("PageLimit = %d, want 50", cfg.PageLimit)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{"base_url": "http://10.0.0.5:9000"}`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageLimit != 20 {
		t.Errorf("PageLimit = %d, want the default 20", cfg.PageLimit)
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{not json`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("BaseURL = %q, want default after corrupt file", cfg.BaseURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, `{"base_url": "http://10.0.0.5:9000", "page_limit": 50}`)
	t.Setenv("MURRASIL_API_URL", "http://override:8080")
	t.Setenv("MURRASIL_PAGE_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "http://override:8080" {
		t.Errorf("BaseURL = %q, want the env override", cfg.BaseURL)
	}
	if cfg.PageLimit != 5 {
		t.Errorf("PageLimit = %d, want 5", cfg.PageLimit)
	}
}

func TestEnvIgnoresBadPageLimit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MURRASIL_PAGE_LIMIT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageLimit != 20 {
		t.Errorf("PageLimit = %d, want the default 20", cfg.PageLimit)
	}
}

func TestEnvOverridesSurviveUnreadableFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// A directory at the config path makes the read fail with something
	// other than not-exist
	if err := os.MkdirAll(filepath.Join(home, ".murrasil", "config.json"), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MURRASIL_API_URL", "http://override:8080")

	cfg, err := Load()
	if err == nil {
		t.Error("Load on an unreadable file should report the error")
	}
	if cfg == nil {
		t.Fatal("Load should still return a usable config")
	}
	if cfg.BaseURL != "http://override:8080" {
		t.Errorf("BaseURL = %q, want the env override despite the read error", cfg.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://10.1.1.1:8000"
	cfg.PageLimit = 10
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BaseURL != cfg.BaseURL || loaded.PageLimit != cfg.PageLimit {
		t.Errorf("round trip got %q/%d, want %q/%d",
			loaded.BaseURL, loaded.PageLimit, cfg.BaseURL, cfg.PageLimit)
	}
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".murrasil")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
