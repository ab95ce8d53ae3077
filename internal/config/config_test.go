package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Words != nil || cfg.Game.MaxLines != nil || cfg.Game.Seed != nil || cfg.Game.TUI != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigGameTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[game]\nwords = \"/tmp/list.txt\"\nmax-lines = 50\nseed = 7\ntui = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Words == nil || *cfg.Game.Words != "/tmp/list.txt" {
		t.Fatalf("unexpected words: %v", cfg.Game.Words)
	}
	if cfg.Game.MaxLines == nil || *cfg.Game.MaxLines != 50 {
		t.Fatalf("unexpected max-lines: %v", cfg.Game.MaxLines)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 7 {
		t.Fatalf("unexpected seed: %v", cfg.Game.Seed)
	}
	if cfg.Game.TUI == nil || !*cfg.Game.TUI {
		t.Fatalf("unexpected tui: %v", cfg.Game.TUI)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nlevel = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "game.level") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultConfigPath(); got != filepath.Join("/xdg", "hangman", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
}
