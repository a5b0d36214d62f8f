// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Server.BaseURL != "http://127.0.0.1:5000" {
		t.Errorf("Server.BaseURL = %q, want default localhost URL", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSecs != 120 {
		t.Errorf("Server.TimeoutSecs = %d, want 120", cfg.Server.TimeoutSecs)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Storage.Backend = %q, want file", cfg.Storage.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
base_url = "https://regguru.example.com"
timeout_secs = 30

[storage]
backend = "sqlite"

[ui]
theme = "dark"
word_wrap = 100
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if cfg.Server.BaseURL != "https://regguru.example.com" {
		t.Errorf("Server.BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("Server.TimeoutSecs = %d, want 30", cfg.Server.TimeoutSecs)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Storage.Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.UI.WordWrap != 100 {
		t.Errorf("UI.WordWrap = %d, want 100", cfg.UI.WordWrap)
	}
	// Missing sections fall back to defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info default", cfg.Log.Level)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Server.BaseURL = "https://api.example.com"
	cfg.UI.Theme = "light"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.Server.BaseURL != "https://api.example.com" {
		t.Errorf("round-trip BaseURL = %q", loaded.Server.BaseURL)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("round-trip Theme = %q", loaded.UI.Theme)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "bad base URL",
			mutate: func(c *Config) { c.Server.BaseURL = "not a url" },
			field:  "server.base_url",
		},
		{
			name:   "negative timeout",
			mutate: func(c *Config) { c.Server.TimeoutSecs = -1 },
			field:  "server.timeout_secs",
		},
		{
			name:   "unknown backend",
			mutate: func(c *Config) { c.Storage.Backend = "redis" },
			field:  "storage.backend",
		},
		{
			name:   "unknown theme",
			mutate: func(c *Config) { c.UI.Theme = "solarized" },
			field:  "ui.theme",
		},
		{
			name:   "word wrap too small",
			mutate: func(c *Config) { c.UI.WordWrap = 5 },
			field:  "ui.word_wrap",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Log.Level = "trace" },
			field:  "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should have failed")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention field %q", err, tt.field)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("REGGURU_SERVER_URL", "https://override.example.com")
	t.Setenv("REGGURU_TIMEOUT_SECS", "45")
	t.Setenv("REGGURU_THEME", "dark")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.BaseURL != "https://override.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSecs != 45 {
		t.Errorf("TimeoutSecs = %d, want 45", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestApplyEnvOverridesIgnoresBadTimeout(t *testing.T) {
	t.Setenv("REGGURU_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.TimeoutSecs != 120 {
		t.Errorf("TimeoutSecs = %d, want default preserved", cfg.Server.TimeoutSecs)
	}
}

func TestTimeout(t *testing.T) {
	cfg := Default()
	cfg.Server.TimeoutSecs = 30

	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", got)
	}
}

func TestWatchPathReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := SaveTOML(Default(), path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	w, err := WatchPath(path, func(cfg *Config) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("WatchPath: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.UI.Theme = "light"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}
