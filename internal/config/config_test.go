package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Lookup.Lang != nil || cfg.Lookup.CacheSize != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigLookup(t *testing.T) {
	path := writeConfig(t, `
[lookup]
lang = "de"
cache-size = 64
history = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Lookup.Lang == nil || *cfg.Lookup.Lang != "de" {
		t.Fatalf("unexpected lang %v", cfg.Lookup.Lang)
	}
	if cfg.Lookup.CacheSize == nil || *cfg.Lookup.CacheSize != 64 {
		t.Fatalf("unexpected cache size %v", cfg.Lookup.CacheSize)
	}
	if cfg.Lookup.History == nil || *cfg.Lookup.History {
		t.Fatalf("expected history=false, got %v", cfg.Lookup.History)
	}
	if cfg.Lookup.Explain != nil || cfg.Lookup.Data != nil {
		t.Fatalf("expected unset keys to stay nil")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "[lookup]\nlanguage = \"en\"\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "language") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "[lookup\nlang = ")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	cfgHome := t.TempDir()
	dataHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_DATA_HOME", dataHome)

	if got, want := DefaultConfigPath(), filepath.Join(cfgHome, "fwew", "config.toml"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got, want := DefaultDBPath(), filepath.Join(dataHome, "fwew", "fwew.db"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
