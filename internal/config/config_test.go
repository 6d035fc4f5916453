package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":3001" {
		t.Errorf("default addr %q, want :3001", cfg.Addr)
	}
	if cfg.Upstream != "http://localhost:3000" {
		t.Errorf("default upstream %q", cfg.Upstream)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level %q", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		t.Error("default data dir empty")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".game-hub.json")

	cfg := Default()
	cfg.Addr = ":8080"
	cfg.CatalogPath = "/etc/game-hub/catalog.yaml"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Addr != ":8080" {
		t.Errorf("loaded addr %q, want :8080", loaded.Addr)
	}
	if loaded.CatalogPath != "/etc/game-hub/catalog.yaml" {
		t.Errorf("loaded catalog path %q", loaded.CatalogPath)
	}
}

func TestLoadFromMissingFieldsUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"addr": ":9999"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("addr %q, want :9999", cfg.Addr)
	}
	if cfg.Upstream != "http://localhost:3000" {
		t.Errorf("missing upstream should default, got %q", cfg.Upstream)
	}
}

func TestLoadFromNonExistent(t *testing.T) {
	_, err := LoadFrom("/nonexistent/path/.game-hub.json")
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom should fail on invalid JSON")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GAMEHUB_ADDR", ":4000")
	t.Setenv("GAMEHUB_DATA_DIR", "/var/lib/game-hub")
	t.Setenv("GAMEHUB_LOG_LEVEL", "debug")

	cfg := Default()
	applyEnv(cfg)

	if cfg.Addr != ":4000" {
		t.Errorf("addr %q, want :4000", cfg.Addr)
	}
	if cfg.DataDir != "/var/lib/game-hub" {
		t.Errorf("data dir %q", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level %q", cfg.LogLevel)
	}
	// Untouched fields keep their values.
	if cfg.Upstream != "http://localhost:3000" {
		t.Errorf("upstream changed to %q", cfg.Upstream)
	}
}

func TestDataPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data"}

	if got := cfg.StorePath(); got != filepath.Join("/data", "hub.db") {
		t.Errorf("StorePath = %q", got)
	}
	if got := cfg.CachePath(); got != filepath.Join("/data", "cache.db") {
		t.Errorf("CachePath = %q", got)
	}
}
