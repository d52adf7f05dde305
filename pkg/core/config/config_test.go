package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[general]
name = "Test Plant"
log_level = "debug"
data_dir = "/tmp/planforge-test"

[charts]
output_dir = "/tmp/planforge-charts"

[history]
path = "/tmp/planforge-test/runs.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "Test Plant" {
		t.Errorf("Name = %q, want %q", cfg.General.Name, "Test Plant")
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.General.LogLevel, "debug")
	}
	if cfg.Charts.OutputDir != "/tmp/planforge-charts" {
		t.Errorf("OutputDir = %q, want %q", cfg.Charts.OutputDir, "/tmp/planforge-charts")
	}
	if cfg.History.Path != "/tmp/planforge-test/runs.db" {
		t.Errorf("History.Path = %q", cfg.History.Path)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[general]\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Name != "PlanForge" {
		t.Errorf("default Name = %q", cfg.General.Name)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("default LogLevel = %q", cfg.General.LogLevel)
	}
	if cfg.Charts.OutputDir != "./charts" {
		t.Errorf("default OutputDir = %q", cfg.Charts.OutputDir)
	}
	if cfg.History.Path != filepath.Join("./data", "planforge.db") {
		t.Errorf("default History.Path = %q", cfg.History.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("PF_TEST_DIR", "/tmp/expanded")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[general]
data_dir = "$PF_TEST_DIR/data"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.DataDir != "/tmp/expanded/data" {
		t.Errorf("DataDir = %q, want expanded path", cfg.General.DataDir)
	}
}

func TestLoadFromEnv_NoFile(t *testing.T) {
	t.Setenv("PLANFORGE_CONFIG", "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "PlanForge" {
		t.Errorf("expected built-in defaults, got Name = %q", cfg.General.Name)
	}
}
