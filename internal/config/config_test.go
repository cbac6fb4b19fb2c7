package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.August, 26, 10, 30, 0, 0, time.UTC)
}

func TestNewDefaultsWhenSettingsMissing(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := New(projectDir, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := cfg.TargetDir(), filepath.Join(projectDir, ".opencode", "context", "project-intelligence"); got != want {
		t.Fatalf("TargetDir = %s, want %s", got, want)
	}
	if got, want := cfg.HoldingDir(), filepath.Join(projectDir, ".tmp"); got != want {
		t.Fatalf("HoldingDir = %s, want %s", got, want)
	}
	if got, want := cfg.BackupRoot(), filepath.Join(projectDir, ".tmp", "backup"); got != want {
		t.Fatalf("BackupRoot = %s, want %s", got, want)
	}
	if !strings.HasSuffix(cfg.DocumentPath(), "project-intelligence.md") {
		t.Fatalf("DocumentPath = %s", cfg.DocumentPath())
	}
	if !strings.HasSuffix(cfg.IndexPath(), "index.md") {
		t.Fatalf("IndexPath = %s", cfg.IndexPath())
	}
}

func TestNewParsesSettings(t *testing.T) {
	projectDir := t.TempDir()
	contextDir := filepath.Join(projectDir, ".opencode", "context")
	if err := os.MkdirAll(contextDir, 0o755); err != nil {
		t.Fatal(err)
	}
	settingsYAML := strings.TrimSpace(`
version: 1
holding_dir: scratch
backup_dir: scratch/archive
`)
	if err := os.WriteFile(filepath.Join(contextDir, "config.yaml"), []byte(settingsYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(projectDir, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := cfg.HoldingDir(), filepath.Join(projectDir, "scratch"); got != want {
		t.Fatalf("HoldingDir = %s, want %s", got, want)
	}
	if got, want := cfg.BackupRoot(), filepath.Join(projectDir, "scratch", "archive"); got != want {
		t.Fatalf("BackupRoot = %s, want %s", got, want)
	}
}

func TestNewRejectsMalformedSettings(t *testing.T) {
	projectDir := t.TempDir()
	contextDir := filepath.Join(projectDir, ".opencode", "context")
	if err := os.MkdirAll(contextDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contextDir, "config.yaml"), []byte("holding_dir: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(projectDir, false); err == nil {
		t.Fatalf("expected a parse error for malformed settings")
	}
}

func TestGlobalTargetUsesEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	projectDir := t.TempDir()
	cfg, err := New(projectDir, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := cfg.TargetDir(), filepath.Join(home, "context", "project-intelligence"); got != want {
		t.Fatalf("global TargetDir = %s, want %s", got, want)
	}
	// Holding and backup directories stay project-relative under --global.
	if got, want := cfg.HoldingDir(), filepath.Join(projectDir, ".tmp"); got != want {
		t.Fatalf("global HoldingDir = %s, want %s", got, want)
	}
}

func TestSettingsDefaultsApplyToPartialFile(t *testing.T) {
	projectDir := t.TempDir()
	contextDir := filepath.Join(projectDir, ".opencode", "context")
	if err := os.MkdirAll(contextDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contextDir, "config.yaml"), []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := New(projectDir, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := cfg.HoldingDir(), filepath.Join(projectDir, ".tmp"); got != want {
		t.Fatalf("HoldingDir = %s, want %s", got, want)
	}
}

func TestBackupDirUsesTimestamp(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := New(projectDir, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stamp := cfg.BackupDir(mustTime(t))
	if filepath.Base(stamp) != "project-intelligence-20260826-103000" {
		t.Fatalf("BackupDir = %s", stamp)
	}
}
