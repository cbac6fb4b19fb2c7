// Package config resolves where the context wizard reads and writes.
// Project-local runs target <root>/.opencode/context/project-intelligence/;
// --global runs target the per-user configuration tree instead. An optional
// config.yaml next to the target directory can relocate the holding and
// backup areas.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// OpencodeDir is the project-local base directory.
	OpencodeDir = ".opencode"

	// IntelDirName is the subdirectory holding the produced documents.
	IntelDirName = "project-intelligence"

	// SettingsName is the optional settings file under the context base.
	SettingsName = "config.yaml"

	defaultHoldingDir = ".tmp"
	defaultBackupDir  = ".tmp/backup"

	backupPrefix    = "project-intelligence-"
	backupTimestamp = "20060102-150405"
)

// EnvHome overrides the per-user base directory used by --global runs.
const EnvHome = "OPENCODE_HOME"

// Settings models the optional config.yaml.
type Settings struct {
	Version    int    `yaml:"version"`
	HoldingDir string `yaml:"holding_dir,omitempty"`
	BackupDir  string `yaml:"backup_dir,omitempty"`
}

// Config holds the resolved filesystem layout for one wizard run.
type Config struct {
	// ProjectDir is the directory the wizard was invoked from.
	ProjectDir string

	// Global redirects the target directory to the per-user location.
	Global bool

	// globalBase is the resolved per-user context base (set when Global).
	globalBase string

	Settings Settings
}

// New resolves the layout for a run rooted at projectDir.
func New(projectDir string, global bool) (*Config, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve project dir: %w", err)
	}
	cfg := &Config{
		ProjectDir: abs,
		Global:     global,
		Settings:   defaultSettings(),
	}
	if global {
		base := os.Getenv(EnvHome)
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("config: resolve home dir: %w", err)
			}
			base = filepath.Join(home, ".config", "opencode")
		}
		cfg.globalBase = filepath.Join(base, "context")
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ContextDir is the base directory every produced path lives under.
func (c *Config) ContextDir() string {
	if c.Global {
		return c.globalBase
	}
	return filepath.Join(c.ProjectDir, OpencodeDir, "context")
}

// TargetDir is where the document and the navigation index are written.
func (c *Config) TargetDir() string {
	return filepath.Join(c.ContextDir(), IntelDirName)
}

// DocumentPath returns the primary document location.
func (c *Config) DocumentPath() string {
	return filepath.Join(c.TargetDir(), "project-intelligence.md")
}

// IndexPath returns the navigation index location.
func (c *Config) IndexPath() string {
	return filepath.Join(c.TargetDir(), "index.md")
}

// LogsDir returns where the wizard appends its log file.
func (c *Config) LogsDir() string {
	return filepath.Join(c.ContextDir(), "logs")
}

// SettingsPath returns the on-disk location of the optional settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.ContextDir(), SettingsName)
}

// HoldingDir is the scratch area scanned for stray external context files.
// It stays project-root-relative even under --global.
func (c *Config) HoldingDir() string {
	return resolvePath(c.ProjectDir, c.Settings.HoldingDir)
}

// BackupRoot is the parent directory for Replace-all archives.
func (c *Config) BackupRoot() string {
	return resolvePath(c.ProjectDir, c.Settings.BackupDir)
}

// BackupDir returns the timestamped archive directory for one Replace-all.
func (c *Config) BackupDir(now time.Time) string {
	return filepath.Join(c.BackupRoot(), backupPrefix+now.Format(backupTimestamp))
}

func defaultSettings() Settings {
	return Settings{
		Version:    1,
		HoldingDir: defaultHoldingDir,
		BackupDir:  defaultBackupDir,
	}
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	c.Settings = parsed
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if strings.TrimSpace(s.HoldingDir) == "" {
		s.HoldingDir = defaultHoldingDir
	}
	if strings.TrimSpace(s.BackupDir) == "" {
		s.BackupDir = defaultBackupDir
	}
}

func (s *Settings) normalize() {
	s.HoldingDir = filepath.Clean(strings.TrimSpace(s.HoldingDir))
	s.BackupDir = filepath.Clean(strings.TrimSpace(s.BackupDir))
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	if filepath.IsAbs(candidate) {
		return filepath.Clean(candidate)
	}
	return filepath.Clean(filepath.Join(base, candidate))
}
