package intel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kingrea/project-intel/internal/config"
)

// Store manages the on-disk document pair (primary document plus navigation
// index) for one target directory. All validation happens in memory before
// Write is called, so the store itself never writes partial state.
type Store struct {
	cfg *config.Config
	now func() time.Time
}

// StoreOption customizes a Store during construction.
type StoreOption func(*Store)

// WithClock overrides the clock used for date stamps and backup names.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = clock
	}
}

// NewStore builds a store over the resolved configuration.
func NewStore(cfg *config.Config, opts ...StoreOption) *Store {
	store := &Store{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Today returns the current date stamp in document format.
func (s *Store) Today() string {
	return s.now().Format(DateLayout)
}

// DocumentExists reports whether the primary document is already on disk.
func (s *Store) DocumentExists() (bool, error) {
	_, err := os.Stat(s.cfg.DocumentPath())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("intel: stat %s: %w", s.cfg.DocumentPath(), err)
}

// LoadRecord reads the existing document back into a record. A missing
// document yields an empty record at the initial version; the tolerant
// parser absorbs every other shape the file could be in.
func (s *Store) LoadRecord() (Record, error) {
	data, err := os.ReadFile(s.cfg.DocumentPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewRecord(s.Today()), nil
		}
		return Record{}, fmt.Errorf("intel: read %s: %w", s.cfg.DocumentPath(), err)
	}
	return ParseDocument(string(data), s.Today()), nil
}

// Write persists the rendered document and the regenerated index.
func (s *Store) Write(document, index string) error {
	if err := os.MkdirAll(s.cfg.TargetDir(), 0o755); err != nil {
		return fmt.Errorf("intel: ensure target dir: %w", err)
	}
	if err := os.WriteFile(s.cfg.DocumentPath(), []byte(document), 0o644); err != nil {
		return fmt.Errorf("intel: write document: %w", err)
	}
	if err := os.WriteFile(s.cfg.IndexPath(), []byte(index), 0o644); err != nil {
		return fmt.Errorf("intel: write index: %w", err)
	}
	return nil
}

// Backup copies the current document pair into a timestamped archive
// directory and returns its path. Files that do not exist are skipped, so a
// half-written target directory still archives cleanly.
func (s *Store) Backup() (string, error) {
	dir := s.cfg.BackupDir(s.now())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("intel: ensure backup dir: %w", err)
	}
	for _, path := range []string{s.cfg.DocumentPath(), s.cfg.IndexPath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("intel: read %s for backup: %w", path, err)
		}
		target := filepath.Join(dir, filepath.Base(path))
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return "", fmt.Errorf("intel: write backup %s: %w", target, err)
		}
	}
	return dir, nil
}
