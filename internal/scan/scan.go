// Package scan inspects the holding directory for loose external context
// files the harvesting flow has not absorbed yet. The scan is read-only.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

const documentExt = ".md"

// IsExternalContext reports whether a file name looks like harvestable
// external context: the document extension plus an external-/context-
// prefix or a -context infix.
func IsExternalContext(name string) bool {
	if !strings.HasSuffix(name, documentExt) {
		return false
	}
	return strings.HasPrefix(name, "external-") ||
		strings.HasPrefix(name, "context-") ||
		strings.Contains(name, "-context")
}

// ExternalContextFiles lists matching file names directly under dir, sorted
// for deterministic output. A missing directory is not an error.
func ExternalContextFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan: read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsExternalContext(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
