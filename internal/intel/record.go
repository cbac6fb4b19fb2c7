// Package intel models the project intelligence document: a single
// markdown file carrying the technology stack, established code patterns,
// and team conventions, designed to be both hand-edited and regenerated.
package intel

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// InitialVersion is assigned to freshly created documents.
	InitialVersion = "1.0"

	// DateLayout is the stamp format used in frontmatter and metadata lines.
	DateLayout = "2006-01-02"
)

// TechStack captures the four core technology choices.
type TechStack struct {
	Framework string
	Language  string
	Database  string
	Styling   string
}

// NamingConventions captures the four naming rules.
type NamingConventions struct {
	Files      string
	Components string
	Functions  string
	Database   string
}

// Record is the parsed form of the project intelligence document.
// Nil sub-records and empty pattern strings mean "absent".
type Record struct {
	Version              string
	Updated              string
	TechStack            *TechStack
	APIPattern           string
	ComponentPattern     string
	Naming               *NamingConventions
	CodeStandards        []string
	SecurityRequirements []string
}

// NewRecord returns an empty record at the initial version.
func NewRecord(today string) Record {
	return Record{Version: InitialVersion, Updated: today}
}

// IncrementVersion bumps the minor component of a dotted major.minor
// version. Unparseable components default to zero, so "bad" becomes "0.1".
// There is no base-10 carry: "2.9" becomes "2.10".
func IncrementVersion(v string) string {
	var major, minor int
	if rawMajor, rawMinor, ok := strings.Cut(strings.TrimSpace(v), "."); ok {
		major = atoiOrZero(rawMajor)
		minor = atoiOrZero(rawMinor)
	} else {
		major = atoiOrZero(v)
	}
	return fmt.Sprintf("%d.%d", major, minor+1)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
