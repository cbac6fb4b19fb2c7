package intel

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxDocumentLines is the hard ceiling on rendered document length.
const MaxDocumentLines = 200

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Validate checks a rendered document against the fixed structural rules.
// Every violated rule is reported; an empty result means the document may
// be written. The checks run over the text alone so they apply equally to
// generated and hand-edited documents.
func Validate(content string) []error {
	var errs []error

	if n := countLines(content); n > MaxDocumentLines {
		errs = append(errs, fmt.Errorf("document has %d lines, limit is %d", n, MaxDocumentLines))
	}

	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		errs = append(errs, fmt.Errorf("missing frontmatter comment (context | priority | version | updated)"))
	} else {
		if priority := strings.ToLower(strings.TrimSpace(m[2])); priority != Priority {
			errs = append(errs, fmt.Errorf("priority must be %q, found %q", Priority, priority))
		}
		if version := strings.TrimSpace(m[3]); !versionPattern.MatchString(version) {
			errs = append(errs, fmt.Errorf("version %q does not match major.minor", version))
		}
	}

	if !strings.Contains(content, "**Purpose**") {
		errs = append(errs, fmt.Errorf("missing **Purpose** metadata marker"))
	}
	if !strings.Contains(content, "**Last Updated**") {
		errs = append(errs, fmt.Errorf("missing **Last Updated** metadata marker"))
	}
	if !strings.Contains(content, ReferenceMarker) {
		errs = append(errs, fmt.Errorf("missing %q section", ReferenceMarker))
	}

	return errs
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Split(strings.TrimSuffix(content, "\n"), "\n"))
}
