package intel

import (
	"regexp"
	"strings"
)

// frontmatterPattern matches the single leading metadata comment, e.g.
// <!-- context: project-intelligence | priority: critical | version: 1.2 | updated: 2026-08-26 -->
var frontmatterPattern = regexp.MustCompile(
	`(?i)<!--\s*context:\s*([^|]*?)\s*\|\s*priority:\s*([^|]*?)\s*\|\s*version:\s*([^|]*?)\s*\|\s*updated:\s*(.*?)\s*-->`)

// parseSection tracks which part of the document the scanner is inside.
type parseSection int

const (
	sectionNone parseSection = iota
	sectionStackTable
	sectionNamingTable
	sectionStandards
	sectionSecurity
)

// patternKind identifies which fenced code block a heading announced.
type patternKind int

const (
	patternNone patternKind = iota
	patternAPI
	patternComponent
)

// ParseDocument reads a previously generated document back into a Record on
// a best-effort basis. It never fails: missing or malformed sections come
// back absent, and a missing frontmatter line defaults the version to 1.0
// and the updated stamp to today. The document is meant to survive manual
// edits, so every unrecognized line is simply skipped.
func ParseDocument(content, today string) Record {
	rec := Record{Version: InitialVersion, Updated: today}
	if m := frontmatterPattern.FindStringSubmatch(content); m != nil {
		if v := strings.TrimSpace(m[3]); v != "" {
			rec.Version = v
		}
		if u := strings.TrimSpace(m[4]); u != "" {
			rec.Updated = u
		}
	}

	var (
		section    = sectionNone
		pending    = patternNone
		inFence    bool
		fenceLines []string

		stack      TechStack
		stackSeen  bool
		naming     NamingConventions
		namingSeen bool
	)

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				// Closing fence: a pending heading claims the block.
				switch pending {
				case patternAPI:
					rec.APIPattern = strings.Join(fenceLines, "\n")
				case patternComponent:
					rec.ComponentPattern = strings.Join(fenceLines, "\n")
				}
				pending = patternNone
				inFence = false
				fenceLines = nil
			} else {
				inFence = true
				fenceLines = nil
			}
			continue
		}
		if inFence {
			if pending != patternNone {
				fenceLines = append(fenceLines, line)
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			section, pending = transition(line, pending)
			continue
		}

		switch section {
		case sectionStackTable:
			if key, value, ok := tableRow(line); ok {
				stackSeen = true
				switch key {
				case "framework":
					stack.Framework = value
				case "language":
					stack.Language = value
				case "database":
					stack.Database = value
				case "styling":
					stack.Styling = value
				}
			}
		case sectionNamingTable:
			if key, value, ok := tableRow(line); ok {
				namingSeen = true
				switch key {
				case "files":
					naming.Files = value
				case "components":
					naming.Components = value
				case "functions":
					naming.Functions = value
				case "database":
					naming.Database = value
				}
			}
		case sectionStandards:
			if item, ok := bulletItem(line); ok {
				rec.CodeStandards = append(rec.CodeStandards, item)
			}
		case sectionSecurity:
			if item, ok := bulletItem(line); ok {
				rec.SecurityRequirements = append(rec.SecurityRequirements, item)
			}
		}
	}

	if stackSeen {
		rec.TechStack = &stack
	}
	if namingSeen {
		rec.Naming = &naming
	}
	return rec
}

// transition consumes one heading line and returns the next scanner state.
// A second API or Component heading resets the pending capture so the later
// block overwrites the earlier one.
func transition(heading string, pending patternKind) (parseSection, patternKind) {
	lower := strings.ToLower(heading)
	switch {
	case strings.Contains(lower, "api"):
		return sectionNone, patternAPI
	case strings.Contains(lower, "component"):
		return sectionNone, patternComponent
	case strings.Contains(lower, "stack"):
		return sectionStackTable, patternNone
	case strings.Contains(lower, "naming"):
		return sectionNamingTable, patternNone
	case strings.Contains(lower, "standards"):
		return sectionStandards, patternNone
	case strings.Contains(lower, "security"):
		return sectionSecurity, patternNone
	default:
		// Unrelated heading: leave any pending capture alone so a block
		// separated from its heading by prose is still claimed.
		return sectionNone, pending
	}
}

// tableRow splits a pipe-delimited row into its first two cells. Header and
// separator rows are rejected; the key comes back lower-cased.
func tableRow(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "|") {
		return "", "", false
	}
	cells := strings.Split(trimmed, "|")
	var fields []string
	for _, cell := range cells {
		fields = append(fields, strings.TrimSpace(cell))
	}
	// Leading and trailing pipes yield empty first/last fields.
	if len(fields) < 3 {
		return "", "", false
	}
	key = strings.ToLower(fields[1])
	value = fields[2]
	if key == "" || strings.Trim(key, "-: ") == "" {
		return "", "", false
	}
	switch key {
	case "component", "element", "choice", "convention":
		return "", "", false
	}
	return key, value, true
}

func bulletItem(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "- ") {
		return "", false
	}
	item := strings.TrimSpace(strings.TrimPrefix(trimmed, "- "))
	if item == "" {
		return "", false
	}
	return item, true
}
