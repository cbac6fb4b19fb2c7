package intel

import (
	"fmt"
	"strings"
)

const (
	// ContextTag identifies the primary document in its frontmatter line.
	ContextTag = "project-intelligence"

	// IndexContextTag identifies the navigation index.
	IndexContextTag = "navigation-index"

	// Priority is the fixed priority literal every produced document carries.
	Priority = "critical"

	// DocumentName and IndexName are the two files produced per write.
	DocumentName = "project-intelligence.md"
	IndexName    = "index.md"

	// ReferenceMarker introduces the fixed footer section. Validation
	// requires it to be present verbatim.
	ReferenceMarker = "## Reference Documents"
)

// RenderDocument serializes a record into the fixed document structure.
// The output is deterministic: the same record always yields the same bytes,
// which is what makes parse/render round-trips safe.
func RenderDocument(rec Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<!-- context: %s | priority: %s | version: %s | updated: %s -->\n",
		ContextTag, Priority, rec.Version, rec.Updated)
	b.WriteString("\n# Project Intelligence\n\n")
	b.WriteString("**Purpose**: Canonical record of the technology stack, established patterns, and conventions for this project.\n")
	fmt.Fprintf(&b, "**Last Updated**: %s\n", rec.Updated)

	if rec.TechStack != nil {
		b.WriteString("\n## Technology Stack\n\n")
		b.WriteString("| Component | Choice |\n")
		b.WriteString("|-----------|--------|\n")
		fmt.Fprintf(&b, "| Framework | %s |\n", rec.TechStack.Framework)
		fmt.Fprintf(&b, "| Language | %s |\n", rec.TechStack.Language)
		fmt.Fprintf(&b, "| Database | %s |\n", rec.TechStack.Database)
		fmt.Fprintf(&b, "| Styling | %s |\n", rec.TechStack.Styling)
	}

	if rec.APIPattern != "" || rec.ComponentPattern != "" {
		b.WriteString("\n## Established Patterns\n")
		if rec.APIPattern != "" {
			b.WriteString("\n### API Pattern\n\n")
			writeFence(&b, rec.APIPattern)
		}
		if rec.ComponentPattern != "" {
			b.WriteString("\n### Component Pattern\n\n")
			writeFence(&b, rec.ComponentPattern)
		}
	}

	if rec.Naming != nil {
		b.WriteString("\n## Naming Conventions\n\n")
		b.WriteString("| Element | Convention |\n")
		b.WriteString("|---------|------------|\n")
		fmt.Fprintf(&b, "| Files | %s |\n", rec.Naming.Files)
		fmt.Fprintf(&b, "| Components | %s |\n", rec.Naming.Components)
		fmt.Fprintf(&b, "| Functions | %s |\n", rec.Naming.Functions)
		fmt.Fprintf(&b, "| Database | %s |\n", rec.Naming.Database)
	}

	if len(rec.CodeStandards) > 0 {
		b.WriteString("\n## Code Standards\n\n")
		for _, item := range rec.CodeStandards {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	if len(rec.SecurityRequirements) > 0 {
		b.WriteString("\n## Security Requirements\n\n")
		for _, item := range rec.SecurityRequirements {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	b.WriteString("\n" + ReferenceMarker + "\n\n")
	b.WriteString("Consult the companion documents before making architectural decisions:\n\n")
	fmt.Fprintf(&b, "- `%s` holds the navigation index for every context document\n", IndexName)
	b.WriteString("- `.tmp/` is the holding area for harvested external context\n")

	return b.String()
}

// RenderIndex regenerates the navigation index from scratch. The index
// carries no state of its own beyond the stamp it was produced with.
func RenderIndex(updated string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<!-- context: %s | priority: %s | version: %s | updated: %s -->\n",
		IndexContextTag, Priority, InitialVersion, updated)
	b.WriteString("\n# Context Navigation Index\n\n")
	b.WriteString("**Purpose**: Entry point for loading project context documents.\n")
	fmt.Fprintf(&b, "**Last Updated**: %s\n", updated)
	b.WriteString("\n| Document | Description | Priority |\n")
	b.WriteString("|----------|-------------|----------|\n")
	fmt.Fprintf(&b, "| %s | Technology stack, patterns, and conventions | %s |\n",
		DocumentName, Priority)
	b.WriteString("\n" + ReferenceMarker + "\n\n")
	fmt.Fprintf(&b, "- `%s` should be read before any code change\n", DocumentName)

	return b.String()
}

func writeFence(b *strings.Builder, body string) {
	b.WriteString("```\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")
}
