package intel

import (
	"strings"
	"testing"
)

func TestRenderFirstTimeScenario(t *testing.T) {
	rec := Record{
		Version: InitialVersion,
		Updated: today,
		TechStack: &TechStack{
			Framework: "Next.js",
			Language:  "TypeScript",
			Database:  "PostgreSQL",
			Styling:   "Tailwind",
		},
		Naming: &NamingConventions{
			Files:      "kebab-case",
			Components: "PascalCase",
			Functions:  "camelCase",
			Database:   "snake_case",
		},
		CodeStandards:        []string{"Use strict mode"},
		SecurityRequirements: []string{"Validate all input"},
	}
	doc := RenderDocument(rec)

	if !strings.Contains(doc, "version: 1.0") {
		t.Fatalf("expected version 1.0 in frontmatter:\n%s", doc)
	}
	for _, row := range []string{
		"| Framework | Next.js |",
		"| Language | TypeScript |",
		"| Database | PostgreSQL |",
		"| Styling | Tailwind |",
		"| Files | kebab-case |",
		"| Components | PascalCase |",
		"| Functions | camelCase |",
		"| Database | snake_case |",
	} {
		if !strings.Contains(doc, row) {
			t.Errorf("missing table row %q", row)
		}
	}
	if strings.Contains(doc, "### API Pattern") || strings.Contains(doc, "### Component Pattern") {
		t.Fatalf("skipped patterns must not render subsections:\n%s", doc)
	}
	if strings.Count(doc, "- Use strict mode") != 1 {
		t.Fatalf("expected exactly one standards bullet")
	}
	if strings.Count(doc, "- Validate all input") != 1 {
		t.Fatalf("expected exactly one security bullet")
	}
	if violations := Validate(doc); len(violations) != 0 {
		t.Fatalf("rendered document must validate, got %v", violations)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	rec := fullRecord()
	if RenderDocument(rec) != RenderDocument(rec) {
		t.Fatalf("render must be deterministic")
	}
}

func TestRenderIndexListsDocument(t *testing.T) {
	index := RenderIndex(today)
	if !strings.Contains(index, DocumentName) {
		t.Fatalf("index must reference the primary document:\n%s", index)
	}
	if !strings.Contains(index, "| "+DocumentName+" | Technology stack, patterns, and conventions | critical |") {
		t.Fatalf("index missing the fixed metadata row:\n%s", index)
	}
	if !strings.Contains(index, "updated: "+today) {
		t.Fatalf("index must carry the date stamp")
	}
}
