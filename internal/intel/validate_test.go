package intel

import (
	"strings"
	"testing"
)

func validDocument() string {
	rec := fullRecord()
	return RenderDocument(rec)
}

func TestValidatePassesGeneratedDocument(t *testing.T) {
	if violations := Validate(validDocument()); len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
}

func TestValidateRejectsLongDocument(t *testing.T) {
	doc := validDocument()
	padding := strings.Repeat("filler line\n", MaxDocumentLines+1-countLines(doc))
	long := doc + padding
	if countLines(long) != MaxDocumentLines+1 {
		t.Fatalf("test setup: expected %d lines, got %d", MaxDocumentLines+1, countLines(long))
	}
	violations := Validate(long)
	if len(violations) == 0 {
		t.Fatalf("expected a line-count violation")
	}
	if !strings.Contains(violations[0].Error(), "limit") {
		t.Fatalf("unexpected violation: %v", violations[0])
	}
}

func TestValidateRejectsMissingFrontmatter(t *testing.T) {
	doc := validDocument()
	stripped := strings.Join(strings.Split(doc, "\n")[1:], "\n")
	violations := Validate(stripped)
	if len(violations) == 0 {
		t.Fatalf("expected a frontmatter violation")
	}
	found := false
	for _, v := range violations {
		if strings.Contains(v.Error(), "frontmatter") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no frontmatter violation among %v", violations)
	}
}

func TestValidateRejectsWrongPriority(t *testing.T) {
	doc := strings.Replace(validDocument(), "priority: critical", "priority: low", 1)
	violations := Validate(doc)
	if len(violations) != 1 || !strings.Contains(violations[0].Error(), "priority") {
		t.Fatalf("expected exactly one priority violation, got %v", violations)
	}
}

func TestValidateRejectsMalformedVersion(t *testing.T) {
	doc := strings.Replace(validDocument(), "version: 1.3", "version: v2", 1)
	violations := Validate(doc)
	if len(violations) != 1 || !strings.Contains(violations[0].Error(), "major.minor") {
		t.Fatalf("expected exactly one version violation, got %v", violations)
	}
}

func TestValidateEnumeratesEveryViolation(t *testing.T) {
	violations := Validate("just a line\n")
	want := []string{"frontmatter", "Purpose", "Last Updated", "Reference Documents"}
	if len(violations) != len(want) {
		t.Fatalf("expected %d violations, got %v", len(want), violations)
	}
	for i, fragment := range want {
		if !strings.Contains(violations[i].Error(), fragment) {
			t.Errorf("violation %d = %v, want mention of %q", i, violations[i], fragment)
		}
	}
}
