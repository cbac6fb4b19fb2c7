package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsExternalContext(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"external-notes.md", true},
		{"context-dump.md", true},
		{"api-context.md", true},
		{"deep-context-notes.md", true},
		{"notes.md", false},
		{"external-notes.txt", false},
		{"contextual.md", false},
		{"external.md", false},
	}
	for _, tc := range cases {
		if got := IsExternalContext(tc.name); got != tc.want {
			t.Errorf("IsExternalContext(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExternalContextFilesSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"external-b.md", "external-a.md", "readme.md", "context-c.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "external-dir.md"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := ExternalContextFiles(dir)
	if err != nil {
		t.Fatalf("ExternalContextFiles: %v", err)
	}
	want := []string{"context-c.md", "external-a.md", "external-b.md"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExternalContextFilesMissingDir(t *testing.T) {
	got, err := ExternalContextFiles(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %v", got)
	}
}
