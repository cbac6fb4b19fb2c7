package intel

import "testing"

func TestIncrementVersion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.4", "1.5"},
		{"1.0", "1.1"},
		{"2.9", "2.10"},
		{"bad", "0.1"},
		{"", "0.1"},
		{"3", "3.1"},
		{"2.x", "2.1"},
		{" 1.2 ", "1.3"},
	}
	for _, tc := range cases {
		if got := IncrementVersion(tc.in); got != tc.want {
			t.Errorf("IncrementVersion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("2026-08-26")
	if rec.Version != InitialVersion {
		t.Fatalf("expected version %s, got %s", InitialVersion, rec.Version)
	}
	if rec.Updated != "2026-08-26" {
		t.Fatalf("expected today stamp, got %s", rec.Updated)
	}
	if rec.TechStack != nil || rec.Naming != nil {
		t.Fatalf("expected optional sections to be absent")
	}
}
