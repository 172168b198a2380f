package util

import "testing"

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatalf("expected error for traversal name")
	}
}

func TestSanitizeFileNameReplacesSeparators(t *testing.T) {
	got, err := SanitizeFileName("a/b\\c.tex")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if got != "a_b_c.tex" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitizeLabel(t *testing.T) {
	if got := SanitizeLabel("Acme Corp. (EU)"); got != "Acme_Corp_EU" {
		t.Fatalf("got %q", got)
	}
	if got := SanitizeLabel("  "); got != "unknown" {
		t.Fatalf("got %q", got)
	}
}
