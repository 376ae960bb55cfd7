package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName(" my resume/v2.pdf ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "my resume_v2.pdf" {
		t.Fatalf("unexpected result: %q", got)
	}

	if _, err := SanitizeFileName("../etc/passwd"); err == nil {
		t.Fatal("expected traversal to be rejected")
	}
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatal("expected blank name to be rejected")
	}
}
