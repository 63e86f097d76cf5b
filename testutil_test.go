package md2html

import (
	"strings"
	"testing"
)

// applyStage parses a fragment, runs one tree stage over it, and serializes
// the result.
func applyStage(t *testing.T, stage TreeStage, fragment string) string {
	t.Helper()

	root, err := parseFragment(fragment)
	if err != nil {
		t.Fatalf("parseFragment() error: %v", err)
	}
	if err := stage.Transform(root); err != nil {
		t.Fatalf("Transform() error: %v", err)
	}
	out, err := renderFragment(root)
	if err != nil {
		t.Fatalf("renderFragment() error: %v", err)
	}
	return out
}

// assertContains fails unless all wanted substrings are present and all
// unwanted ones absent.
func assertContains(t *testing.T, got string, want []string, wantNot []string) {
	t.Helper()

	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q:\n%s", w, got)
		}
	}
	for _, w := range wantNot {
		if strings.Contains(got, w) {
			t.Errorf("output should not contain %q:\n%s", w, got)
		}
	}
}
