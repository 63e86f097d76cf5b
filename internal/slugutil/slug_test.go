package slugutil_test

import (
	"testing"

	"github.com/alnah/go-md2html/internal/slugutil"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			name:  "simple lowercase",
			texts: []string{"First"},
			want:  []string{"first"},
		},
		{
			name:  "spaces become hyphens",
			texts: []string{"Hello World"},
			want:  []string{"hello-world"},
		},
		{
			name:  "duplicates get sequential suffixes",
			texts: []string{"Test", "Test", "Test"},
			want:  []string{"test", "test-1", "test-2"},
		},
		{
			name:  "suffixed slug does not collide with literal heading",
			texts: []string{"Test", "Test", "Test 1"},
			want:  []string{"test", "test-1", "test-1-1"},
		},
		{
			name:  "punctuation-only heading gets fallback",
			texts: []string{"!!!", "???"},
			want:  []string{"heading", "heading-1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := slugutil.New()
			for i, text := range tt.texts {
				got := s.Slug(text)
				if got != tt.want[i] {
					t.Errorf("Slug(%q) = %q, want %q", text, got, tt.want[i])
				}
			}
		})
	}
}

func TestSlug_FreshStatePerSlugger(t *testing.T) {
	t.Parallel()

	first := slugutil.New().Slug("Test")
	second := slugutil.New().Slug("Test")
	if first != second {
		t.Errorf("fresh sluggers disagree: %q vs %q", first, second)
	}
}
