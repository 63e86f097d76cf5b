// Package slugutil derives URL-safe identifiers from heading text with
// per-document collision suffixing, matching GitHub's anchor behavior.
package slugutil

import (
	"fmt"

	"github.com/shurcooL/sanitized_anchor_name"
)

// fallbackSlug is used when heading text sanitizes to nothing
// (e.g. a heading containing only punctuation).
const fallbackSlug = "heading"

// Slugger assigns unique slugs within one document. It is stateful and must
// be created fresh per document; it is not safe for concurrent use.
type Slugger struct {
	used map[string]bool
}

// New returns a Slugger with no slugs taken.
func New() *Slugger {
	return &Slugger{used: make(map[string]bool)}
}

// Slug returns the unique slug for the given heading text. Repeated text
// yields "name", "name-1", "name-2", in call order.
func (s *Slugger) Slug(text string) string {
	base := sanitized_anchor_name.Create(text)
	if base == "" {
		base = fallbackSlug
	}

	candidate := base
	for i := 1; s.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	s.used[candidate] = true
	return candidate
}
