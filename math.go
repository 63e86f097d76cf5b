package md2html

import (
	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark"
)

// MathSanitize declares the sanitization allowances a math plugin needs for
// its output to survive the safety net. The schema builder consumes this
// declaratively; it has no math-specific knowledge of its own. Declared
// allowances are trusted configuration, not untrusted input.
type MathSanitize struct {
	// ClassPatterns are regular expressions for single class tokens the
	// plugin emits (implicitly anchored, e.g. `math`).
	ClassPatterns []string

	// Tags are extra element names to allow.
	Tags []string

	// Attrs are extra attribute names to allow on the plugin's tags.
	Attrs []string

	// TagAttrs maps a tag name to attribute names allowed only on it.
	TagAttrs map[string][]string
}

// MathPlugin bundles a parse-stage extension, its convert-stage rendering,
// and the sanitization allowances its output requires.
type MathPlugin struct {
	// Name identifies the bundle in configuration fingerprints.
	Name string

	// Extension registers the parse and convert stages with the pipeline.
	Extension goldmark.Extender

	// Sanitize lists the allowances the schema builder must add.
	Sanitize MathSanitize

	// builtin marks bundles constructed by this package as safe to cache.
	builtin bool
}

// MathJax returns the built-in math bundle. Delimited TeX is parsed at the
// math parse stage and emitted as classed spans for client-side MathJax
// typesetting.
func MathJax() *MathPlugin {
	return &MathPlugin{
		Name:      "mathjax",
		Extension: mathjax.MathJax,
		Sanitize: MathSanitize{
			ClassPatterns: []string{`math`, `inline`, `display`},
		},
		builtin: true,
	}
}
