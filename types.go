package md2html

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/net/html"
)

// Highlighter selection constants.
const (
	// HighlighterChroma emits class-based token markup (requires a
	// stylesheet). The engine primes its grammar tables on first use.
	HighlighterChroma = "chroma"

	// HighlighterInline emits inline style attributes, needing no CSS.
	HighlighterInline = "inline"
)

// Default pipeline cache capacity.
const DefaultCacheCapacity = 10

// ASTStage is a caller-supplied transform over the parsed Markdown tree,
// applied before conversion to HTML. Stages must be side-effect-free across
// invocations; an error aborts the render.
type ASTStage interface {
	Transform(doc ast.Node, source []byte) error
}

// ASTStageFunc adapts a function to the ASTStage interface.
type ASTStageFunc func(doc ast.Node, source []byte) error

func (f ASTStageFunc) Transform(doc ast.Node, source []byte) error { return f(doc, source) }

// TreeStage is a caller-supplied transform over the rendered HTML tree,
// applied after the built-in transforms and before sanitization. The node
// passed in is a synthetic body container holding the fragment.
type TreeStage interface {
	Transform(root *html.Node) error
}

// TreeStageFunc adapts a function to the TreeStage interface.
type TreeStageFunc func(root *html.Node) error

func (f TreeStageFunc) Transform(root *html.Node) error { return f(root) }

// Options configures a single render. The zero value renders GFM with
// sanitization on, emoji on, no highlighting, no base URL.
type Options struct {
	// BaseURL resolves relative link and media URLs when set. Must be a
	// well-formed absolute URL; validated before any processing.
	BaseURL string

	// Highlighter selects a syntax highlighting engine: "",
	// HighlighterChroma, or HighlighterInline.
	Highlighter string

	// Math enables math rendering via a plugin bundle (see MathJax).
	Math *MathPlugin

	// AllowIframes widens the sanitizer to admit iframe embeds
	// (src/width/height/frameborder only, never srcdoc).
	AllowIframes bool

	// DisableSanitize skips HTML sanitization entirely. The output is then
	// whatever the pipeline produced, scripts included.
	DisableSanitize bool

	// DisableEmoji turns off :shortcode: emoji substitution.
	DisableEmoji bool

	// LineNumbers wraps each line of highlighted code in a span.line so
	// stylesheets can render counters.
	LineNumbers bool

	// Inline strips paragraph wrapping from the final output for inline
	// embedding.
	Inline bool

	// ParseStages run in order on the Markdown tree after built-in parse
	// stages. A non-empty list makes the Options uncacheable.
	ParseStages []ASTStage

	// ConvertStages run in order on the HTML tree after built-in transforms
	// and before sanitization. A non-empty list makes the Options
	// uncacheable.
	ConvertStages []TreeStage
}

// Validate checks that options are well-formed. A malformed base URL is a
// hard error here, while malformed URLs inside content are tolerated
// per-occurrence at render time.
func (o *Options) Validate() error {
	if o.BaseURL != "" {
		u, err := url.Parse(o.BaseURL)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, o.BaseURL, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("%w: %q (must be absolute)", ErrInvalidBaseURL, o.BaseURL)
		}
	}

	switch o.Highlighter {
	case "", HighlighterChroma, HighlighterInline:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHighlighter, o.Highlighter)
	}

	return nil
}

// baseURL returns the parsed base URL with its path normalized to end in "/",
// so relative references resolve against the full base path. Returns nil when
// unset. Validate must have been called first.
func (o *Options) baseURL() *url.URL {
	if o.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(o.BaseURL)
	if err != nil {
		return nil
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u
}

// TocEntry is one collected heading.
type TocEntry struct {
	Text  string // flattened heading text, formatting stripped
	Depth int    // heading level, 1-6
	Slug  string // matches the id attribute in the rendered HTML
}

// Result packages a render with its side-collected metadata.
type Result struct {
	HTML        string
	TOC         []TocEntry
	Frontmatter map[string]any // nil when absent or malformed
}
