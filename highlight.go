package md2html

import (
	"fmt"
	"regexp"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// tokenClassPrefix prefixes every chroma token class so the sanitizer can
// allow them with a single pattern.
const tokenClassPrefix = "hl-"

// highlightStyle is the chroma style used by both engine variants.
const highlightStyle = "github"

// commonLanguages are primed into the lexer registry when the class-based
// engine is built, paying grammar-table cost at warm-up instead of on the
// first render of each language.
var commonLanguages = []string{"go", "python", "javascript", "typescript", "rust", "c", "java", "bash", "json", "yaml", "html", "css", "sql", "markdown"}

// engineRegistry memoizes highlighter engine construction process-wide.
// Concurrent renders may race to build the same engine; the first stored
// instance wins and all callers converge on it.
type engineRegistry struct {
	mu     sync.Mutex
	built  map[string]goldmark.Extender
	builds int
}

var engines = &engineRegistry{built: make(map[string]goldmark.Extender)}

// highlightEngine returns the memoized engine for the given variant,
// constructing it on first use.
func highlightEngine(kind string) (goldmark.Extender, error) {
	engines.mu.Lock()
	defer engines.mu.Unlock()

	if e, ok := engines.built[kind]; ok {
		return e, nil
	}

	var e goldmark.Extender
	switch kind {
	case HighlighterChroma:
		e = buildChromaEngine()
	case HighlighterInline:
		e = buildInlineEngine()
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidHighlighter, kind)
	}

	engines.built[kind] = e
	engines.builds++
	return e, nil
}

// engineBuildCount reports how many engines have been constructed since the
// last reset. Exposed for tests observing cache eviction and memoization.
func engineBuildCount() int {
	engines.mu.Lock()
	defer engines.mu.Unlock()
	return engines.builds
}

// resetEngines drops all memoized engines and the build counter. Test hook;
// production code never needs it.
func resetEngines() {
	engines.mu.Lock()
	defer engines.mu.Unlock()
	engines.built = make(map[string]goldmark.Extender)
	engines.builds = 0
}

// buildChromaEngine returns the class-based variant. Output carries
// prefix-classed token spans and relies on an external stylesheet.
func buildChromaEngine() goldmark.Extender {
	primeLexers()
	return highlighting.NewHighlighting(
		highlighting.WithStyle(highlightStyle),
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(tokenClassPrefix),
			chromahtml.PreventSurroundingPre(true),
			chromahtml.TabWidth(4),
		),
		highlighting.WithWrapperRenderer(wrapCodeBlock),
	)
}

// buildInlineEngine returns the inline-style variant: token colors embedded
// as style attributes, no stylesheet needed.
func buildInlineEngine() goldmark.Extender {
	return highlighting.NewHighlighting(
		highlighting.WithStyle(highlightStyle),
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.TabWidth(4),
		),
		highlighting.WithWrapperRenderer(wrapCodeBlock),
	)
}

// primeLexers forces grammar construction for a fixed set of common
// languages so the cost is paid once at engine build time.
func primeLexers() {
	styles.Get(highlightStyle)
	for _, lang := range commonLanguages {
		if l := lexers.Get(lang); l != nil {
			l.Config()
		}
	}
}

// unsafeLangChars strips anything that cannot appear in a class attribute
// built from fence info text.
var unsafeLangChars = regexp.MustCompile(`[^a-zA-Z0-9_+\-#.]`)

// wrapCodeBlock writes the pre/code wrapper around highlighted token output,
// keeping the language-* class that plain goldmark rendering would have
// produced. Downstream tree transforms rely on this uniform shape.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if !entering {
		_, _ = w.WriteString("</code></pre>\n")
		return
	}
	if lang, ok := c.Language(); ok && len(lang) > 0 {
		clean := unsafeLangChars.ReplaceAllString(string(lang), "")
		_, _ = w.WriteString(`<pre><code class="language-` + clean + `">`)
		return
	}
	_, _ = w.WriteString("<pre><code>")
}
