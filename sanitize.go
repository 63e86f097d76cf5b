package md2html

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// headingElements in allow-list order.
var headingElements = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// mathMLTags is the fixed MathML surface admitted when a math plugin is
// configured. Bundle-declared additions extend, never replace, this set.
var mathMLTags = []string{
	"math", "semantics", "annotation", "mrow", "mi", "mo", "mn", "ms",
	"mtext", "mspace", "msup", "msub", "msubsup", "mfrac", "msqrt", "mroot",
	"munder", "mover", "munderover", "mtable", "mtr", "mtd",
}

// inlineStyleProps are the CSS properties chroma emits in inline-style mode.
var inlineStyleProps = []string{
	"color", "background-color", "font-weight", "font-style", "text-decoration",
}

// octiconPathData is the GitHub octicon-link icon injected into headings.
const octiconPathData = "m7.775 3.275 1.25-1.25a3.5 3.5 0 1 1 4.95 4.95l-2.5 2.5a3.5 3.5 0 0 1-4.95 0 .751.751 0 0 1 .018-1.042.751.751 0 0 1 1.042-.018 1.998 1.998 0 0 0 2.83 0l2.5-2.5a2.002 2.002 0 0 0-2.83-2.83l-.977.977a.75.75 0 0 1-1.06-1.06Zm-4.69 9.64a1.998 1.998 0 0 0 2.83 0l.977-.977a.75.75 0 0 1 1.06 1.06l-1.25 1.25a3.5 3.5 0 1 1-4.95-4.95l2.5-2.5a3.5 3.5 0 0 1 4.95 0 .751.751 0 0 1-.018 1.042.751.751 0 0 1-1.042.018 1.998 1.998 0 0 0-2.83 0l-2.5 2.5a1.998 1.998 0 0 0 0 2.83Z"

// classPattern builds a regexp accepting a class attribute whose
// space-separated tokens each match one of the given single-token patterns.
// Works whether the sanitizer matches whole attribute values or individual
// class tokens.
func classPattern(tokenPatterns ...string) *regexp.Regexp {
	alt := "(?:" + strings.Join(tokenPatterns, "|") + ")"
	return regexp.MustCompile(`^` + alt + `(?:\s+` + alt + `)*$`)
}

// buildPolicy derives the sanitization allow-list from render options.
// The baseline safe set always applies: script, style, event handlers, and
// dangerous URL schemes are forbidden no matter what the options say; options
// may only widen the set. Element ids pass through verbatim so heading and
// footnote anchors keep matching the hrefs generated earlier in the pipeline.
func buildPolicy(opts Options) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowDataURIImages()

	// Heading ids and anchor decoration.
	p.AllowAttrs("id").OnElements(headingElements...)
	p.AllowAttrs("id", "aria-hidden", "tabindex").OnElements("a")
	p.AllowAttrs("class").Matching(classPattern(`anchor`, `footnote-ref`, `footnote-backref`)).OnElements("a")
	p.AllowAttrs("role").Matching(classPattern(`doc-noteref`, `doc-backlink`)).OnElements("a")

	// Heading-anchor icons: a tightly restricted SVG surface.
	p.AllowElements("svg", "path")
	p.AllowAttrs("class").Matching(classPattern(`octicon`, `octicon-link`)).OnElements("svg")
	p.AllowAttrs("viewbox", "viewBox", "width", "height", "aria-hidden", "version").OnElements("svg")
	p.AllowAttrs("d", "fill-rule").OnElements("path")

	// Code blocks: language class, highlighter token spans, line wrappers.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[a-zA-Z0-9_+\-#.]+$`)).OnElements("code")
	spanClasses := []string{tokenClassPrefix + `[a-zA-Z0-9]+`, `line`, `cl`, `code-lang`}
	if opts.Math != nil {
		spanClasses = append(spanClasses, opts.Math.Sanitize.ClassPatterns...)
	}
	p.AllowAttrs("class").Matching(classPattern(spanClasses...)).OnElements("span")
	p.AllowAttrs("class").Matching(classPattern(`chroma`, `highlight`)).OnElements("pre")
	p.AllowAttrs("data-line-numbers").Matching(regexp.MustCompile(`^true$`)).OnElements("pre")

	// Structural wrappers: code containers, alerts, footnotes, and
	// CSS-module style class names.
	p.AllowAttrs("class").Matching(classPattern(
		`highlight`, `code-header`,
		`markdown-alert`, `markdown-alert-(?:note|tip|important|warning|caution)`,
		`footnotes`,
		`[a-z][a-zA-Z0-9-]*__[a-zA-Z0-9-]+`,
	)).OnElements("div")
	p.AllowAttrs("role").Matching(regexp.MustCompile(`^doc-endnotes$`)).OnElements("div")
	p.AllowAttrs("class").Matching(classPattern(`markdown-alert-title`)).OnElements("p")

	// Footnote anchors.
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^fn(?:ref)?:[\w:-]+$`)).OnElements("li", "sup")

	// Task-list checkboxes.
	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")

	// Iframes only on explicit opt-in, and never srcdoc: inline documents
	// would smuggle arbitrary markup past the URL checks.
	if opts.AllowIframes {
		p.AllowAttrs("src", "width", "height", "frameborder").OnElements("iframe")
	}

	// Math output: fixed MathML surface plus whatever the bundle declares.
	if opts.Math != nil {
		p.AllowElements(mathMLTags...)
		p.AllowAttrs("xmlns", "display").OnElements("math")
		p.AllowAttrs("encoding").OnElements("annotation")

		ms := opts.Math.Sanitize
		if len(ms.Tags) > 0 {
			p.AllowElements(ms.Tags...)
			if len(ms.Attrs) > 0 {
				p.AllowAttrs(ms.Attrs...).OnElements(ms.Tags...)
			}
		}
		for tag, attrs := range ms.TagAttrs {
			p.AllowAttrs(attrs...).OnElements(tag)
		}
	}

	// Inline-style highlighting embeds colors as style attributes; admit
	// only the properties chroma emits.
	if opts.Highlighter == HighlighterInline {
		p.AllowAttrs("style").OnElements("span", "pre", "code")
		p.AllowStyles(inlineStyleProps...).OnElements("span", "pre", "code")
	}

	return p
}
