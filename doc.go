// Package md2html renders GitHub Flavored Markdown to sanitized HTML.
//
// # Quick Start
//
// Create a converter and render:
//
//	conv := md2html.NewConverter()
//	html, err := conv.Render(ctx, "# Hello\n\nWorld", md2html.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Use RenderWithMeta to collect the table of contents and frontmatter in the
// same pass:
//
//	res, err := conv.RenderWithMeta(ctx, content, md2html.Options{
//	    Highlighter: md2html.HighlighterChroma,
//	    LineNumbers: true,
//	})
//	// res.HTML, res.TOC, res.Frontmatter
//
// # Rendering Pipeline
//
// Each render runs a fixed sequence of stages:
//
//  1. Frontmatter recognition and extraction (YAML block at document start)
//  2. Markdown parsing with GFM extensions, emoji, math, and heading ids
//  3. Caller-supplied parse stages, TOC collection
//  4. Conversion to an HTML tree (raw HTML passed through)
//  5. Tree transforms: alert blockquotes, heading anchors, base-URL
//     resolution, code-block wrapping, line splitting, caller-supplied
//     convert stages
//  6. Sanitization against a configuration-derived allow-list
//  7. Inline unwrapping (when requested) and serialization
//
// Pipelines are compiled per configuration and memoized in a bounded LRU
// cache; configurations carrying caller-supplied stages are always assembled
// fresh. Use Warm to pay assembly cost (including highlighter grammar-table
// loading) before the first real request.
//
// # Sanitization
//
// Sanitization is on by default and additive-only: options may widen the
// allow-list (iframes, math markup) but script elements, event-handler
// attributes, and dangerous URL schemes are always stripped. Setting
// Options.DisableSanitize returns the pipeline output unfiltered; the only
// guarantee then is that rendering does not fail.
//
// # Concurrency
//
// A Converter is safe for concurrent use. Renders share compiled pipelines
// but carry their own working tree and slugger state, so concurrent renders
// of the same configuration do not interfere.
package md2html
