package md2html_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html"
)

// Example demonstrates basic markdown to sanitized HTML rendering.
func Example() {
	conv := md2html.NewConverter()

	out, err := conv.Render(context.Background(), "# Hello World\n\nThis is a test.", md2html.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(out, `<h1 id="hello-world">`) {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_withBaseURL demonstrates resolving relative links against a base.
func Example_withBaseURL() {
	conv := md2html.NewConverter()

	out, err := conv.Render(context.Background(), "[setup guide](./setup.md)", md2html.Options{
		BaseURL: "https://example.com/docs/",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(out, `href="https://example.com/docs/setup.md"`) {
		fmt.Println("Relative link resolved")
	}
	// Output: Relative link resolved
}

// Example_withHighlighting demonstrates class-based syntax highlighting.
func Example_withHighlighting() {
	conv := md2html.NewConverter()

	markdown := "```go\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n```"

	out, err := conv.Render(context.Background(), markdown, md2html.Options{
		Highlighter: md2html.HighlighterChroma,
		LineNumbers: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(out, "language-go") && strings.Contains(out, `class="line"`) {
		fmt.Println("Code block highlighted")
	}
	// Output: Code block highlighted
}

// Example_inline demonstrates inline mode for embedding rendered snippets
// inside existing markup.
func Example_inline() {
	conv := md2html.NewConverter()

	out, err := conv.Render(context.Background(), "some *emphasized* text", md2html.Options{
		Inline: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output: some <em>emphasized</em> text
}

// ExampleConverter_RenderWithMeta demonstrates collecting the TOC and
// frontmatter alongside the HTML in a single pass.
func ExampleConverter_RenderWithMeta() {
	conv := md2html.NewConverter()

	markdown := `---
title: Release Notes
---

# Overview

## Changes

## Fixes
`

	res, err := conv.RenderWithMeta(context.Background(), markdown, md2html.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("title:", res.Frontmatter["title"])
	for _, e := range res.TOC {
		fmt.Printf("h%d %s -> #%s\n", e.Depth, e.Text, e.Slug)
	}
	// Output:
	// title: Release Notes
	// h1 Overview -> #overview
	// h2 Changes -> #changes
	// h2 Fixes -> #fixes
}

// ExampleConverter_ExtractTOC demonstrates heading extraction without a full
// render.
func ExampleConverter_ExtractTOC() {
	conv := md2html.NewConverter()

	for _, e := range conv.ExtractTOC("# First\n## Second\n# Third\n") {
		fmt.Printf("%d %s\n", e.Depth, e.Slug)
	}
	// Output:
	// 1 first
	// 2 second
	// 1 third
}
