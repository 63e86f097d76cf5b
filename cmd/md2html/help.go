package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render GitHub Flavored Markdown to sanitized HTML.")
	fmt.Fprintln(w, "Reads from the input file, or stdin when no file is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -b, --base-url <url>    Absolute base URL for resolving relative links")
	fmt.Fprintln(w, "      --highlighter <s>   Syntax highlighter: chroma, inline")
	fmt.Fprintln(w, "      --line-numbers      Wrap highlighted code lines for line numbering")
	fmt.Fprintln(w, "      --inline            Strip paragraph wrapping for inline embedding")
	fmt.Fprintln(w, "      --math              Enable MathJax-compatible math rendering")
	fmt.Fprintln(w, "      --no-emoji          Disable :shortcode: emoji substitution")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sanitization:")
	fmt.Fprintln(w, "      --iframes           Allow iframe embeds through the sanitizer")
	fmt.Fprintln(w, "      --unsafe            Disable HTML sanitization entirely")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintln(w, "      --toc               Print the table of contents as YAML")
	fmt.Fprintln(w, "      --frontmatter       Print the YAML frontmatter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose           Log pipeline details to stderr")
	fmt.Fprintln(w, "  -h, --help              Show this message")
}
