package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// renderFlags holds all flags for the render command.
type renderFlags struct {
	output      string
	baseURL     string
	highlighter string
	lineNumbers bool
	inline      bool
	iframes     bool
	unsafe      bool
	noEmoji     bool
	math        bool
	toc         bool
	frontmatter bool
	verbose     bool
	help        bool
}

// parseRenderFlags parses render flags from args (excluding argv[0]) and
// returns the remaining positional arguments.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.baseURL, "base-url", "b", "", "absolute base URL for resolving relative links")
	fs.StringVar(&f.highlighter, "highlighter", "", "syntax highlighter: chroma, inline")
	fs.BoolVar(&f.lineNumbers, "line-numbers", false, "wrap highlighted code lines for line numbering")
	fs.BoolVar(&f.inline, "inline", false, "strip paragraph wrapping for inline embedding")
	fs.BoolVar(&f.iframes, "iframes", false, "allow iframe embeds through the sanitizer")
	fs.BoolVar(&f.unsafe, "unsafe", false, "disable HTML sanitization")
	fs.BoolVar(&f.noEmoji, "no-emoji", false, "disable :shortcode: emoji substitution")
	fs.BoolVar(&f.math, "math", false, "enable MathJax-compatible math rendering")
	fs.BoolVar(&f.toc, "toc", false, "print the table of contents as YAML instead of HTML")
	fs.BoolVar(&f.frontmatter, "frontmatter", false, "print the YAML frontmatter instead of HTML")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log pipeline details to stderr")
	fs.BoolVarP(&f.help, "help", "h", false, "show usage")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
