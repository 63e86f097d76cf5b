package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown input")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrTooManyArgs  = errors.New("at most one input file expected")
)

const filePermissions = 0o644

// run reads the input, renders it, and writes the selected output.
func run(ctx context.Context, flags *renderFlags, args []string, deps *Dependencies) error {
	markdown, err := readInput(args, deps)
	if err != nil {
		return err
	}

	opts := md2html.Options{
		BaseURL:         flags.baseURL,
		Highlighter:     flags.highlighter,
		AllowIframes:    flags.iframes,
		DisableSanitize: flags.unsafe,
		DisableEmoji:    flags.noEmoji,
		LineNumbers:     flags.lineNumbers,
		Inline:          flags.inline,
	}
	if flags.math {
		opts.Math = md2html.MathJax()
	}

	conv := md2html.NewConverter()
	res, err := conv.RenderWithMeta(ctx, markdown, opts)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(deps.Stderr, "rendered %d bytes of markdown to %d bytes of HTML (%d headings)\n",
			len(markdown), len(res.HTML), len(res.TOC))
	}

	out, err := selectOutput(flags, res)
	if err != nil {
		return err
	}
	return writeOutput(flags.output, out, deps)
}

// readInput reads the single positional file, or stdin when none is given.
func readInput(args []string, deps *Dependencies) (string, error) {
	switch len(args) {
	case 0:
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		return string(data), nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrReadMarkdown, args[0], err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrTooManyArgs, len(args))
	}
}

// selectOutput picks the requested view of the result: TOC or frontmatter as
// YAML, otherwise the rendered HTML.
func selectOutput(flags *renderFlags, res *md2html.Result) (string, error) {
	switch {
	case flags.toc:
		if len(res.TOC) == 0 {
			return "", nil
		}
		data, err := yamlutil.Marshal(res.TOC)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case flags.frontmatter:
		if res.Frontmatter == nil {
			return "", nil
		}
		data, err := yamlutil.Marshal(res.Frontmatter)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		out := res.HTML
		if out != "" && out[len(out)-1] != '\n' {
			out += "\n"
		}
		return out, nil
	}
}

// writeOutput writes to the output file, or stdout when no file is set.
func writeOutput(path, content string, deps *Dependencies) error {
	if path == "" {
		if _, err := io.WriteString(deps.Stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrWriteOutput, path, err)
	}
	return nil
}
