package md2html

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// assembleCount tracks pipeline assemblies so tests can observe cache hits
// and evictions without poking at cache internals.
var assembleCount atomic.Int64

// pipeline is an assembled, immutable sequence of transform stages bound to
// one configuration. Safe for concurrent reuse: per-render state lives in a
// fresh parser context and a fresh tree, never in the pipeline itself.
type pipeline struct {
	md          goldmark.Markdown
	parseStages []ASTStage
	treeStages  []TreeStage
	policy      *bluemonday.Policy // nil when sanitization is disabled
	inline      bool
}

// assemble compiles options into a pipeline. The backbone order is fixed:
// parse and its extensions (GFM, emoji, math, highlighting) run inside the
// goldmark instance; tree transforms then run in the order built here.
// Reordering changes semantics, not style: TOC reads ids before anchor icons
// exist, URLs resolve before the sanitizer inspects them, caller stages run
// before the safety net, inline unwrap sees final sanitized structure.
func assemble(opts Options) (*pipeline, error) {
	assembleCount.Add(1)

	exts := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
	}
	if !opts.DisableEmoji {
		exts = append(exts, emoji.Emoji)
	}
	if opts.Math != nil && opts.Math.Extension != nil {
		exts = append(exts, opts.Math.Extension)
	}
	if opts.Highlighter != "" {
		engine, err := highlightEngine(opts.Highlighter)
		if err != nil {
			return nil, err
		}
		exts = append(exts, engine)
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // raw HTML passes through; the sanitizer is the safety net
			gmhtml.WithXHTML(),
		),
	)

	treeStages := []TreeStage{
		alertTransformer{},
		anchorInjector{},
		newURLResolver(opts.baseURL()),
		codeBlockRestructurer{},
	}
	if opts.LineNumbers {
		treeStages = append(treeStages, lineSplitter{})
	}
	treeStages = append(treeStages, opts.ConvertStages...)

	p := &pipeline{
		md:          md,
		parseStages: opts.ParseStages,
		treeStages:  treeStages,
		inline:      opts.Inline,
	}
	if !opts.DisableSanitize {
		p.policy = buildPolicy(opts)
	}
	return p, nil
}

// run executes the pipeline over one document. The context is consulted
// between stages; there is no internal parallelism.
func (p *pipeline) run(ctx context.Context, markdown string) (*Result, error) {
	src := normalizeLineEndings(markdown)
	block, body := splitFrontmatter(src)

	res := &Result{Frontmatter: parseFrontmatterBlock(block)}
	if strings.TrimSpace(body) == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := []byte(body)
	pctx := parser.NewContext(parser.WithIDs(newDocIDs()))
	doc := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))

	for i, st := range p.parseStages {
		if err := st.Transform(doc, source); err != nil {
			return nil, fmt.Errorf("%w (stage %d): %w", ErrParseStage, i, err)
		}
	}

	res.TOC = collectTOC(doc, source)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.md.Renderer().Render(&buf, source, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	root, err := parseFragment(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	for i, st := range p.treeStages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := st.Transform(root); err != nil {
			return nil, fmt.Errorf("%w (stage %d): %w", ErrConvertStage, i, err)
		}
	}

	out, err := renderFragment(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	if p.policy != nil {
		out = p.policy.Sanitize(out)
	}
	if p.inline {
		out, err = unwrapParagraphs(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}

	res.HTML = out
	return res, nil
}

// parseFragment parses an HTML fragment into a synthetic body container so
// tree stages can treat top-level nodes uniformly.
func parseFragment(fragment string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// renderFragment serializes the container's children back to a string.
func renderFragment(root *html.Node) (string, error) {
	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
