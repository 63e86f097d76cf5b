package md2html

import (
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	cacheCapacity int
}

// Option configures a Converter.
type Option func(*Converter)

// WithCacheCapacity sets the pipeline cache capacity.
// Panics if n < 1 (programmer error, similar to time.NewTicker).
func WithCacheCapacity(n int) Option {
	if n < 1 {
		panic("md2html: WithCacheCapacity must be positive")
	}
	return func(c *Converter) {
		c.cfg.cacheCapacity = n
	}
}

// Converter renders GitHub Flavored Markdown to sanitized HTML. It is safe
// for concurrent use: compiled pipelines are stateless across renders and
// the pipeline cache guards its own mutation.
type Converter struct {
	cfg   converterConfig
	cache *pipelineCache
	tocMD goldmark.Markdown
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithCacheCapacity).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{cacheCapacity: DefaultCacheCapacity},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.cache = newPipelineCache(c.cfg.cacheCapacity)

	// Lightweight parse-only instance for TOC extraction: GFM and heading
	// ids, nothing else. Slugs match full renders because both paths use
	// the same slugging algorithm with fresh per-document state.
	c.tocMD = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return c
}

// Render converts markdown to an HTML fragment string. Empty or
// whitespace-only input yields empty output. The context is consulted
// between pipeline stages.
func (c *Converter) Render(ctx context.Context, markdown string, opts Options) (string, error) {
	res, err := c.RenderWithMeta(ctx, markdown, opts)
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// RenderWithMeta renders in a single traversal and returns the HTML together
// with the side-collected TOC and frontmatter. The HTML equals what Render
// would produce for the same input and options.
func (c *Converter) RenderWithMeta(ctx context.Context, markdown string, opts Options) (*Result, error) {
	p, err := c.pipelineFor(opts)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, markdown)
}

// ExtractTOC collects headings without rendering. Slugs match the ids a full
// render would assign for the same document.
func (c *Converter) ExtractTOC(markdown string) []TocEntry {
	_, body := splitFrontmatter(normalizeLineEndings(markdown))
	source := []byte(body)

	pctx := parser.NewContext(parser.WithIDs(newDocIDs()))
	doc := c.tocMD.Parser().Parse(text.NewReader(source), parser.WithContext(pctx))
	return collectTOC(doc, source)
}

// ParseFrontmatter parses the document's leading YAML block into a mapping.
// Returns nil when the block is absent, empty, or malformed.
func (c *Converter) ParseFrontmatter(markdown string) map[string]any {
	block, _ := splitFrontmatter(normalizeLineEndings(markdown))
	return parseFrontmatterBlock(block)
}

// Warm forces pipeline construction for the given options without rendering,
// paying assembly cost (including lazy highlighter engine setup) ahead of the
// first real request. Cacheable pipelines are stored for later renders.
func (c *Converter) Warm(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	p, err := assemble(opts)
	if err != nil {
		return err
	}
	if key, ok := fingerprint(opts); ok {
		c.cache.put(key, p)
	}
	return nil
}

// ClearCache empties the pipeline cache unconditionally.
func (c *Converter) ClearCache() {
	c.cache.clear()
}

// pipelineFor returns the pipeline for the given options, consulting the
// cache for cacheable configurations. Custom stages bypass the cache
// entirely: their closures are not part of the fingerprint and may be
// stateful.
func (c *Converter) pipelineFor(opts Options) (*pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	key, cacheable := fingerprint(opts)
	if !cacheable {
		return assemble(opts)
	}
	if p, ok := c.cache.get(key); ok {
		return p, nil
	}

	p, err := assemble(opts)
	if err != nil {
		return nil, err
	}
	c.cache.put(key, p)
	return p, nil
}
