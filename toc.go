package md2html

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-md2html/internal/slugutil"
)

// docIDs plugs the per-document slugger into goldmark's heading ID
// generation, so rendered ids and extracted TOC slugs come from the same
// algorithm and the same collision state.
type docIDs struct {
	slugger *slugutil.Slugger
}

var _ parser.IDs = (*docIDs)(nil)

func newDocIDs() *docIDs {
	return &docIDs{slugger: slugutil.New()}
}

func (d *docIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(d.slugger.Slug(string(value)))
}

func (d *docIDs) Put(value []byte) {}

// collectTOC walks the parsed document and returns one entry per heading, in
// document order. Runs after heading-id assignment and before anchor-icon
// injection, so the text excludes decoration and the slug equals the id
// attribute placed into the final HTML.
func collectTOC(doc ast.Node, source []byte) []TocEntry {
	var entries []TocEntry
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		var slug string
		if id, found := h.AttributeString("id"); found {
			if b, isBytes := id.([]byte); isBytes {
				slug = string(b)
			}
		}
		entries = append(entries, TocEntry{
			Text:  flattenText(h, source),
			Depth: h.Level,
			Slug:  slug,
		})
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// flattenText returns the concatenated text content of a node's subtree with
// all formatting markup stripped.
func flattenText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
