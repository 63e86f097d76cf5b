package md2html

import (
	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// anchorInjector prepends a GitHub-style octicon link to every heading that
// carries an id. Runs after TOC collection, so the icon never pollutes
// collected heading text.
type anchorInjector struct{}

func (anchorInjector) Transform(root *html.Node) error {
	headings := htmlutil.Collect(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			_, ok := htmlutil.Attr(n, "id")
			return ok
		}
		return false
	})

	for _, h := range headings {
		id, _ := htmlutil.Attr(h, "id")
		anchor := buildAnchor(id)
		if h.FirstChild != nil {
			h.InsertBefore(anchor, h.FirstChild)
		} else {
			h.AppendChild(anchor)
		}
	}
	return nil
}

func buildAnchor(id string) *html.Node {
	anchor := htmlutil.Element("a",
		"class", "anchor",
		"href", "#"+id,
		"aria-hidden", "true",
		"tabindex", "-1",
	)
	svg := htmlutil.Element("svg",
		"class", "octicon octicon-link",
		"viewbox", "0 0 16 16",
		"width", "16",
		"height", "16",
		"aria-hidden", "true",
	)
	path := htmlutil.Element("path", "fill-rule", "evenodd", "d", octiconPathData)
	svg.AppendChild(path)
	anchor.AppendChild(svg)
	return anchor
}
