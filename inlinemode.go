package md2html

import (
	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// unwrapParagraphs replaces every p element with its own children, splicing
// them into the parent's child list. Runs on the final sanitized fragment so
// it sees the structure the caller would otherwise receive; inline content
// and sibling order are preserved.
func unwrapParagraphs(fragment string) (string, error) {
	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}

	paragraphs := htmlutil.Collect(root, func(n *html.Node) bool {
		return htmlutil.IsElement(n, "p")
	})
	for _, p := range paragraphs {
		htmlutil.SpliceChildren(p)
	}

	return renderFragment(root)
}
