package md2html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// languageClassPrefix marks the code element class carrying the fence info
// language.
const languageClassPrefix = "language-"

// codeBlockRestructurer wraps every block-code container in a consistent
// div.highlight, prepending a language header when the fence declared one.
// The highlighted markup inside code is not touched; this is structural
// rewriting only.
type codeBlockRestructurer struct{}

func (codeBlockRestructurer) Transform(root *html.Node) error {
	// Collect first: replacing a pre while walking would skip siblings.
	pres := htmlutil.Collect(root, func(n *html.Node) bool {
		return htmlutil.IsElement(n, "pre") && htmlutil.FirstChildElement(n, "code") != nil
	})

	for _, pre := range pres {
		code := htmlutil.FirstChildElement(pre, "code")

		wrapper := htmlutil.Element("div", "class", "highlight")
		htmlutil.ReplaceWith(pre, wrapper)

		if lang := codeLanguage(code); lang != "" {
			header := htmlutil.Element("div", "class", "code-header")
			langSpan := htmlutil.Element("span", "class", "code-lang")
			langSpan.AppendChild(htmlutil.TextNode(lang))
			header.AppendChild(langSpan)
			wrapper.AppendChild(header)
		}
		wrapper.AppendChild(pre)
	}
	return nil
}

// codeLanguage extracts the language name from a code element's language-*
// class, or "" when none is present.
func codeLanguage(code *html.Node) string {
	classes, ok := htmlutil.Attr(code, "class")
	if !ok {
		return ""
	}
	for _, c := range strings.Fields(classes) {
		if rest, found := strings.CutPrefix(c, languageClassPrefix); found && rest != "" {
			return rest
		}
	}
	return ""
}
