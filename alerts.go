package md2html

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// alertMarker matches the GitHub alert marker at the start of a blockquote's
// first paragraph.
var alertMarker = regexp.MustCompile(`^\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]\s*`)

// alertTitles maps the marker keyword to its display title.
var alertTitles = map[string]string{
	"NOTE":      "Note",
	"TIP":       "Tip",
	"IMPORTANT": "Important",
	"WARNING":   "Warning",
	"CAUTION":   "Caution",
}

// alertTransformer rewrites GitHub alert blockquotes ("> [!NOTE]") into
// classed divs with a title paragraph. Blockquotes without a marker are left
// untouched.
type alertTransformer struct{}

func (alertTransformer) Transform(root *html.Node) error {
	quotes := htmlutil.Collect(root, func(n *html.Node) bool {
		return htmlutil.IsElement(n, "blockquote")
	})

	for _, quote := range quotes {
		first := htmlutil.FirstChildElement(quote, "p")
		if first == nil {
			continue
		}
		text := first.FirstChild
		if text == nil || text.Type != html.TextNode {
			continue
		}
		m := alertMarker.FindString(text.Data)
		if m == "" {
			continue
		}

		kind := strings.ToLower(alertMarker.FindStringSubmatch(text.Data)[1])
		stripMarker(first, text, m)

		quote.Data = "div"
		quote.DataAtom = 0
		quote.Attr = nil
		htmlutil.SetAttr(quote, "class", "markdown-alert markdown-alert-"+kind)

		title := htmlutil.Element("p", "class", "markdown-alert-title")
		title.AppendChild(htmlutil.TextNode(alertTitles[strings.ToUpper(kind)]))
		quote.InsertBefore(title, quote.FirstChild)
	}
	return nil
}

// stripMarker removes the alert marker text plus the line break separating
// it from the alert body.
func stripMarker(p, text *html.Node, marker string) {
	text.Data = strings.TrimPrefix(text.Data, marker)
	if text.Data == "" || text.Data == "\n" {
		next := text.NextSibling
		p.RemoveChild(text)
		if next != nil && htmlutil.IsElement(next, "br") {
			after := next.NextSibling
			p.RemoveChild(next)
			if after != nil && after.Type == html.TextNode {
				after.Data = strings.TrimPrefix(after.Data, "\n")
			}
		}
	}
}
