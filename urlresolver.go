package md2html

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// urlAttrs maps element names to the attribute carrying a resolvable URL.
var urlAttrs = map[string]string{
	"a":      "href",
	"img":    "src",
	"video":  "src",
	"audio":  "src",
	"source": "src",
}

// absolutePrefixes classify a reference as already absolute: these are left
// untouched by resolution.
var absolutePrefixes = []string{
	"http://", "https://", "//", "#", "data:", "mailto:", "tel:",
}

// urlResolver rewrites relative link and media URLs against a base URL.
// The base is validated and normalized (trailing slash) before any tree
// processing; malformed URLs inside content fail open per occurrence.
type urlResolver struct {
	base *url.URL
}

func newURLResolver(base *url.URL) *urlResolver {
	return &urlResolver{base: base}
}

func (r *urlResolver) Transform(root *html.Node) error {
	if r.base == nil {
		return nil
	}
	htmlutil.Walk(root, func(n *html.Node) htmlutil.WalkStatus {
		if n.Type != html.ElementNode {
			return htmlutil.WalkContinue
		}
		attr, ok := urlAttrs[n.Data]
		if !ok {
			return htmlutil.WalkContinue
		}
		if val, present := htmlutil.Attr(n, attr); present {
			htmlutil.SetAttr(n, attr, resolveRef(r.base, val))
		}
		return htmlutil.WalkContinue
	})
	return nil
}

// resolveRef resolves raw against base. Already-absolute references pass
// through unchanged; root-relative paths resolve against the base origin;
// everything else resolves against the base's full path. A reference that
// does not parse is returned as-is.
func resolveRef(base *url.URL, raw string) string {
	if raw == "" || isAbsoluteRef(raw) {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}

func isAbsoluteRef(raw string) bool {
	lower := strings.ToLower(raw)
	for _, prefix := range absolutePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
