// Package htmlutil provides traversal and mutation helpers for x/net/html
// node trees. It exists so the tree-rewriting stages don't each reimplement
// walking, attribute access, and node surgery.
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WalkStatus controls traversal from a Visitor.
type WalkStatus int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren moves to the next sibling without descending.
	WalkSkipChildren
	// WalkStop aborts the traversal entirely.
	WalkStop
)

// Visitor is called for each node in document order.
type Visitor func(n *html.Node) WalkStatus

// Walk traverses n and its descendants depth-first, honoring the visitor's
// signal. Returns WalkStop if the visitor aborted, WalkContinue otherwise.
func Walk(n *html.Node, v Visitor) WalkStatus {
	switch v(n) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
		return WalkContinue
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if Walk(c, v) == WalkStop {
			return WalkStop
		}
	}
	return WalkContinue
}

// Collect returns every descendant of n (including n) for which match returns
// true. Collecting before mutating keeps rewrites safe: the caller can splice
// nodes without invalidating an in-flight traversal.
func Collect(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(n, func(c *html.Node) WalkStatus {
		if match(c) {
			out = append(out, c)
		}
		return WalkContinue
	})
	return out
}

// IsElement reports whether n is an element node with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// HasClass reports whether the node's class attribute contains the given
// class token.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n and its descendants.
func Text(n *html.Node) string {
	var sb strings.Builder
	Walk(n, func(c *html.Node) WalkStatus {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return WalkContinue
	})
	return sb.String()
}

// FirstChildElement returns the first element child of n with the given tag,
// or nil.
func FirstChildElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, tag) {
			return c
		}
	}
	return nil
}

// CloneShallow copies n's type, tag, and attributes without children.
func CloneShallow(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
	}
	clone.Attr = make([]html.Attribute, len(n.Attr))
	copy(clone.Attr, n.Attr)
	return clone
}

// Detach removes n from its parent, leaving siblings intact. No-op for
// parentless nodes.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// DetachChildren removes and returns all children of n in order.
func DetachChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for n.FirstChild != nil {
		c := n.FirstChild
		n.RemoveChild(c)
		out = append(out, c)
	}
	return out
}

// ReplaceWith swaps old for replacement in old's parent. The replacement must
// be detached.
func ReplaceWith(old, replacement *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(replacement, old)
	parent.RemoveChild(old)
}

// SpliceChildren replaces n with its own children in the parent's child list,
// preserving sibling order.
func SpliceChildren(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for _, c := range DetachChildren(n) {
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// TextNode returns a new text node holding the given content.
func TextNode(content string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: content}
}

// Element returns a new element node with the given tag and optional
// key/value attribute pairs. Panics if attrs has odd length (programmer
// error).
func Element(tag string, attrs ...string) *html.Node {
	if len(attrs)%2 != 0 {
		panic("htmlutil: Element attrs must be key/value pairs")
	}
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}
