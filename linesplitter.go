package md2html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-md2html/internal/htmlutil"
)

// lineClass wraps each re-segmented code line.
const lineClass = "line"

// lineNumbersAttr marks a pre as line-numbered so stylesheets can render
// counters.
const lineNumbersAttr = "data-line-numbers"

// lineSplitter re-segments highlighted code into per-line span wrappers.
// It runs after highlighting, so it must split token spans at newline
// boundaries without losing their classes: a span whose text crosses lines
// becomes one clone per line segment. Each line span ends with a newline
// text node, so copy-paste reproduces the original source exactly.
type lineSplitter struct{}

func (lineSplitter) Transform(root *html.Node) error {
	pres := htmlutil.Collect(root, func(n *html.Node) bool {
		return htmlutil.IsElement(n, "pre") && htmlutil.FirstChildElement(n, "code") != nil
	})

	for _, pre := range pres {
		code := htmlutil.FirstChildElement(pre, "code")
		splitCodeLines(code)
		htmlutil.SetAttr(pre, lineNumbersAttr, "true")
	}
	return nil
}

// splitCodeLines rebuilds the code element's children as span.line wrappers.
func splitCodeLines(code *html.Node) {
	lines := partitionLines(htmlutil.DetachChildren(code))

	// Code fences end with a newline, leaving a spurious empty final line.
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	// An empty code block still yields exactly one empty line, never zero.
	if len(lines) == 0 {
		lines = [][]*html.Node{{}}
	}

	for _, line := range lines {
		span := htmlutil.Element("span", "class", lineClass)
		for _, n := range line {
			span.AppendChild(n)
		}
		span.AppendChild(htmlutil.TextNode("\n"))
		code.AppendChild(span)
	}
}

// partitionLines splits a node sequence into lines at newline characters.
// Text nodes split directly; element nodes whose text spans lines are cloned
// per segment, each clone keeping the original tag and attributes but only
// that segment's text.
func partitionLines(nodes []*html.Node) [][]*html.Node {
	lines := [][]*html.Node{{}}
	current := func() int { return len(lines) - 1 }

	appendNode := func(n *html.Node) {
		lines[current()] = append(lines[current()], n)
	}

	for _, n := range nodes {
		if n.Type == html.TextNode {
			segments := strings.Split(n.Data, "\n")
			for i, seg := range segments {
				if i > 0 {
					lines = append(lines, nil)
				}
				if seg != "" {
					appendNode(htmlutil.TextNode(seg))
				}
			}
			continue
		}

		text := htmlutil.Text(n)
		if !strings.Contains(text, "\n") {
			appendNode(n)
			continue
		}

		segments := strings.Split(text, "\n")
		for i, seg := range segments {
			if i > 0 {
				lines = append(lines, nil)
			}
			if seg != "" {
				clone := htmlutil.CloneShallow(n)
				clone.AppendChild(htmlutil.TextNode(seg))
				appendNode(clone)
			}
		}
	}
	return lines
}
