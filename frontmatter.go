package md2html

import (
	"strings"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// frontmatter fence markers. The opening fence must be the first line of the
// document; the block ends at the first closing fence.
const (
	fenceOpen   = "---"
	fenceClose  = "---"
	fenceEllips = "..."
)

// splitFrontmatter separates a leading YAML frontmatter block from the
// document body. Returns the raw block content (without fences) and the
// remaining body. When no complete block is present the whole input is
// returned as body. Only the first block is recognized; later fence pairs
// are ordinary thematic breaks.
func splitFrontmatter(src string) (block string, body string) {
	rest, ok := strings.CutPrefix(src, fenceOpen+"\n")
	if !ok {
		// A bare "---" with no trailing newline is only a frontmatter
		// opener if a closing fence could follow, which it cannot.
		return "", src
	}

	lines := strings.SplitAfter(rest, "\n")
	var sb strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimSuffix(line, "\n")
		if trimmed == fenceClose || trimmed == fenceEllips {
			return sb.String(), strings.Join(lines[i+1:], "")
		}
		sb.WriteString(line)
	}

	// Unterminated fence: not frontmatter.
	return "", src
}

// parseFrontmatterBlock parses a raw YAML block into a mapping. Absence,
// emptiness, and malformed YAML all yield nil: frontmatter problems degrade
// to "no frontmatter", never to an error.
func parseFrontmatterBlock(block string) map[string]any {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	var m map[string]any
	if err := yamlutil.Unmarshal([]byte(block), &m); err != nil {
		return nil
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
