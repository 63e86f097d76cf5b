package md2html

import (
	"fmt"
	"strings"
)

// fingerprint derives the canonical cache key from the subset of Options
// that affects pipeline shape. The second return is false when the options
// are uncacheable: caller-supplied stages and non-built-in math bundles may
// close over hidden mutable state, so pipelines built from them are always
// assembled fresh.
func fingerprint(o Options) (string, bool) {
	if len(o.ParseStages) > 0 || len(o.ConvertStages) > 0 {
		return "", false
	}
	if o.Math != nil && !o.Math.builtin {
		return "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "base=%s;", o.BaseURL)
	fmt.Fprintf(&sb, "hl=%s;", o.Highlighter)
	if o.Math != nil {
		fmt.Fprintf(&sb, "math=%s;", o.Math.Name)
	} else {
		sb.WriteString("math=;")
	}
	fmt.Fprintf(&sb, "iframes=%t;sanitize=%t;emoji=%t;lines=%t;inline=%t",
		o.AllowIframes, !o.DisableSanitize, !o.DisableEmoji, o.LineNumbers, o.Inline)
	return sb.String(), true
}
