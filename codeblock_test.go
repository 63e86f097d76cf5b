package md2html

import (
	"strings"
	"testing"
)

func TestCodeBlockRestructurer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     []string
		wantNot  []string
	}{
		{
			name:     "language block gets header",
			fragment: `<pre><code class="language-go">func main() {}</code></pre>`,
			want: []string{
				`<div class="highlight">`,
				`<div class="code-header">`,
				`<span class="code-lang">go</span>`,
				`<code class="language-go">func main() {}</code>`,
			},
		},
		{
			name:     "no language means no header",
			fragment: `<pre><code>plain text</code></pre>`,
			want:     []string{`<div class="highlight">`, `<pre><code>plain text</code></pre>`},
			wantNot:  []string{"code-header", "code-lang"},
		},
		{
			name:     "pre without code child untouched",
			fragment: `<pre>bare preformatted</pre>`,
			want:     []string{`<pre>bare preformatted</pre>`},
			wantNot:  []string{"highlight"},
		},
		{
			name:     "highlighted markup preserved byte for byte",
			fragment: `<pre><code class="language-py"><span class="hl-k">def</span> f():</code></pre>`,
			want:     []string{`<span class="hl-k">def</span> f():`, `<span class="code-lang">py</span>`},
		},
		{
			name:     "multiple blocks each wrapped",
			fragment: `<pre><code class="language-a">1</code></pre><pre><code class="language-b">2</code></pre>`,
			want:     []string{`<span class="code-lang">a</span>`, `<span class="code-lang">b</span>`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := applyStage(t, codeBlockRestructurer{}, tt.fragment)
			assertContains(t, got, tt.want, tt.wantNot)
		})
	}
}

func TestCodeBlockRestructurer_ExactlyOneWrapper(t *testing.T) {
	t.Parallel()

	got := applyStage(t, codeBlockRestructurer{}, `<pre><code class="language-go">x</code></pre>`)

	if n := strings.Count(got, `<div class="highlight">`); n != 1 {
		t.Errorf("wrapper count = %d, want 1", n)
	}
	if n := strings.Count(got, `<div class="code-header">`); n != 1 {
		t.Errorf("header count = %d, want 1", n)
	}
}

func TestCodeLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{name: "simple", fragment: `<code class="language-go">x</code>`, want: "go"},
		{name: "among other classes", fragment: `<code class="hljs language-rust other">x</code>`, want: "rust"},
		{name: "no language class", fragment: `<code class="hljs">x</code>`, want: ""},
		{name: "no class", fragment: `<code>x</code>`, want: ""},
		{name: "bare prefix ignored", fragment: `<code class="language-">x</code>`, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := parseFragment(tt.fragment)
			if err != nil {
				t.Fatalf("parseFragment() error: %v", err)
			}
			code := root.FirstChild
			if code == nil || code.Data != "code" {
				t.Fatalf("fragment did not parse to a code element")
			}
			if got := codeLanguage(code); got != tt.want {
				t.Errorf("codeLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}
