package scraper

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// entryContent parses a fragment and returns the div.entry-content node.
func entryContent(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc := parsePage(t, `<div class="entry-content">`+fragment+`</div>`)
	body := find(doc, func(n *html.Node) bool {
		return n.Data == "div" && hasClass(n, "entry-content")
	})
	if body == nil {
		t.Fatal("fixture has no entry-content div")
	}
	return body
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "paragraphs and emphasis",
			fragment: `<p>One <strong>bold</strong> and <em>italic</em>.</p><p>Two.</p>`,
			want:     "One **bold** and *italic*.\n\nTwo.\n",
		},
		{
			name:     "links",
			fragment: `<p>See <a href="http://example.com">this</a>.</p>`,
			want:     "See [this](http://example.com).\n",
		},
		{
			name:     "headings",
			fragment: `<h2>Section</h2><p>Body.</p>`,
			want:     "## Section\n\nBody.\n",
		},
		{
			name:     "lists",
			fragment: `<ul><li>first</li><li>second</li></ul>`,
			want:     "- first\n- second\n",
		},
		{
			name:     "blockquote",
			fragment: `<blockquote><p>quoted</p></blockquote>`,
			want:     "> quoted\n",
		},
		{
			name:     "inline code",
			fragment: `<p>run <code>uv sync</code> now</p>`,
			want:     "run `uv sync` now\n",
		},
		{
			name:     "empty",
			fragment: ``,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Markdown(entryContent(t, tt.fragment))
			if got != tt.want {
				t.Errorf("Markdown(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestMarkdown_CollapsesWhitespace(t *testing.T) {
	got := Markdown(entryContent(t, "<p>spread\n  across\n  lines</p>"))
	if got != "spread across lines\n" {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestMarkdown_DropsScripts(t *testing.T) {
	got := Markdown(entryContent(t, `<p>keep</p><script>alert(1)</script>`))
	if strings.Contains(got, "alert") {
		t.Errorf("script content leaked: %q", got)
	}
}
