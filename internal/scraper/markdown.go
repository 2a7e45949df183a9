package scraper

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Markdown converts an extracted entry-content subtree to Markdown. It
// covers the markup the archived blog actually uses: paragraphs, emphasis,
// links, headings, lists, blockquotes, and code. Unknown elements pass
// their children through.
func Markdown(n *html.Node) string {
	var b strings.Builder
	renderChildrenMD(&b, n, false)

	out := strings.TrimSpace(collapseBlankLines(b.String()))
	if out == "" {
		return ""
	}
	return out + "\n"
}

func renderChildrenMD(b *strings.Builder, n *html.Node, pre bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNodeMD(b, c, pre)
	}
}

func renderNodeMD(b *strings.Builder, n *html.Node, pre bool) {
	if n.Type == html.TextNode {
		if pre {
			b.WriteString(n.Data)
		} else {
			b.WriteString(collapseSpace(n.Data))
		}
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.Data {
	case "p", "div":
		renderChildrenMD(b, n, pre)
		b.WriteString("\n\n")
	case "br":
		b.WriteString("\n")
	case "strong", "b":
		b.WriteString("**")
		renderChildrenMD(b, n, pre)
		b.WriteString("**")
	case "em", "i":
		b.WriteString("*")
		renderChildrenMD(b, n, pre)
		b.WriteString("*")
	case "a":
		var inner strings.Builder
		renderChildrenMD(&inner, n, pre)
		if href := attr(n, "href"); href != "" {
			fmt.Fprintf(b, "[%s](%s)", inner.String(), href)
		} else {
			b.WriteString(inner.String())
		}
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.WriteString(strings.Repeat("#", int(n.Data[1]-'0')) + " ")
		renderChildrenMD(b, n, pre)
		b.WriteString("\n\n")
	case "ul", "ol":
		renderChildrenMD(b, n, pre)
		b.WriteString("\n")
	case "li":
		b.WriteString("- ")
		renderChildrenMD(b, n, pre)
		b.WriteString("\n")
	case "blockquote":
		var inner strings.Builder
		renderChildrenMD(&inner, n, pre)
		for _, line := range strings.Split(strings.TrimSpace(inner.String()), "\n") {
			b.WriteString("> " + line + "\n")
		}
		b.WriteString("\n")
	case "code":
		if pre {
			renderChildrenMD(b, n, pre)
		} else {
			b.WriteString("`")
			renderChildrenMD(b, n, pre)
			b.WriteString("`")
		}
	case "pre":
		b.WriteString("```\n")
		renderChildrenMD(b, n, true)
		b.WriteString("\n```\n\n")
	case "script", "style", "img":
		// dropped
	default:
		renderChildrenMD(b, n, pre)
	}
}

// collapseSpace folds runs of whitespace into single spaces, keeping leading
// and trailing separation intact.
func collapseSpace(s string) string {
	if s == "" {
		return s
	}
	fields := strings.Fields(s)
	out := strings.Join(fields, " ")
	if out == "" {
		// whitespace-only text node separates inline elements
		return " "
	}
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// collapseBlankLines reduces runs of three or more newlines to exactly two.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
