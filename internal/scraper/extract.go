package scraper

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/23min/devkit/internal/textutil"
)

// Post is one extracted blog post
type Post struct {
	ID          string
	Title       string
	Content     string // Markdown
	EntryDate   string
	ContentHTML string
	Year        string
}

// ExtractPosts pulls all posts out of an archive page: every article element
// with an id inside div#content.
func ExtractPosts(doc *html.Node) []Post {
	content := find(doc, func(n *html.Node) bool {
		return n.Data == "div" && attr(n, "id") == "content"
	})
	if content == nil {
		return nil
	}

	var posts []Post
	for _, article := range findAll(content, func(n *html.Node) bool {
		return n.Data == "article" && attr(n, "id") != ""
	}) {
		title := "No Title"
		if a := find(article, func(n *html.Node) bool {
			return n.Data == "a" && attr(n, "rel") == "bookmark"
		}); a != nil {
			title = strings.TrimSpace(text(a))
		}

		var contentHTML, contentMD string
		if body := find(article, func(n *html.Node) bool {
			return n.Data == "div" && hasClass(n, "entry-content")
		}); body != nil {
			contentHTML = render(body)
			contentMD = Markdown(body)
		}

		date := entryDate(article)

		posts = append(posts, Post{
			ID:          attr(article, "id"),
			Title:       title,
			Content:     contentMD,
			EntryDate:   date,
			ContentHTML: contentHTML,
			Year:        textutil.YearOf(date),
		})
	}
	return posts
}

// entryDate reads the datetime from the time element in the entry-meta
// footer, falling back to its text.
func entryDate(article *html.Node) string {
	footer := find(article, func(n *html.Node) bool {
		return n.Data == "footer" && hasClass(n, "entry-meta")
	})
	if footer == nil {
		return ""
	}
	tm := find(footer, func(n *html.Node) bool {
		return n.Data == "time" && hasClass(n, "entry-date")
	})
	if tm == nil {
		return ""
	}
	if dt := attr(tm, "datetime"); dt != "" {
		return dt
	}
	return strings.TrimSpace(text(tm))
}

// ExtractArchiveLinks returns the hrefs in the Archives sidebar widget.
func ExtractArchiveLinks(doc *html.Node) []string {
	archives := find(doc, func(n *html.Node) bool {
		return n.Data == "aside" && attr(n, "id") == "flexo-archives-3"
	})
	if archives == nil {
		return nil
	}

	var links []string
	for _, a := range findAll(archives, func(n *html.Node) bool {
		return n.Data == "a" && attr(n, "href") != ""
	}) {
		links = append(links, attr(a, "href"))
	}
	return links
}

// node helpers

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// find returns the first element node under n matching pred, depth-first.
func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element node under n matching pred, in document
// order. Matching nodes' subtrees are not searched again.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && pred(c) {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, pred)...)
	}
	return out
}

// text returns the concatenated text content of n.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// render serializes n back to HTML.
func render(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}
