package scraper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/23min/devkit/internal/textutil"
)

// SaveFiles writes the post as paired Markdown and HTML files in dir, named
// date-id-title with a sanitized title.
func (p *Post) SaveFiles(dir string) error {
	base := fmt.Sprintf("%s-%s-%s",
		textutil.DateStamp(p.EntryDate), p.ID, textutil.SanitizeFilename(p.Title))

	md := fmt.Sprintf("# %s\n\n%s", p.Title, p.Content)
	if err := os.WriteFile(filepath.Join(dir, base+".md"), []byte(md), 0o644); err != nil {
		return fmt.Errorf("save post markdown: %w", err)
	}

	page := fmt.Sprintf("<h1>%s</h1>\n\n%s", p.Title, p.ContentHTML)
	if err := os.WriteFile(filepath.Join(dir, base+".html"), []byte(page), 0o644); err != nil {
		return fmt.Errorf("save post html: %w", err)
	}
	return nil
}
