package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"
)

// ArticleRef is one post's date and title, for the dates/titles report
type ArticleRef struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// Stats accumulates per-year article counts across the crawl
type Stats struct {
	ArticlesPerYear map[string]int `json:"articles_per_year"`
	TotalArticles   int            `json:"total_articles"`
	Articles        []ArticleRef   `json:"articles"`
}

// NewStats creates empty statistics
func NewStats() *Stats {
	return &Stats{ArticlesPerYear: make(map[string]int)}
}

// LoadStats restores statistics from path. A missing file means zero stats.
func LoadStats(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewStats(), nil
		}
		return nil, fmt.Errorf("read crawl stats: %w", err)
	}

	stats := NewStats()
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("parse crawl stats %s: %w", path, err)
	}
	if stats.ArticlesPerYear == nil {
		stats.ArticlesPerYear = make(map[string]int)
	}
	return stats, nil
}

// Save persists the statistics to path
func (st *Stats) Save(path string) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal crawl stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write crawl stats: %w", err)
	}
	return nil
}

// Update folds newly extracted posts into the statistics
func (st *Stats) Update(posts []Post) {
	for _, post := range posts {
		st.ArticlesPerYear[post.Year]++
		st.Articles = append(st.Articles, ArticleRef{Date: post.EntryDate, Title: post.Title})
	}
	st.TotalArticles += len(posts)
}

// WriteDatesTitles writes the report file: a per-year summary, a blank line,
// then one dated line per post.
func (st *Stats) WriteDatesTitles(path string) error {
	var b strings.Builder

	years := make([]string, 0, len(st.ArticlesPerYear))
	for year := range st.ArticlesPerYear {
		years = append(years, year)
	}
	sort.Strings(years)
	for _, year := range years {
		fmt.Fprintf(&b, "%s, %d posts\n", year, st.ArticlesPerYear[year])
	}
	b.WriteString("\n")

	for _, article := range st.Articles {
		stamp := article.Date
		if at, err := time.Parse(time.RFC3339, article.Date); err == nil {
			stamp = at.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "%s %s\n", stamp, article.Title)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write dates/titles report: %w", err)
	}
	return nil
}
