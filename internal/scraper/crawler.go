package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/23min/devkit/internal/textutil"
)

// Config names the crawl's output locations
type Config struct {
	OutputDir       string
	StateFile       string
	StatsFile       string
	DatesTitlesFile string
	ErrorsFile      string
}

// DefaultConfig returns the conventional file layout
func DefaultConfig() Config {
	return Config{
		OutputDir:       "blog_posts",
		StateFile:       "crawl_state.json",
		StatsFile:       "crawl_stats.json",
		DatesTitlesFile: "post_dates_titles.txt",
		ErrorsFile:      "errors_404.txt",
	}
}

// Crawler walks archive month pages from a start URL, saving posts and
// discovering further months from each page's Archives widget.
type Crawler struct {
	fetcher *Fetcher
	config  Config
	logger  *slog.Logger
}

// New creates a crawler
func New(config Config, logger *slog.Logger) *Crawler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crawler{
		fetcher: NewFetcher(logger),
		config:  config,
		logger:  logger,
	}
}

// Crawl runs until the queue is empty or ctx is cancelled. State persists
// after every page, so a killed crawl resumes where it stopped.
func (c *Crawler) Crawl(ctx context.Context, startURL string) error {
	if err := os.MkdirAll(c.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	state, err := LoadState(c.config.StateFile)
	if err != nil {
		return err
	}
	stats, err := LoadStats(c.config.StatsFile)
	if err != nil {
		return err
	}

	if len(state.URLsToCrawl) == 0 {
		state.URLsToCrawl = []string{startURL}
	}
	c.logger.Info("starting crawl", "queue", len(state.URLsToCrawl), "crawled", len(state.CrawledURLs))

	for len(state.URLsToCrawl) > 0 {
		if err := ctx.Err(); err != nil {
			c.persist(state, stats)
			return err
		}

		current := state.URLsToCrawl[0]
		state.URLsToCrawl = state.URLsToCrawl[1:]

		key := textutil.MonthKey(current)
		if state.IsCrawled(key) {
			continue
		}

		doc, err := c.fetcher.Fetch(ctx, current)
		if errors.Is(err, ErrNotFound) {
			state.Errors404 = append(state.Errors404, current)
			if err := state.SaveErrors(c.config.ErrorsFile); err != nil {
				c.logger.Error("failed to save 404 list", "error", err)
			}
			continue
		}
		if err != nil {
			// Retries are exhausted; requeue at the back and move on.
			c.logger.Error("giving up on page for now", "url", current, "error", err)
			state.URLsToCrawl = append(state.URLsToCrawl, current)
			c.persist(state, stats)
			continue
		}

		posts := ExtractPosts(doc)
		for i := range posts {
			if err := posts[i].SaveFiles(c.config.OutputDir); err != nil {
				return err
			}
		}
		stats.Update(posts)

		for _, link := range ExtractArchiveLinks(doc) {
			linkKey := textutil.MonthKey(link)
			if linkKey == "" || state.IsCrawled(linkKey) || state.Queued(link) {
				continue
			}
			state.URLsToCrawl = append(state.URLsToCrawl, link)
		}

		state.MarkCrawled(key)
		c.persist(state, stats)
		c.logger.Info("crawled page", "url", current, "posts", len(posts), "queue", len(state.URLsToCrawl))
	}

	c.logger.Info("crawl complete", "articles", stats.TotalArticles, "errors_404", len(state.Errors404))
	return nil
}

// persist saves everything that can be saved; failures are logged, not
// fatal, so a full disk does not lose the in-memory crawl.
func (c *Crawler) persist(state *State, stats *Stats) {
	if err := state.Save(c.config.StateFile); err != nil {
		c.logger.Error("failed to save state", "error", err)
	}
	if err := stats.Save(c.config.StatsFile); err != nil {
		c.logger.Error("failed to save stats", "error", err)
	}
	if err := stats.WriteDatesTitles(c.config.DatesTitlesFile); err != nil {
		c.logger.Error("failed to save dates/titles", "error", err)
	}
	if err := state.SaveErrors(c.config.ErrorsFile); err != nil {
		c.logger.Error("failed to save 404 list", "error", err)
	}
}
