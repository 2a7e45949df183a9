package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// State is the resumable crawl state
type State struct {
	URLsToCrawl []string
	CrawledURLs map[string]bool // keyed by archive month, not full URL
	Errors404   []string
}

// jsonState is the on-disk form; the crawled set becomes a list.
type jsonState struct {
	URLsToCrawl []string `json:"urls_to_crawl"`
	CrawledURLs []string `json:"crawled_urls"`
	Errors404   []string `json:"errors_404"`
}

// NewState creates an empty crawl state
func NewState() *State {
	return &State{CrawledURLs: make(map[string]bool)}
}

// LoadState restores state from path. A missing file means a fresh crawl.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("read crawl state: %w", err)
	}

	var js jsonState
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("parse crawl state %s: %w", path, err)
	}

	state := &State{
		URLsToCrawl: js.URLsToCrawl,
		CrawledURLs: make(map[string]bool, len(js.CrawledURLs)),
		Errors404:   js.Errors404,
	}
	for _, key := range js.CrawledURLs {
		state.CrawledURLs[key] = true
	}
	return state, nil
}

// Save persists the state to path
func (s *State) Save(path string) error {
	crawled := make([]string, 0, len(s.CrawledURLs))
	for key := range s.CrawledURLs {
		crawled = append(crawled, key)
	}
	sort.Strings(crawled)

	data, err := json.Marshal(jsonState{
		URLsToCrawl: s.URLsToCrawl,
		CrawledURLs: crawled,
		Errors404:   s.Errors404,
	})
	if err != nil {
		return fmt.Errorf("marshal crawl state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write crawl state: %w", err)
	}
	return nil
}

// SaveErrors writes the 404 list to path, one URL per line
func (s *State) SaveErrors(path string) error {
	var out string
	for _, url := range s.Errors404 {
		out += url + "\n"
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write 404 errors: %w", err)
	}
	return nil
}

// IsCrawled reports whether the archive month key was already visited
func (s *State) IsCrawled(key string) bool {
	return s.CrawledURLs[key]
}

// MarkCrawled records the archive month key as visited
func (s *State) MarkCrawled(key string) {
	s.CrawledURLs[key] = true
}

// Queued reports whether url is already on the crawl queue
func (s *State) Queued(url string) bool {
	for _, queued := range s.URLsToCrawl {
		if queued == url {
			return true
		}
	}
	return false
}
