package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html"
)

// ErrNotFound indicates the page returned 404. Not retried.
var ErrNotFound = errors.New("page not found")

// Fetcher retrieves and parses pages with exponential-backoff retries.
type Fetcher struct {
	// Client is the HTTP client used for requests.
	Client *http.Client

	// NewBackOff produces the retry policy for one fetch. Overridable so
	// tests do not wait half a minute between attempts.
	NewBackOff func() backoff.BackOff

	logger *slog.Logger
}

// NewFetcher creates a fetcher with the archive-friendly defaults: a long
// request timeout and patient retries.
func NewFetcher(logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		Client:     &http.Client{Timeout: 60 * time.Second},
		NewBackOff: defaultBackOff,
		logger:     logger,
	}
}

// defaultBackOff waits 30s..300s between attempts, five attempts total. The
// Wayback Machine rate limits aggressively; anything faster gets 429s.
func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 30 * time.Second
	b.Multiplier = 5
	b.MaxInterval = 300 * time.Second
	return backoff.WithMaxRetries(b, 4)
}

// httpStatusError is a retryable non-404 failure, carrying any Retry-After
// hint the server sent.
type httpStatusError struct {
	status     int
	retryAfter time.Duration
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

// Fetch retrieves url and returns the parsed document. A 404 fails
// immediately with ErrNotFound; other failures retry with backoff, honoring
// Retry-After headers before the next attempt.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*html.Node, error) {
	var doc *html.Node

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := f.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(ErrNotFound)
		case resp.StatusCode >= 400:
			return &httpStatusError{
				status:     resp.StatusCode,
				retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			}
		}

		parsed, err := html.Parse(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parse %s: %w", url, err))
		}
		doc = parsed
		return nil
	}

	notify := func(err error, next time.Duration) {
		f.logger.Warn("fetch failed, will retry", "url", url, "error", err, "backoff", next)
		var statusErr *httpStatusError
		if errors.As(err, &statusErr) && statusErr.retryAfter > 0 {
			f.logger.Info("honoring Retry-After", "url", url, "wait", statusErr.retryAfter)
			time.Sleep(statusErr.retryAfter)
		}
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(f.NewBackOff(), ctx), notify); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
		}
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	f.logger.Info("fetched", "url", url)
	return doc, nil
}

// parseRetryAfter handles both forms of the header: delta seconds and an
// HTTP date.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if wait := time.Until(at); wait > 0 {
			return wait
		}
	}
	return 0
}
