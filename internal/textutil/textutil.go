// Package textutil holds the small text helpers shared by the scraper: safe
// file names, archive URL keys, and date slicing.
package textutil

import (
	"net/url"
	"strings"
)

// SanitizeFilename makes a post title safe for use in a file name. Spaces
// become underscores and path separators become dashes; everything else is
// kept as-is.
func SanitizeFilename(title string) string {
	return strings.ReplaceAll(strings.ReplaceAll(title, " ", "_"), "/", "-")
}

// MonthKey extracts the unique part of an archive URL, the "m" query
// parameter. Archive pages for the same month differ only in snapshot
// prefix, so this is the deduplication key for crawling.
func MonthKey(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("m")
}

// YearOf returns the year prefix of an ISO date, or "unknown" when the date
// is empty or too short.
func YearOf(date string) string {
	if len(date) < 4 {
		return "unknown"
	}
	return date[:4]
}

// DateStamp returns the yyyy-mm-dd prefix of an ISO datetime.
func DateStamp(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[:10]
}
