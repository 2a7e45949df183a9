// Package scraper crawls an archived WordPress blog through the Wayback
// Machine and saves every post as paired Markdown and HTML files.
//
// The crawl is resumable: queue, visited set, and 404 list persist to
// crawl_state.json after every page, and per-year statistics accumulate in
// crawl_stats.json. Archive month pages are deduplicated by their "m" query
// parameter, since the same month appears under many snapshot prefixes.
package scraper
