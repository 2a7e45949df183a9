package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/23min/devkit/internal/scraper"
)

var scrapeOutputDir string

// scrapeCmd runs the archive blog crawler, the workspace's scraper package
var scrapeCmd = &cobra.Command{
	Use:   "scrape <start-url>",
	Short: "Crawl an archived blog and save posts as Markdown and HTML",
	Long: `Crawl archive month pages starting from the given Wayback Machine URL.
Posts are written to the output directory; crawl state persists next to it,
so an interrupted crawl resumes where it stopped.`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeOutputDir, "output-dir", "blog_posts", "directory for saved posts")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := scraper.DefaultConfig()
	config.OutputDir = resolvePath(scrapeOutputDir)
	config.StateFile = resolvePath(config.StateFile)
	config.StatsFile = resolvePath(config.StatsFile)
	config.DatesTitlesFile = resolvePath(config.DatesTitlesFile)
	config.ErrorsFile = resolvePath(config.ErrorsFile)

	return scraper.New(config, logger).Crawl(ctx, args[0])
}
