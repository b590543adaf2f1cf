package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-gitscraper/internal/config"
	"go-gitscraper/internal/scraper"
	"go-gitscraper/internal/scraper/engine"
)

var version = "dev"

type cliFlags struct {
	suffix        string
	preview       int
	renderJS      bool
	respectRobots bool
	debug         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:          "gitscrape [listing-url]",
		Short:        "Download every source file listed on a GitHub directory page and print the combined text.",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			applyFlags(cmd, cfg, &flags, args)
			return run(cmd, cfg)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.Flags().StringVarP(&flags.suffix, "suffix", "s", "", "Only download files ending with this suffix (default from SUFFIX)")
	cmd.Flags().IntVarP(&flags.preview, "preview", "p", 0, "Number of characters to print, 0 or less prints everything (default from PREVIEW_LENGTH)")
	cmd.Flags().BoolVar(&flags.renderJS, "render-js", false, "Render the listing page in headless Chrome")
	cmd.Flags().BoolVar(&flags.respectRobots, "respect-robots", false, "Skip URLs disallowed by robots.txt")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	return cmd
}

// applyFlags lets explicitly set flags and the positional URL override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *cliFlags, args []string) {
	if len(args) > 0 {
		cfg.ListingURL = args[0]
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Suffix = flags.suffix
	}
	if cmd.Flags().Changed("preview") {
		cfg.PreviewLength = flags.preview
	}
	if flags.renderJS {
		cfg.RenderJS = true
	}
	if flags.respectRobots {
		cfg.RespectRobots = true
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "gitscrape",
		Level:           cfg.Level(),
	})

	var fileFetcher scraper.Fetcher = scraper.NewHTTPFetcher(cfg.UserAgent, cfg.HTTPTimeout)
	listingFetcher := fileFetcher
	if cfg.RenderJS {
		browser := scraper.NewBrowserFetcher(cfg.UserAgent, cfg.HTTPTimeout)
		defer browser.Close()
		listingFetcher = browser
	}
	if cfg.RespectRobots {
		listingFetcher = scraper.NewRobotsGuard(listingFetcher, cfg.UserAgent, cfg.HTTPTimeout, logger)
		fileFetcher = scraper.NewRobotsGuard(fileFetcher, cfg.UserAgent, cfg.HTTPTimeout, logger)
	}

	collector, err := scraper.NewLinkCollector(listingFetcher, cfg.RawBaseURL, cfg.LinkSelector, logger)
	if err != nil {
		return err
	}
	aggregator := scraper.NewAggregator(fileFetcher, logger)

	agg := engine.NewEngine(collector, aggregator, logger).Run(cmd.Context(), cfg.ListingURL, cfg.Suffix)
	fmt.Fprintln(cmd.OutOrStdout(), engine.Preview(agg.Content, cfg.PreviewLength))
	return nil
}
