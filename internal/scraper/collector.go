package scraper

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
)

const (
	DefaultRawBaseURL = "https://raw.githubusercontent.com"

	// DefaultLinkSelector matches the file-entry anchors of GitHub's directory listing markup:
	// the navigation role class plus the primary link styling. If GitHub changes its markup,
	// this selector (or LINK_SELECTOR) is the only thing that needs to change.
	DefaultLinkSelector = "a.js-navigation-open.Link--primary"
)

// LinkCollector turns a directory listing page into the raw URLs of the files it lists.
type LinkCollector struct {
	fetcher  Fetcher
	rawBase  string
	selector string
	logger   *log.Logger
}

func NewLinkCollector(fetcher Fetcher, rawBase, selector string, logger *log.Logger) (*LinkCollector, error) {
	if rawBase == "" {
		rawBase = DefaultRawBaseURL
	}
	if selector == "" {
		selector = DefaultLinkSelector
	}
	if _, err := cascadia.Compile(selector); err != nil {
		return nil, fmt.Errorf("invalid link selector %q: %w", selector, err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &LinkCollector{
		fetcher:  fetcher,
		rawBase:  rawBase,
		selector: selector,
		logger:   logger,
	}, nil
}

// Collect fetches listingURL and returns the raw URLs of the entries ending with suffix, in page
// order. Any failure yields an empty result.
func (c *LinkCollector) Collect(ctx context.Context, listingURL, suffix string) []string {
	result := c.fetcher.Fetch(ctx, listingURL)
	if !result.OK() {
		c.logger.Warn("listing fetch failed", "url", listingURL, "outcome", result.Outcome, "status", result.StatusCode, "err", result.Err)
		return nil
	}
	c.logger.Debug("fetched listing", "url", listingURL, "bytes", len(result.Body), "took", result.LoadTime)

	links, err := c.Extract(strings.NewReader(result.Body), suffix)
	if err != nil {
		c.logger.Warn("could not parse listing", "url", listingURL, "err", err)
		return nil
	}
	if len(links) == 0 {
		c.logger.Warn("no file entries matched", "url", listingURL, "selector", c.selector, "suffix", suffix)
	}
	return links
}

// Extract reads listing HTML from r and returns the raw URLs of matching file entries.
func (c *LinkCollector) Extract(r io.Reader, suffix string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	filter := SuffixFilter{Suffix: suffix}
	var links []string
	goquery.NewDocumentFromNode(doc).Find(c.selector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !filter.Filter(href) {
			return
		}
		rawURL, err := RawURL(c.rawBase, href)
		if err != nil {
			c.logger.Debug("skipping malformed href", "href", href, "err", err)
			return
		}
		links = append(links, rawURL)
	})
	return links, nil
}
