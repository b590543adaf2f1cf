package scraper

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"go-gitscraper/pkg/models"
)

// Separator follows every file body in the combined output.
const Separator = "\n\n"

type Aggregator struct {
	fetcher Fetcher
	logger  *log.Logger
}

func NewAggregator(fetcher Fetcher, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{fetcher: fetcher, logger: logger}
}

// Aggregate downloads urls one after another and concatenates the bodies of successful fetches.
func (a *Aggregator) Aggregate(ctx context.Context, urls []string) string {
	return a.AggregateResults(ctx, urls).Content
}

// AggregateResults is Aggregate plus the per-URL outcome, so callers can tell skipped files apart.
func (a *Aggregator) AggregateResults(ctx context.Context, urls []string) models.Aggregate {
	var content strings.Builder
	results := make([]models.FetchResult, 0, len(urls))

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			results = append(results, models.FetchResult{URL: u, Outcome: models.Failed, Err: err})
			continue
		}

		result := a.fetcher.Fetch(ctx, u)
		results = append(results, result)
		if !result.OK() {
			a.logger.Warn("skipping file", "url", u, "outcome", result.Outcome, "status", result.StatusCode, "err", result.Err)
			continue
		}

		content.WriteString(result.Body)
		content.WriteString(Separator)
		a.logger.Debug("fetched file", "url", u, "bytes", len(result.Body), "took", result.LoadTime)
	}

	return models.Aggregate{Content: content.String(), Results: results}
}
