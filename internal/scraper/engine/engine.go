package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"go-gitscraper/pkg/models"
)

// Collector turns a listing page into the ordered URLs of the files to download.
type Collector interface {
	Collect(ctx context.Context, listingURL, suffix string) []string
}

// Combiner downloads URLs and joins their contents.
type Combiner interface {
	AggregateResults(ctx context.Context, urls []string) models.Aggregate
}

// Engine runs the two stages back to back: collect once, then aggregate the collected links.
type Engine struct {
	collector Collector
	combiner  Combiner
	logger    *log.Logger
}

func NewEngine(collector Collector, combiner Combiner, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		collector: collector,
		combiner:  combiner,
		logger:    logger,
	}
}

// Run blocks until every collected link has been fetched or ctx is done.
func (engine *Engine) Run(ctx context.Context, listingURL, suffix string) models.Aggregate {
	start := time.Now()
	logger := engine.logger.With("run", uuid.NewString())

	logger.Info("collecting links", "url", listingURL, "suffix", suffix)
	links := engine.collector.Collect(ctx, listingURL, suffix)
	if len(links) == 0 {
		logger.Warn("nothing to download", "url", listingURL)
		return models.Aggregate{}
	}

	logger.Info("downloading files", "count", len(links))
	agg := engine.combiner.AggregateResults(ctx, links)
	logger.Info("run finished",
		"fetched", agg.Fetched(),
		"skipped", agg.Skipped(),
		"bytes", len(agg.Content),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return agg
}

// Preview returns at most n characters of content; n <= 0 means no limit.
func Preview(content string, n int) string {
	if n <= 0 {
		return content
	}
	count := 0
	for i := range content {
		if count == n {
			return content[:i]
		}
		count++
	}
	return content
}
