package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-gitscraper/pkg/models"
)

var (
	ErrBadStatus  = errors.New("unexpected status")
	ErrDisallowed = errors.New("disallowed by robots.txt")
)

// Fetcher performs a single GET. Failures are reported inside the result, never as a panic or a
// separate error value, so callers decide whether to skip or stop.
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) models.FetchResult
}

type HTTPFetcher struct {
	UserAgent string
	client    *http.Client
}

func NewHTTPFetcher(userAgent string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		UserAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL string) (result models.FetchResult) {
	start := time.Now()
	result = models.FetchResult{URL: targetURL, Outcome: models.Failed}
	defer func() { result.LoadTime = time.Since(start) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		result.Err = fmt.Errorf("build request: %w", err)
		return result
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		result.Outcome = models.BadStatus
		result.Err = fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
		return result
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = fmt.Errorf("read body: %w", err)
		return result
	}
	result.Body = string(body)
	result.Outcome = models.Succeeded
	return result
}
