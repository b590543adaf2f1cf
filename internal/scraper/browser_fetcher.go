package scraper

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"go-gitscraper/pkg/models"
)

// BrowserFetcher loads pages in headless Chrome and returns the rendered document. It is meant for
// listing pages whose file entries are rendered client-side.
type BrowserFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

func NewBrowserFetcher(userAgent string, timeout time.Duration) *BrowserFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.UserAgent(userAgent))
	// Chrome refuses to start as root unless the sandbox is off, which is the norm in containers.
	if os.Geteuid() == 0 {
		opts = append(opts, chromedp.NoSandbox)
	}
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &BrowserFetcher{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  timeout,
	}
}

func (f *BrowserFetcher) Fetch(ctx context.Context, targetURL string) models.FetchResult {
	start := time.Now()
	result := models.FetchResult{URL: targetURL, Outcome: models.Failed}

	tabCtx, cancelTab := chromedp.NewContext(f.allocCtx)
	defer cancelTab()
	if f.timeout > 0 {
		var cancelTimeout context.CancelFunc
		tabCtx, cancelTimeout = context.WithTimeout(tabCtx, f.timeout)
		defer cancelTimeout()
	}
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	resp, err := chromedp.RunResponse(tabCtx, chromedp.Navigate(targetURL))
	result.LoadTime = time.Since(start)
	if err != nil {
		result.Err = fmt.Errorf("navigate: %w", err)
		return result
	}
	if resp != nil {
		result.StatusCode = int(resp.Status)
	}
	if result.StatusCode != http.StatusOK {
		result.Outcome = models.BadStatus
		result.Err = fmt.Errorf("%w: %d", ErrBadStatus, result.StatusCode)
		return result
	}

	var rendered string
	if err := chromedp.Run(tabCtx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &rendered, chromedp.ByQuery),
	); err != nil {
		result.Err = fmt.Errorf("read rendered html: %w", err)
		return result
	}
	result.LoadTime = time.Since(start)
	result.Body = rendered
	result.Outcome = models.Succeeded
	return result
}

// Close shuts down the browser process.
func (f *BrowserFetcher) Close() {
	f.cancel()
}
