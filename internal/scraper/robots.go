package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/temoto/robotstxt"

	"go-gitscraper/pkg/models"
)

// RobotsGuard wraps a Fetcher and refuses URLs that the host's robots.txt disallows for UserAgent.
// robots.txt is fetched once per host; a missing or unreadable file allows everything.
type RobotsGuard struct {
	next      Fetcher
	userAgent string
	client    *http.Client
	logger    *log.Logger

	mu          sync.Mutex
	robotsCache map[string]*robotstxt.Group
}

func NewRobotsGuard(next Fetcher, userAgent string, timeout time.Duration, logger *log.Logger) *RobotsGuard {
	if logger == nil {
		logger = log.Default()
	}
	return &RobotsGuard{
		next:        next,
		userAgent:   userAgent,
		client:      &http.Client{Timeout: timeout},
		logger:      logger,
		robotsCache: make(map[string]*robotstxt.Group),
	}
}

func (g *RobotsGuard) Fetch(ctx context.Context, targetURL string) models.FetchResult {
	if !g.IsAllowed(ctx, targetURL) {
		return models.FetchResult{
			URL:     targetURL,
			Outcome: models.Disallowed,
			Err:     fmt.Errorf("%w: %s", ErrDisallowed, targetURL),
		}
	}
	return g.next.Fetch(ctx, targetURL)
}

func (g *RobotsGuard) IsAllowed(ctx context.Context, link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	// Fetching under the lock is fine: requests are issued one at a time.
	g.mu.Lock()
	defer g.mu.Unlock()

	group, exists := g.robotsCache[u.Host]
	if !exists {
		group = g.loadGroup(ctx, u)
		g.robotsCache[u.Host] = group
	}
	if group == nil {
		return true
	}
	return group.Test(u.EscapedPath())
}

func (g *RobotsGuard) loadGroup(ctx context.Context, u *url.URL) *robotstxt.Group {
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Debug("robots.txt unavailable, allowing host", "host", u.Host, "err", err)
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		g.logger.Debug("robots.txt unreadable, allowing host", "host", u.Host, "err", err)
		return nil
	}
	return data.FindGroup(g.userAgent)
}
