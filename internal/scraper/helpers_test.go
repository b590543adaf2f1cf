package scraper

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// fileEntry renders one anchor the way the listing page marks file entries.
func fileEntry(href string) string {
	return fmt.Sprintf(`<a class="js-navigation-open Link--primary" title="%s" href="%s">%s</a>`, href, href, href)
}

func listingPage(entries ...string) string {
	return `<!DOCTYPE html><html><head><title>listing</title></head><body><div role="grid">` +
		strings.Join(entries, "\n") +
		`</div></body></html>`
}
