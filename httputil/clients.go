package httputil

import (
	"net/http"
	"time"
)

// Clients holds the two HTTP clients the daemon uses: a browser-like one for
// scraping activity pages and a plain one for provider APIs.
type Clients struct {
	Scraping *http.Client // target sites, browser-like headers set per request
	API      *http.Client // Duffel, RateHawk, FX
}

func NewClients() *Clients {
	scraping := &http.Client{
		Timeout: 15 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &Clients{
		Scraping: scraping,
		API:      &http.Client{Timeout: 30 * time.Second},
	}
}

// BrowserHeaders sets the headers the scraping client sends so target sites
// serve the same HTML they serve a desktop browser.
func BrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
}
