// Package activities scrapes things-to-do listings from Klook's public
// search pages. Parsing runs through a chain of extractors, from the most
// structured source (JSON-LD) down to raw HTML patterns, and falls back to
// curated tables when the page yields nothing usable.
package activities

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"globehunters/httputil"
	"globehunters/models"
)

const (
	klookBaseURL = "https://www.klook.com"

	// Affiliate tracking appended to every outbound booking link.
	klookAffiliateID = "api|13694|af4ba6d625384320be87e2877-701824|pid|701824"
	klookAffPID      = "701824"

	// BookingPhone is shown alongside activities; bookings go through the
	// call centre, the affiliate link is informational.
	BookingPhone = "020 8944 4555"

	maxActivities = 20
)

// KlookClient fetches and parses Klook search result pages.
type KlookClient struct {
	client  *http.Client
	baseURL string
}

func NewKlookClient(clients *httputil.Clients) *KlookClient {
	return &KlookClient{client: clients.Scraping, baseURL: klookBaseURL}
}

// rawActivity is the intermediate shape shared by all extractors before
// normalization into models.Activity.
type rawActivity struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Price       float64
	Currency    string
	Duration    string
	Rating      float64
	ReviewCount int
	Categories  []string
	URL         string
}

// Search returns up to limit activities for a destination. It never fails:
// any fetch or parse problem degrades to the curated fallback set, so
// callers always get something renderable.
func (k *KlookClient) Search(ctx context.Context, destination string, currency models.Currency, limit int) []models.Activity {
	if limit <= 0 {
		limit = 10
	}

	html, err := k.fetchSearchPage(ctx, destination)
	if err != nil {
		log.Printf("[Activities] klook fetch failed for %q: %v", destination, err)
		return fallbackActivities(destination, currency, limit)
	}

	raw := extractActivities(html, string(currency))
	if len(raw) == 0 {
		log.Printf("[Activities] no activities parsed for %q, using fallback", destination)
		return fallbackActivities(destination, currency, limit)
	}

	if len(raw) > limit {
		raw = raw[:limit]
	}
	out := make([]models.Activity, 0, len(raw))
	for _, a := range raw {
		out = append(out, normalizeActivity(a, currency))
	}
	return out
}

func (k *KlookClient) fetchSearchPage(ctx context.Context, destination string) (string, error) {
	searchURL := fmt.Sprintf("%s/search/?query=%s", k.baseURL, url.QueryEscape(destination))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}
	httputil.BrowserHeaders(req)

	resp, err := k.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("klook returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// extractActivities runs the parser chain. Each tier only runs when the
// previous one produced nothing.
func extractActivities(html, pageCurrency string) []rawActivity {
	if acts := extractJSONLD(html, pageCurrency); len(acts) > 0 {
		return acts
	}
	if acts := extractNextData(html, pageCurrency); len(acts) > 0 {
		return acts
	}
	return extractHTMLPatterns(html, pageCurrency)
}

// affiliateURL rewrites a Klook path or absolute URL with tracking params.
func affiliateURL(path string) string {
	raw := path
	if len(path) == 0 || path[0] == '/' {
		raw = klookBaseURL + path
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("aid", klookAffiliateID)
	q.Set("aff_pid", klookAffPID)
	u.RawQuery = q.Encode()
	return u.String()
}
