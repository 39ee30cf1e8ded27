package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"globehunters/models"
)

const fxAPI = "https://api.exchangerate-api.com/v4/latest"

// staticGBPRates are approximate cross rates against GBP, used when the
// live feed is unavailable. Approximations, not live FX.
var staticGBPRates = map[models.Currency]float64{
	models.GBP: 1,
	models.EUR: 1.18,
	models.USD: 1.27,
	models.AUD: 1.95,
}

// StaticRates is the fallback RateProvider backed by the fixed table.
type StaticRates struct{}

func (StaticRates) Rate(from, to models.Currency) (float64, error) {
	f, ok := staticGBPRates[from]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", from)
	}
	t, ok := staticGBPRates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", to)
	}
	return t / f, nil
}

// LiveRates fetches rates from the exchangerate API, caches them for an
// hour, and falls back to the static table when the feed fails.
type LiveRates struct {
	client  *http.Client
	baseURL string
	ttl     time.Duration

	mu      sync.RWMutex
	rates   map[models.Currency]float64 // against GBP
	fetched time.Time
}

func NewLiveRates(client *http.Client) *LiveRates {
	return &LiveRates{
		client:  client,
		baseURL: fxAPI,
		ttl:     time.Hour,
	}
}

func (l *LiveRates) Rate(from, to models.Currency) (float64, error) {
	rates := l.current()
	if rates == nil {
		if err := l.Refresh(context.Background()); err != nil {
			log.Printf("[FX] live rates unavailable, using static table: %v", err)
			return StaticRates{}.Rate(from, to)
		}
		rates = l.current()
	}

	f, ok := rates[from]
	if !ok {
		return StaticRates{}.Rate(from, to)
	}
	t, ok := rates[to]
	if !ok {
		return StaticRates{}.Rate(from, to)
	}
	return t / f, nil
}

func (l *LiveRates) current() map[models.Currency]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.rates == nil || time.Since(l.fetched) > l.ttl {
		return nil
	}
	return l.rates
}

// Refresh fetches a fresh rate table against GBP. The scheduler calls this
// on a cron so request paths never block on the FX feed.
func (l *LiveRates) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/GBP", nil)
	if err != nil {
		return err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fx api status %d", resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode rates: %w", err)
	}

	rates := make(map[models.Currency]float64, len(models.SupportedCurrencies))
	for _, c := range models.SupportedCurrencies {
		if r, ok := payload.Rates[string(c)]; ok && r > 0 {
			rates[c] = r
		} else {
			rates[c] = staticGBPRates[c]
		}
	}

	l.mu.Lock()
	l.rates = rates
	l.fetched = time.Now()
	l.mu.Unlock()

	log.Printf("[FX] refreshed %d rates", len(rates))
	return nil
}
