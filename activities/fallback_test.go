package activities

import (
	"strings"
	"testing"

	"globehunters/models"
)

func TestFallbackSubstringMatch(t *testing.T) {
	acts := fallbackActivities("Dubai, UAE", models.GBP, 8)
	if len(acts) != 8 {
		t.Fatalf("got %d activities, want 8", len(acts))
	}
	if !strings.Contains(acts[0].Title, "Burj Khalifa") {
		t.Errorf("expected curated dubai set, got first title %q", acts[0].Title)
	}
}

func TestFallbackGenericForUnknownDestination(t *testing.T) {
	acts := fallbackActivities("Reykjavik", models.GBP, 8)
	if len(acts) != 8 {
		t.Fatalf("got %d activities, want 8", len(acts))
	}
	for _, a := range acts {
		if !strings.Contains(a.Title, "Reykjavik") && !strings.Contains(a.Description, "Reykjavik") {
			t.Errorf("generic entry %q does not mention the destination", a.Title)
		}
	}
}

func TestFallbackLimitClamp(t *testing.T) {
	if got := len(fallbackActivities("london", models.GBP, 3)); got != 3 {
		t.Errorf("limit 3 returned %d", got)
	}
	if got := len(fallbackActivities("london", models.GBP, 50)); got != 8 {
		t.Errorf("limit 50 should clamp to table size 8, got %d", got)
	}
}

func TestFallbackEntriesComplete(t *testing.T) {
	acts := fallbackActivities("paris", models.USD, 8)
	for _, a := range acts {
		if !a.HasImage() {
			t.Errorf("%q has no image", a.Title)
		}
		if a.Price.Amount <= 0 {
			t.Errorf("%q has no price", a.Title)
		}
		if a.Price.Currency != models.USD {
			t.Errorf("%q currency = %s, want USD", a.Title, a.Price.Currency)
		}
		if a.BookingURL == "" || !strings.Contains(a.BookingURL, "aff_pid=701824") {
			t.Errorf("%q booking URL missing affiliate params: %q", a.Title, a.BookingURL)
		}
		if a.Provider != "klook" {
			t.Errorf("%q provider = %q", a.Title, a.Provider)
		}
	}
}

func TestFallbackConvertsCurrency(t *testing.T) {
	gbp := fallbackActivities("london", models.GBP, 1)
	usd := fallbackActivities("london", models.USD, 1)
	want := gbp[0].Price.Amount * 1.27
	if diff := usd[0].Price.Amount - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("USD price = %v, want %v", usd[0].Price.Amount, want)
	}
}
