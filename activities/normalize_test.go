package activities

import (
	"strings"
	"testing"
	"unicode/utf8"

	"globehunters/models"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"[Klook Exclusive] Eiffel Tower Tour", "Eiffel Tower Tour"},
		{"Desert Safari - Klook", "Desert Safari"},
		{"City Pass | Klook", "City Pass"},
		{"Boat Trip by Klook", "Boat Trip"},
		{"Museum Entry (Klook)", "Museum Entry"},
		{"Plain Title", "Plain Title"},
	}
	for _, c := range cases {
		if got := cleanTitle(c.in); got != c.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExtractDuration(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"A full 1 day excursion", "Full day"},
		{"Spread over 3 days", "3 days"},
		{"Lasts 2 hours with guide", "2 hours"},
		{"About 2 hours 30 minutes total", "2h 30m"},
		{"Quick 45 minute visit", "45 minutes"},
		{"No timing info here", "Varies"},
	}
	for _, c := range cases {
		if got := extractDuration(c.in); got != c.want {
			t.Errorf("extractDuration(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"£45", 45},
		{"GBP 1,250.50", 1250.50},
		{"$99.99", 99.99},
		{"garbage", 0},
	}
	for _, c := range cases {
		if got := parsePrice(c.in); got != c.want {
			t.Errorf("parsePrice(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseRating(t *testing.T) {
	if got := parseRating("4.7 stars"); got != 4.7 {
		t.Errorf("parseRating = %v, want 4.7", got)
	}
	if got := parseRating("no digits"); got != 0 {
		t.Errorf("parseRating = %v, want 0", got)
	}
}

func TestConvertScraped(t *testing.T) {
	if got := convertScraped(100, "USD", models.GBP); got != 79 {
		t.Errorf("USD->GBP = %v, want 79", got)
	}
	// Unknown source currency leaves the amount alone.
	if got := convertScraped(100, "THB", models.GBP); got != 100 {
		t.Errorf("unknown currency should pass through, got %v", got)
	}
}

func TestNormalizeActivity(t *testing.T) {
	a := normalizeActivity(rawActivity{
		ID:          "123",
		Title:       "Harbour Cruise - Klook",
		Description: "A relaxing 2 hour cruise.",
		ImageURL:    "https://res.klook.com/images/cruise.jpg",
		Price:       100,
		Currency:    "USD",
		Duration:    "2 hours",
		Rating:      4.5,
		URL:         "/activity/123",
	}, models.GBP)

	if a.Title != "Harbour Cruise" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Price.Amount != 79 {
		t.Errorf("price = %v, want 79 (converted, rounded)", a.Price.Amount)
	}
	if a.Price.Currency != models.GBP {
		t.Errorf("currency = %s", a.Price.Currency)
	}
	if !a.HasImage() {
		t.Error("activity with image URL should pass HasImage")
	}
	if a.BookingURL == "" {
		t.Fatal("booking URL missing")
	}
	for _, param := range []string{"aid=", "aff_pid=701824"} {
		if !strings.Contains(a.BookingURL, param) {
			t.Errorf("booking URL %q missing %q", a.BookingURL, param)
		}
	}
}

func TestNormalizeActivityShortDescriptionRuneSafe(t *testing.T) {
	desc := strings.Repeat("é", 200)
	a := normalizeActivity(rawActivity{ID: "1", Title: "Tour", Description: desc, Price: 10, Currency: "GBP"}, models.GBP)

	if !utf8.ValidString(a.ShortDescription) {
		t.Fatalf("short description is not valid UTF-8: %q", a.ShortDescription)
	}
	if !strings.HasSuffix(a.ShortDescription, "...") {
		t.Errorf("long description not truncated: %q", a.ShortDescription)
	}
	if got := utf8.RuneCountInString(a.ShortDescription); got != 153 {
		t.Errorf("short description runes = %d, want 150 plus ellipsis", got)
	}
}

func TestNormalizeActivityNoImage(t *testing.T) {
	a := normalizeActivity(rawActivity{ID: "1", Title: "No Image Tour", Price: 10, Currency: "GBP"}, models.GBP)
	if a.HasImage() {
		t.Error("activity without image must fail HasImage")
	}
}
