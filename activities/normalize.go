package activities

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"globehunters/models"
)

// Suffix forms first so the bare catch-all cannot strand a "-" or "|".
var klookBrandRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[Klook\s*(?:Exclusive|Special|Deal)?\]:?\s*`),
	regexp.MustCompile(`(?i)\s*-\s*Klook$`),
	regexp.MustCompile(`(?i)\s*\|\s*Klook$`),
	regexp.MustCompile(`(?i)\s*by\s+Klook$`),
	regexp.MustCompile(`(?i)\s*on\s+Klook$`),
	regexp.MustCompile(`(?i)\s*\(Klook\)`),
	regexp.MustCompile(`(?i)Klook\s*`),
}

// cleanTitle strips Klook branding variants from scraped titles.
func cleanTitle(title string) string {
	for _, re := range klookBrandRes {
		title = re.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}

var (
	durationDayRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:day|d)`)
	durationHourRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hour|hr|h)`)
	durationMinRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:minute|min|m)`)
)

// extractDuration guesses a display duration from free text. Days beat
// hours beat minutes; an hour+minute pair renders as "2h 30m".
func extractDuration(text string) string {
	if m := durationDayRe.FindStringSubmatch(text); m != nil {
		days, _ := strconv.Atoi(m[1])
		if days == 1 {
			return "Full day"
		}
		return fmt.Sprintf("%d days", days)
	}
	if m := durationHourRe.FindStringSubmatch(text); m != nil {
		if mm := durationMinRe.FindStringSubmatch(text); mm != nil {
			return fmt.Sprintf("%sh %sm", m[1], mm[1])
		}
		return fmt.Sprintf("%s hours", m[1])
	}
	if m := durationMinRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s minutes", m[1])
	}
	return "Varies"
}

var nonPriceChars = regexp.MustCompile(`[^\d.,]`)

func parsePrice(s string) float64 {
	cleaned := strings.ReplaceAll(nonPriceChars.ReplaceAllString(s, ""), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

var ratingNumRe = regexp.MustCompile(`(\d+\.?\d*)`)

func parseRating(s string) float64 {
	m := ratingNumRe.FindString(s)
	if m == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// scrapedRates converts between the currencies Klook renders prices in.
// Deliberately static: scraped figures are indicative, not bookable.
var scrapedRates = map[string]map[models.Currency]float64{
	"USD": {models.GBP: 0.79, models.EUR: 0.92, models.USD: 1, models.AUD: 1.54},
	"GBP": {models.GBP: 1, models.EUR: 1.16, models.USD: 1.27, models.AUD: 1.95},
	"EUR": {models.GBP: 0.86, models.EUR: 1, models.USD: 1.09, models.AUD: 1.68},
	"AUD": {models.GBP: 0.51, models.EUR: 0.60, models.USD: 0.65, models.AUD: 1},
}

// convertScraped leaves the amount untouched when no rate is known.
func convertScraped(amount float64, from string, to models.Currency) float64 {
	if rates, ok := scrapedRates[strings.ToUpper(from)]; ok {
		if rate, ok := rates[to]; ok {
			return amount * rate
		}
	}
	return amount
}

func normalizeActivity(a rawActivity, currency models.Currency) models.Activity {
	price := math.Round(convertScraped(a.Price, a.Currency, currency))
	title := cleanTitle(a.Title)

	var images []models.ActivityImage
	if a.ImageURL != "" {
		images = append(images, models.ActivityImage{URL: a.ImageURL, Caption: title})
	}

	// Truncate on rune boundaries; scraped descriptions are not ASCII-only.
	short := a.Description
	if r := []rune(short); len(r) > 150 {
		short = string(r[:150]) + "..."
	}

	var bookingURL string
	if a.URL != "" {
		bookingURL = affiliateURL(a.URL)
	}

	return models.Activity{
		ID:               a.ID,
		Provider:         "klook",
		ProviderCode:     a.ID,
		Title:            title,
		Description:      a.Description,
		ShortDescription: short,
		Images:           images,
		Duration:         a.Duration,
		Price:            models.Money{Amount: price, Currency: currency},
		PricePerPerson:   models.Money{Amount: price, Currency: currency},
		Rating:           a.Rating,
		ReviewCount:      a.ReviewCount,
		Categories:       a.Categories,
		BookingURL:       bookingURL,
	}
}
