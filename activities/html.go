package activities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Last-resort extraction from raw page markup. Titles come from heading
// tags carrying a "title" class; prices, images and ratings are matched
// positionally, so beyond the first few entries the pairing gets fuzzy.
var (
	priceRe  = regexp.MustCompile(`(?i)(?:GBP|EUR|USD|\$|£|€)\s*[\d,]+(?:\.\d{2})?`)
	imageRe  = regexp.MustCompile(`https://res\.klook\.com/[^"'\s]+\.(?:jpg|jpeg|png|webp)`)
	ratingRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(?:stars?|rating|/\s*5)`)
)

func extractHTMLPatterns(html, pageCurrency string) []rawActivity {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var titles []string
	doc.Find(`h1,h2,h3,h4,h5,h6`).Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if !strings.Contains(strings.ToLower(class), "title") {
			return
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			titles = append(titles, t)
		}
	})

	prices := priceRe.FindAllString(html, -1)
	images := imageRe.FindAllString(html, -1)
	ratings := ratingRe.FindAllString(html, -1)

	limit := len(titles)
	if limit > maxActivities {
		limit = maxActivities
	}

	stamp := time.Now().UnixMilli()
	activities := make([]rawActivity, 0, limit)
	for i := 0; i < limit; i++ {
		a := rawActivity{
			ID:       fmt.Sprintf("klook-%d-%d", i, stamp),
			Title:    titles[i],
			Currency: pageCurrency,
			Duration: "Varies",
		}
		if i < len(prices) {
			a.Price = parsePrice(prices[i])
		}
		if i < len(images) {
			a.ImageURL = images[i]
		}
		if i < len(ratings) {
			a.Rating = parseRating(ratings[i])
		}
		activities = append(activities, a)
	}
	return activities
}
