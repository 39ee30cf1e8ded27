package activities

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// nextItem mirrors the several field-name variants Klook's Next.js payloads
// have used for the same data.
type nextItem struct {
	ID               json.Number `json:"id"`
	ActivityID       json.Number `json:"activityId"`
	Title            string      `json:"title"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	ShortDescription string      `json:"shortDescription"`
	ImageURL         string      `json:"imageUrl"`
	Image            string      `json:"image"`
	CoverImage       string      `json:"coverImage"`
	Price            json.Number `json:"price"`
	SalePrice        json.Number `json:"salePrice"`
	FromPrice        json.Number `json:"fromPrice"`
	Currency         string      `json:"currency"`
	Duration         string      `json:"duration"`
	Rating           json.Number `json:"rating"`
	Score            json.Number `json:"score"`
	ReviewCount      json.Number `json:"reviewCount"`
	ReviewsCount     json.Number `json:"reviewsCount"`
	Categories       []string    `json:"categories"`
	Tags             []string    `json:"tags"`
	URL              string      `json:"url"`
}

type nextPageProps struct {
	SearchResult struct {
		Activities []nextItem `json:"activities"`
	} `json:"searchResult"`
	Activities []nextItem `json:"activities"`
	Data       struct {
		Activities []nextItem `json:"activities"`
	} `json:"data"`
	InitialData struct {
		Activities []nextItem `json:"activities"`
	} `json:"initialData"`
}

type nextData struct {
	Props struct {
		PageProps nextPageProps `json:"pageProps"`
	} `json:"props"`
}

// extractNextData reads the server-rendered __NEXT_DATA__ blob and checks
// the known pageProps locations for an activity list. The first non-empty
// list wins.
func extractNextData(html, pageCurrency string) []rawActivity {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	payload := doc.Find(`script#__NEXT_DATA__`).First().Text()
	if payload == "" {
		return nil
	}

	var nd nextData
	if err := json.Unmarshal([]byte(payload), &nd); err != nil {
		return nil
	}

	props := nd.Props.PageProps
	lists := [][]nextItem{
		props.SearchResult.Activities,
		props.Activities,
		props.Data.Activities,
		props.InitialData.Activities,
	}

	for _, list := range lists {
		if len(list) == 0 {
			continue
		}
		var activities []rawActivity
		for _, item := range list {
			a := nextItemActivity(item, pageCurrency)
			if a.Title != "" {
				activities = append(activities, a)
			}
		}
		if len(activities) > 0 {
			return activities
		}
	}
	return nil
}

func nextItemActivity(item nextItem, pageCurrency string) rawActivity {
	id := firstNonEmpty(item.ID.String(), item.ActivityID.String())
	if id == "" || id == "0" {
		id = uuid.NewString()
	}

	description := firstNonEmpty(item.Description, item.ShortDescription)
	duration := item.Duration
	if duration == "" {
		duration = extractDuration(description)
	}

	linkURL := item.URL
	if linkURL == "" && item.ID.String() != "" {
		linkURL = "/activity/" + item.ID.String()
	}

	categories := item.Categories
	if len(categories) == 0 {
		categories = item.Tags
	}

	return rawActivity{
		ID:          id,
		Title:       firstNonEmpty(item.Title, item.Name),
		Description: description,
		ImageURL:    firstNonEmpty(item.ImageURL, item.Image, item.CoverImage),
		Price:       firstPositive(item.Price, item.SalePrice, item.FromPrice),
		Currency:    firstNonEmpty(item.Currency, pageCurrency),
		Duration:    duration,
		Rating:      firstPositive(item.Rating, item.Score),
		ReviewCount: int(firstPositive(item.ReviewCount, item.ReviewsCount)),
		Categories:  categories,
		URL:         linkURL,
	}
}

func firstPositive(numbers ...json.Number) float64 {
	for _, n := range numbers {
		if f := numberFloat(n); f > 0 {
			return f
		}
	}
	return 0
}
