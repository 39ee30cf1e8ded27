package activities

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// JSON-LD shapes Klook embeds for SEO. Fields are loosely typed because
// the markup is inconsistent between page versions.
type ldOffer struct {
	Price         json.Number `json:"price"`
	PriceCurrency string      `json:"priceCurrency"`
}

type ldRating struct {
	RatingValue json.Number `json:"ratingValue"`
	ReviewCount json.Number `json:"reviewCount"`
}

type ldProduct struct {
	Type            string    `json:"@type"`
	ProductID       string    `json:"productID"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Image           ldImage   `json:"image"`
	URL             string    `json:"url"`
	Offers          *ldOffer  `json:"offers"`
	AggregateRating *ldRating `json:"aggregateRating"`
}

type ldListItem struct {
	Type string     `json:"@type"`
	Item *ldProduct `json:"item"`
	ldProduct
}

type ldDocument struct {
	Type            string       `json:"@type"`
	ItemListElement []ldListItem `json:"itemListElement"`
	ldProduct
}

// ldImage tolerates both a bare string and an array of strings.
type ldImage string

func (i *ldImage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = ldImage(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
		*i = ldImage(list[0])
	}
	return nil
}

// extractJSONLD pulls products out of ld+json script tags. Only entries
// with a title and a positive price survive.
func extractJSONLD(html, pageCurrency string) []rawActivity {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var activities []rawActivity
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var ld ldDocument
		if err := json.Unmarshal([]byte(s.Text()), &ld); err != nil {
			return
		}

		switch ld.Type {
		case "ItemList":
			for _, item := range ld.ItemListElement {
				product := item.Item
				if product == nil && item.Type == "Product" {
					product = &item.ldProduct
				}
				if product == nil {
					continue
				}
				if a, ok := productActivity(*product, pageCurrency); ok {
					activities = append(activities, a)
				}
			}
		case "Product":
			if a, ok := productActivity(ld.ldProduct, pageCurrency); ok {
				activities = append(activities, a)
			}
		}
	})
	return activities
}

func productActivity(p ldProduct, pageCurrency string) (rawActivity, bool) {
	a := rawActivity{
		ID:          firstNonEmpty(p.ProductID, p.SKU, uuid.NewString()),
		Title:       p.Name,
		Description: p.Description,
		ImageURL:    string(p.Image),
		Currency:    pageCurrency,
		Duration:    extractDuration(p.Description),
		URL:         p.URL,
	}
	if p.Offers != nil {
		a.Price = numberFloat(p.Offers.Price)
		if p.Offers.PriceCurrency != "" {
			a.Currency = p.Offers.PriceCurrency
		}
	}
	if p.AggregateRating != nil {
		a.Rating = numberFloat(p.AggregateRating.RatingValue)
		a.ReviewCount = int(numberFloat(p.AggregateRating.ReviewCount))
	}
	if a.Title == "" || a.Price <= 0 {
		return rawActivity{}, false
	}
	return a, true
}

func numberFloat(n json.Number) float64 {
	f, _ := n.Float64()
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
