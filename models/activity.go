package models

type ActivityImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Activity is a normalized "thing to do" record, sourced from a live scrape
// or the curated fallback tables.
type Activity struct {
	ID               string          `json:"id"`
	Provider         string          `json:"provider"`
	ProviderCode     string          `json:"providerProductCode"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Images           []ActivityImage `json:"images"`
	Duration         string          `json:"duration"`
	Price            Money           `json:"price"`
	PricePerPerson   Money           `json:"pricePerPerson"`
	Rating           float64         `json:"rating,omitempty"`
	ReviewCount      int             `json:"reviewCount,omitempty"`
	Categories       []string        `json:"categories"`
	BookingURL       string          `json:"bookingUrl,omitempty"`
}

// HasImage reports whether the activity carries at least one non-empty
// http(s) image URL. Activities failing this are dropped before display.
func (a *Activity) HasImage() bool {
	for _, img := range a.Images {
		if len(img.URL) >= 4 && img.URL[:4] == "http" {
			return true
		}
	}
	return false
}
