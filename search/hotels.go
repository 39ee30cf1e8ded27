package search

import (
	"sort"
	"strings"

	"globehunters/models"
)

// HotelFilter holds the user's active hotel constraints.
type HotelFilter struct {
	Stars            []int
	MinPricePerNight *float64
	MaxPricePerNight *float64
	FreeCancellation bool
	PopularFilters   []string // breakfast, pool, wifi, parking
	RoomAmenities    []string // all must be present
	MinReviewScore   *float64
	PropertyTypes    []string
}

// HotelScoreWeights back the "topPicks" sort; higher score surfaces first.
type HotelScoreWeights struct {
	Quality float64 // multiplier on review score (or stars*2 when unreviewed)
	Price   float64 // divisor on price per night
}

var DefaultHotelWeights = HotelScoreWeights{
	Quality: 10,
	Price:   100,
}

// Score computes the topPicks ranking value; higher is better. Hotels with
// no review score fall back to starRating*2 so a fresh 5-star listing is
// not buried.
func (w HotelScoreWeights) Score(h *models.HotelOffer) float64 {
	quality := h.ReviewScore
	if quality == 0 {
		quality = float64(h.StarRating) * 2
	}
	return quality*w.Quality - h.PricePerNight/w.Price
}

// FilterHotels returns the hotels that pass every active predicate.
func FilterHotels(hotels []models.HotelOffer, filter HotelFilter) []models.HotelOffer {
	out := make([]models.HotelOffer, 0, len(hotels))
	for i := range hotels {
		if hotelMatches(&hotels[i], filter) {
			out = append(out, hotels[i])
		}
	}
	return out
}

func hotelMatches(h *models.HotelOffer, filter HotelFilter) bool {
	if len(filter.Stars) > 0 && !containsInt(filter.Stars, h.StarRating) {
		return false
	}
	if filter.MinPricePerNight != nil && h.PricePerNight < *filter.MinPricePerNight {
		return false
	}
	if filter.MaxPricePerNight != nil && h.PricePerNight > *filter.MaxPricePerNight {
		return false
	}
	if filter.FreeCancellation && !h.FreeCancellation {
		return false
	}
	for _, pf := range filter.PopularFilters {
		if !popularFilterMatches(h, pf) {
			return false
		}
	}
	for _, amenity := range filter.RoomAmenities {
		if !containsString(h.RoomAmenities, amenity) {
			return false
		}
	}
	if filter.MinReviewScore != nil && h.ReviewScore < *filter.MinReviewScore {
		return false
	}
	if len(filter.PropertyTypes) > 0 && !containsString(filter.PropertyTypes, h.Kind) {
		return false
	}
	return true
}

// popularFilterMatches implements the quick-filter chips. Breakfast counts
// when it is either in the meal plan or listed as an amenity; the rest
// match amenities by substring.
func popularFilterMatches(h *models.HotelOffer, filter string) bool {
	switch strings.ToLower(filter) {
	case "breakfast":
		if strings.Contains(strings.ToLower(h.MealPlan), "breakfast") {
			return true
		}
		return amenityContains(h.Amenities, "breakfast")
	case "pool":
		return amenityContains(h.Amenities, "pool")
	case "wifi":
		return amenityContains(h.Amenities, "wifi")
	case "parking":
		return amenityContains(h.Amenities, "parking")
	case "freecancellation":
		return h.FreeCancellation
	}
	return false
}

func amenityContains(amenities []string, substr string) bool {
	for _, a := range amenities {
		if strings.Contains(strings.ToLower(a), substr) {
			return true
		}
	}
	return false
}

// HotelSortKey selects the ordering of a hotel result set.
type HotelSortKey string

const (
	HotelSortTopPicks HotelSortKey = "topPicks"
	HotelSortPrice    HotelSortKey = "price"
	HotelSortReview   HotelSortKey = "review"
	HotelSortStars    HotelSortKey = "stars"
)

// SortHotels orders hotels by the given key, stable on ties.
func SortHotels(hotels []models.HotelOffer, key HotelSortKey, weights HotelScoreWeights) {
	switch key {
	case HotelSortPrice:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Price < hotels[j].Price
		})
	case HotelSortReview:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].ReviewScore > hotels[j].ReviewScore
		})
	case HotelSortStars:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].StarRating > hotels[j].StarRating
		})
	default: // topPicks
		sort.SliceStable(hotels, func(i, j int) bool {
			return weights.Score(&hotels[i]) > weights.Score(&hotels[j])
		})
	}
}
