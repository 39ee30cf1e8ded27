// Package search is the pure filter/sort engine applied to search results.
// Every function here is a side-effect-free function of its inputs; filters
// are conjunctive and an empty result is a valid outcome, not an error.
package search

import (
	"regexp"
	"sort"
	"strconv"

	"globehunters/models"
)

// FlightFilter holds the user's active flight constraints. Nil or empty
// fields are inactive.
type FlightFilter struct {
	Airlines        []string // airline-code membership
	Stops           []int    // max-stops membership: max(outbound, inbound) must be in the set
	MinPrice        *float64
	MaxPrice        *float64
	MaxDuration     *int // total outbound+inbound minutes
	DepartureAfter  *int // hour of day, inclusive
	DepartureBefore *int // hour of day, inclusive
	CabinBaggage    bool
	CheckedBaggage  bool
}

// FlightScoreWeights are the constants behind the "best" sort. They are a
// business heuristic, not a provable optimum; tests pin their behavior.
type FlightScoreWeights struct {
	Price    float64
	Duration float64
	Stops    float64
}

var DefaultFlightWeights = FlightScoreWeights{
	Price:    0.5,
	Duration: 0.3,
	Stops:    100,
}

// Score computes the "best" ranking value for a flight; lower is better.
func (w FlightScoreWeights) Score(f *models.FlightOffer) float64 {
	return f.Price*w.Price + float64(f.TotalDuration())*w.Duration + float64(f.TotalStops())*w.Stops
}

// FilterFlights returns the offers that pass every active predicate.
func FilterFlights(offers []models.FlightOffer, filter FlightFilter) []models.FlightOffer {
	out := make([]models.FlightOffer, 0, len(offers))
	for i := range offers {
		if flightMatches(&offers[i], filter) {
			out = append(out, offers[i])
		}
	}
	return out
}

func flightMatches(f *models.FlightOffer, filter FlightFilter) bool {
	if len(filter.Airlines) > 0 && !containsString(filter.Airlines, f.Outbound.AirlineCode) {
		return false
	}
	if len(filter.Stops) > 0 && !containsInt(filter.Stops, f.MaxStops()) {
		return false
	}
	if filter.MinPrice != nil && f.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && f.Price > *filter.MaxPrice {
		return false
	}
	if filter.MaxDuration != nil && f.TotalDuration() > *filter.MaxDuration {
		return false
	}
	if !departureHourMatches(f.Outbound.DepartureTime, filter.DepartureAfter, filter.DepartureBefore) {
		return false
	}
	if filter.CabinBaggage && f.CabinBaggage == "" {
		return false
	}
	if filter.CheckedBaggage && !checkedBaggageIncluded(f) {
		return false
	}
	return true
}

var hourPrefix = regexp.MustCompile(`^(\d{1,2}):`)

// departureHourMatches checks the departure hour window. A departure time
// that does not look like "HH:MM" passes the window unfiltered.
func departureHourMatches(departureTime string, after, before *int) bool {
	if after == nil && before == nil {
		return true
	}

	m := hourPrefix.FindStringSubmatch(departureTime)
	if m == nil {
		return true
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return true
	}

	if after != nil && hour < *after {
		return false
	}
	if before != nil && hour > *before {
		return false
	}
	return true
}

func checkedBaggageIncluded(f *models.FlightOffer) bool {
	for _, seg := range f.Outbound.Segments {
		if seg.BaggageIncluded {
			return true
		}
	}
	return false
}

// FlightSortKey selects the ordering of a flight result set.
type FlightSortKey string

const (
	FlightSortBest     FlightSortKey = "best"
	FlightSortPrice    FlightSortKey = "price"
	FlightSortDuration FlightSortKey = "duration"
)

// SortFlights orders offers by the given key. Sorting is stable: equal keys
// preserve the upstream (price-ascending) order.
func SortFlights(offers []models.FlightOffer, key FlightSortKey, weights FlightScoreWeights) {
	switch key {
	case FlightSortPrice:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].Price < offers[j].Price
		})
	case FlightSortDuration:
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].TotalDuration() < offers[j].TotalDuration()
		})
	default: // best
		sort.SliceStable(offers, func(i, j int) bool {
			return weights.Score(&offers[i]) < weights.Score(&offers[j])
		})
	}
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
