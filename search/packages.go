package search

import (
	"sort"

	"globehunters/models"
)

// PackageFilter holds the user's active package constraints.
type PackageFilter struct {
	MaxPricePerPerson *float64
	MinStars          *int
	MaxStops          *int
	FreeCancellation  bool
}

// FilterPackages returns the packages that pass every active predicate.
func FilterPackages(pkgs []models.PackageOffer, filter PackageFilter) []models.PackageOffer {
	out := make([]models.PackageOffer, 0, len(pkgs))
	for i := range pkgs {
		if packageMatches(&pkgs[i], filter) {
			out = append(out, pkgs[i])
		}
	}
	return out
}

func packageMatches(p *models.PackageOffer, filter PackageFilter) bool {
	if filter.MaxPricePerPerson != nil && p.PricePerPerson > *filter.MaxPricePerPerson {
		return false
	}
	if filter.MinStars != nil && p.Hotel.StarRating < *filter.MinStars {
		return false
	}
	if filter.MaxStops != nil && p.Flight.Stops > *filter.MaxStops {
		return false
	}
	if filter.FreeCancellation && !p.Hotel.FreeCancellation {
		return false
	}
	return true
}

// PackageSortKey selects the ordering of a package result set.
type PackageSortKey string

const (
	PackageSortPrice PackageSortKey = "price"
	PackageSortStars PackageSortKey = "stars"
)

// SortPackages orders packages by the given key, stable on ties.
func SortPackages(pkgs []models.PackageOffer, key PackageSortKey) {
	switch key {
	case PackageSortStars:
		sort.SliceStable(pkgs, func(i, j int) bool {
			return pkgs[i].Hotel.StarRating > pkgs[j].Hotel.StarRating
		})
	default: // price
		sort.SliceStable(pkgs, func(i, j int) bool {
			return pkgs[i].TotalPrice < pkgs[j].TotalPrice
		})
	}
}
