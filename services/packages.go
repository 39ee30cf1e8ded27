// Package services holds the composition logic sitting between the HTTP
// handlers and the upstream provider clients.
package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"globehunters/models"
	"globehunters/providers"
)

// PackageService assembles holiday packages from a flight search and a
// hotel search run in parallel against the same destination and dates.
type PackageService struct {
	flights *providers.DuffelClient
	hotels  *providers.RateHawkClient
}

func NewPackageService(flights *providers.DuffelClient, hotels *providers.RateHawkClient) *PackageService {
	return &PackageService{flights: flights, hotels: hotels}
}

// PackageQuery describes one package search. Origin and Destination are
// pre-validated against the allow-lists before this service is called.
type PackageQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Rooms         int
	Currency      models.Currency
}

// SearchResult carries the assembled packages plus the resolved region, or
// a user-facing message when one side of the search came back empty.
type SearchResult struct {
	Packages []models.PackageOffer
	Region   *providers.Region
	Message  string
}

const (
	maxPackageHotels      = 30
	maxAlternativeFlights = 4
)

// Search resolves the region, fans out to both providers concurrently, and
// combines the cheapest flight with each of the top hotels.
func (s *PackageService) Search(ctx context.Context, q PackageQuery) (*SearchResult, error) {
	region, err := s.hotels.SearchRegion(ctx, q.Destination)
	if err != nil {
		return nil, fmt.Errorf("region lookup: %w", err)
	}
	if region == nil {
		return &SearchResult{Message: "Destination not found"}, nil
	}

	var (
		wg        sync.WaitGroup
		flights   []models.FlightOffer
		hotels    []models.HotelOffer
		flightErr error
		hotelErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		flights, flightErr = s.flights.SearchFlights(ctx, providers.FlightQuery{
			Origin:        q.Origin,
			Destination:   q.Destination,
			DepartureDate: q.DepartureDate,
			ReturnDate:    q.ReturnDate,
			Adults:        q.Adults,
			Children:      q.Children,
			Currency:      q.Currency,
			CabinClass:    "economy",
		})
	}()
	go func() {
		defer wg.Done()
		hotels, hotelErr = s.hotels.SearchHotels(ctx, region, providers.HotelQuery{
			Destination: q.Destination,
			CheckIn:     q.DepartureDate,
			CheckOut:    q.ReturnDate,
			Adults:      q.Adults,
			Children:    q.Children,
			Rooms:       q.Rooms,
			Currency:    q.Currency,
		})
	}()
	wg.Wait()

	// A failed provider search degrades to "no results" on that side,
	// matching the fail-soft contract of the individual searches.
	if flightErr != nil {
		log.Printf("[PackageSearch] flight search failed: %v", flightErr)
	}
	if hotelErr != nil {
		log.Printf("[PackageSearch] hotel search failed: %v", hotelErr)
	}

	if len(flights) == 0 {
		return &SearchResult{Region: region, Message: "No flights available"}, nil
	}
	if len(hotels) == 0 {
		return &SearchResult{Region: region, Message: "No hotels available"}, nil
	}

	packages := assemblePackages(flights, hotels, region, q)
	return &SearchResult{Packages: packages, Region: region}, nil
}

// assemblePackages pairs the cheapest flight with each hotel, carrying the
// next-cheapest flights as alternatives with their price deltas.
func assemblePackages(flights []models.FlightOffer, hotels []models.HotelOffer, region *providers.Region, q PackageQuery) []models.PackageOffer {
	cheapest := flights[0]

	var alternatives []models.AlternativeFlight
	for i := 1; i < len(flights) && i <= maxAlternativeFlights; i++ {
		f := flights[i]
		alternatives = append(alternatives, models.AlternativeFlight{
			ID:              f.ID,
			AirlineCode:     f.Outbound.AirlineCode,
			AirlineName:     f.Outbound.AirlineName,
			Price:           f.Price,
			Stops:           f.MaxStops(),
			PriceDifference: f.Price - cheapest.Price,
		})
	}

	nights := providers.Nights(q.DepartureDate, q.ReturnDate)
	travellers := q.Adults + q.Children
	if travellers == 0 {
		travellers = 1
	}

	limit := len(hotels)
	if limit > maxPackageHotels {
		limit = maxPackageHotels
	}

	packages := make([]models.PackageOffer, 0, limit)
	for _, hotel := range hotels[:limit] {
		total := cheapest.Price + hotel.Price

		includes := []string{"Return flights", fmt.Sprintf("%d nights accommodation", nights)}
		if hotel.MealPlan != "Room Only" {
			includes = append(includes, hotel.MealPlan)
		}
		if hotel.FreeCancellation {
			includes = append(includes, "Free cancellation")
		}

		packages = append(packages, models.PackageOffer{
			ID:                 packageID(hotel.ID, cheapest.ID),
			Destination:        region.Name,
			DestinationCountry: region.Country,
			Nights:             nights,
			Days:               nights + 1,
			Flight:             packageFlight(&cheapest),
			Hotel: models.PackageHotel{
				ID:               hotel.ID,
				Name:             hotel.Name,
				StarRating:       hotel.StarRating,
				Address:          hotel.Address,
				MainImage:        hotel.MainImage,
				Images:           hotel.Images,
				Price:            hotel.Price,
				PricePerNight:    hotel.PricePerNight,
				RoomType:         hotel.RoomType,
				MealPlan:         hotel.MealPlan,
				FreeCancellation: hotel.FreeCancellation,
			},
			TotalPrice:         total,
			PricePerPerson:     math.Round(total / float64(travellers)),
			Currency:           q.Currency,
			Includes:           includes,
			AlternativeFlights: alternatives,
		})
	}

	sort.SliceStable(packages, func(i, j int) bool {
		return packages[i].TotalPrice < packages[j].TotalPrice
	})
	return packages
}

func packageFlight(f *models.FlightOffer) models.PackageFlight {
	pf := models.PackageFlight{
		ID:          f.ID,
		AirlineCode: f.Outbound.AirlineCode,
		AirlineName: f.Outbound.AirlineName,
		AirlineLogo: f.Outbound.AirlineLogo,
		Price:       f.Price,
		Stops:       f.MaxStops(),
		Outbound: models.PackageLeg{
			Origin:        f.Outbound.Origin,
			Destination:   f.Outbound.Destination,
			DepartureTime: f.Outbound.DepartureTime,
			ArrivalTime:   f.Outbound.ArrivalTime,
			Duration:      f.Outbound.Duration,
		},
	}
	if f.Inbound != nil {
		pf.Inbound = &models.PackageLeg{
			Origin:        f.Inbound.Origin,
			Destination:   f.Inbound.Destination,
			DepartureTime: f.Inbound.DepartureTime,
			ArrivalTime:   f.Inbound.ArrivalTime,
			Duration:      f.Inbound.Duration,
		}
	}
	return pf
}

// packageID is stable for a hotel+flight pair within one search, with a
// uuid fallback when the flight id is too short to slice.
func packageID(hotelID, flightID string) string {
	suffix := flightID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	if suffix == "" {
		suffix = uuid.NewString()[:8]
	}
	return fmt.Sprintf("pkg-%s-%s", hotelID, suffix)
}
