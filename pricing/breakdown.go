// Package pricing aggregates component prices into a package total.
package pricing

import "math"

// Input carries the live component prices for one package. Flight and
// hotel prices are pointers: nil means the upstream provider failed to
// price that component.
type Input struct {
	FlightPrice   *float64
	HotelPrice    *float64
	ActivityTotal float64
	Nights        int
	Adults        int
}

// Breakdown is the derived price summary shown to the user. Total and
// PerPerson are nil whenever a core price is missing: a missing price is
// surfaced as "unavailable", never fabricated or estimated.
type Breakdown struct {
	FlightPrice   *float64 `json:"flightPrice"`
	HotelPrice    *float64 `json:"hotelPrice"`
	ActivityTotal float64  `json:"activityTotal"`
	Total         *float64 `json:"total"`
	PerPerson     *float64 `json:"perPerson"`
}

// CalculateTotalPrice combines flight, hotel, and activity prices.
// PerPerson is the rounded total divided by the adult count.
func CalculateTotalPrice(in Input) Breakdown {
	out := Breakdown{
		FlightPrice:   in.FlightPrice,
		HotelPrice:    in.HotelPrice,
		ActivityTotal: in.ActivityTotal,
	}

	if in.FlightPrice == nil || in.HotelPrice == nil {
		return out
	}

	total := *in.FlightPrice + *in.HotelPrice + in.ActivityTotal
	out.Total = &total

	if in.Adults > 0 {
		perPerson := math.Round(total / float64(in.Adults))
		out.PerPerson = &perPerson
	}

	return out
}
