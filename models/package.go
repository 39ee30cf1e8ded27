package models

// PackageFlight is the flight component of a package, trimmed to what the
// package card needs.
type PackageFlight struct {
	ID          string      `json:"id"`
	AirlineCode string      `json:"airlineCode"`
	AirlineName string      `json:"airlineName"`
	AirlineLogo string      `json:"airlineLogo"`
	Price       float64     `json:"price"`
	Stops       int         `json:"stops"`
	Outbound    PackageLeg  `json:"outbound"`
	Inbound     *PackageLeg `json:"inbound"`
}

type PackageLeg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Duration      int    `json:"duration"`
}

// PackageHotel is the hotel component of a package.
type PackageHotel struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	StarRating       int      `json:"starRating"`
	Address          string   `json:"address"`
	MainImage        string   `json:"mainImage,omitempty"`
	Images           []string `json:"images"`
	Price            float64  `json:"price"`
	PricePerNight    float64  `json:"pricePerNight"`
	RoomType         string   `json:"roomType"`
	MealPlan         string   `json:"mealPlan"`
	FreeCancellation bool     `json:"freeCancellation"`
}

// AlternativeFlight is a pricier flight choice within the same package.
type AlternativeFlight struct {
	ID              string  `json:"id"`
	AirlineCode     string  `json:"airlineCode"`
	AirlineName     string  `json:"airlineName"`
	Price           float64 `json:"price"`
	Stops           int     `json:"stops"`
	PriceDifference float64 `json:"priceDifference"`
}

// PackageOffer combines the cheapest flight with one hotel for a destination.
type PackageOffer struct {
	ID                 string              `json:"id"`
	Destination        string              `json:"destination"`
	DestinationCountry string              `json:"destinationCountry"`
	Nights             int                 `json:"nights"`
	Days               int                 `json:"days"`
	Flight             PackageFlight       `json:"flight"`
	Hotel              PackageHotel        `json:"hotel"`
	TotalPrice         float64             `json:"totalPrice"`
	PricePerPerson     float64             `json:"pricePerPerson"`
	Currency           Currency            `json:"currency"`
	Includes           []string            `json:"includes"`
	AlternativeFlights []AlternativeFlight `json:"alternativeFlights"`
}
