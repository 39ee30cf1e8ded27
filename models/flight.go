package models

// FlightSegment is one physical flight between two airports.
type FlightSegment struct {
	DepartureAirport     string `json:"departureAirport"`
	DepartureAirportName string `json:"departureAirportName"`
	DepartureCity        string `json:"departureCity"`
	ArrivalAirport       string `json:"arrivalAirport"`
	ArrivalAirportName   string `json:"arrivalAirportName"`
	ArrivalCity          string `json:"arrivalCity"`
	DepartureTime        string `json:"departureTime"` // HH:MM
	ArrivalTime          string `json:"arrivalTime"`
	DepartureDate        string `json:"departureDate"` // YYYY-MM-DD
	ArrivalDate          string `json:"arrivalDate"`
	FlightNumber         string `json:"flightNumber"`
	AirlineCode          string `json:"airlineCode"`
	AirlineName          string `json:"airlineName"`
	AirlineLogo          string `json:"airlineLogo"`
	OperatingCarrier     string `json:"operatingCarrier,omitempty"`
	Duration             int    `json:"duration"` // minutes
	CabinClass           string `json:"cabinClass"`
	Aircraft             string `json:"aircraft,omitempty"`
	BaggageIncluded      bool   `json:"baggageIncluded"`
}

// FlightSlice is one direction of an itinerary (outbound or inbound).
type FlightSlice struct {
	Origin          string          `json:"origin"`
	OriginName      string          `json:"originName"`
	OriginCity      string          `json:"originCity"`
	Destination     string          `json:"destination"`
	DestinationName string          `json:"destinationName"`
	DestinationCity string          `json:"destinationCity"`
	AirlineCode     string          `json:"airlineCode"`
	AirlineName     string          `json:"airlineName"`
	AirlineLogo     string          `json:"airlineLogo"`
	Stops           int             `json:"stops"`
	Duration        int             `json:"duration"` // minutes
	DepartureTime   string          `json:"departureTime"`
	ArrivalTime     string          `json:"arrivalTime"`
	DepartureDate   string          `json:"departureDate"`
	ArrivalDate     string          `json:"arrivalDate"`
	Segments        []FlightSegment `json:"segments"`
}

// FareBreakdown is the estimated per-passenger-type split of an offer's total.
type FareBreakdown struct {
	Type           string  `json:"type"` // adult, child, infant
	Count          int     `json:"count"`
	PricePerPerson float64 `json:"pricePerPerson"`
	TotalPrice     float64 `json:"totalPrice"`
}

type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Total    int `json:"total"`
}

// FlightOffer is an immutable snapshot of one priced itinerary from a search
// response. Offers are never mutated after creation.
type FlightOffer struct {
	ID                     string          `json:"id"`
	Price                  float64         `json:"price"`
	BasePrice              float64         `json:"basePrice"`
	TaxAmount              float64         `json:"taxAmount"`
	Currency               Currency        `json:"currency"`
	OwnerCode              string          `json:"ownerCode"`
	OwnerName              string          `json:"ownerName"`
	OwnerLogo              string          `json:"ownerLogo"`
	Outbound               FlightSlice     `json:"outbound"`
	Inbound                *FlightSlice    `json:"inbound"`
	Passengers             PassengerCounts `json:"passengers"`
	FareBreakdown          []FareBreakdown `json:"passengerFareBreakdown"`
	CabinBaggage           string          `json:"cabinBaggage"`
	CheckedBaggage         string          `json:"checkedBaggage"`
	PaymentDeadline        string          `json:"paymentDeadline,omitempty"`
	InstantPaymentRequired bool            `json:"instantPaymentRequired,omitempty"`
}

// TotalDuration sums outbound and inbound duration in minutes.
func (f *FlightOffer) TotalDuration() int {
	d := f.Outbound.Duration
	if f.Inbound != nil {
		d += f.Inbound.Duration
	}
	return d
}

// TotalStops sums stops across both directions.
func (f *FlightOffer) TotalStops() int {
	s := f.Outbound.Stops
	if f.Inbound != nil {
		s += f.Inbound.Stops
	}
	return s
}

// MaxStops is the worst direction of the itinerary; a missing inbound
// counts as zero stops.
func (f *FlightOffer) MaxStops() int {
	s := f.Outbound.Stops
	if f.Inbound != nil && f.Inbound.Stops > s {
		s = f.Inbound.Stops
	}
	return s
}
