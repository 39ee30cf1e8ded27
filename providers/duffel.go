// Package providers holds the upstream aggregator clients: Duffel for
// flights and RateHawk for hotels. Both fail soft: an unconfigured or
// failing provider yields an empty result set, never a hard error, so the
// results page can render its "call us" panel instead of a 500.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"time"

	"globehunters/config"
	"globehunters/httputil"
	"globehunters/models"
)

// FlightQuery describes one flight search.
type FlightQuery struct {
	Origin            string
	Destination       string
	DepartureDate     string
	ReturnDate        string // empty for one-way
	Adults            int
	Children          int
	ChildAges         []int
	Currency          models.Currency
	CabinClass        string
	DirectFlightsOnly bool
}

// CacheKey is stable across identical searches and keys the 5-minute
// response cache.
func (q FlightQuery) CacheKey() string {
	ret := q.ReturnDate
	if ret == "" {
		ret = "oneway"
	}
	direct := "all"
	if q.DirectFlightsOnly {
		direct = "direct"
	}
	return fmt.Sprintf("flights:%s-%s-%s-%s-%da%dc-%s-%s-%s",
		q.Origin, q.Destination, q.DepartureDate, ret, q.Adults, q.Children, q.Currency, q.CabinClass, direct)
}

// DuffelClient searches flights through the Duffel offers API.
type DuffelClient struct {
	cfg    config.DuffelConfig
	client *http.Client
}

func NewDuffelClient(cfg config.DuffelConfig, clients *httputil.Clients) *DuffelClient {
	return &DuffelClient{cfg: cfg, client: clients.API}
}

// Configured reports whether an access token is present. Unconfigured
// clients return empty result sets.
func (d *DuffelClient) Configured() bool {
	return d.cfg.AccessToken != ""
}

// Duffel wire types, trimmed to the fields the transform reads.

type duffelPlace struct {
	IataCode string `json:"iata_code"`
	Name     string `json:"name"`
	CityName string `json:"city_name"`
}

type duffelCarrier struct {
	IataCode      string `json:"iata_code"`
	Name          string `json:"name"`
	LogoSymbolURL string `json:"logo_symbol_url"`
	LogoLockupURL string `json:"logo_lockup_url"`
}

type duffelBaggage struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type duffelSegmentPassenger struct {
	CabinClass              string          `json:"cabin_class"`
	CabinClassMarketingName string          `json:"cabin_class_marketing_name"`
	Baggages                []duffelBaggage `json:"baggages"`
}

type duffelSegment struct {
	Origin                       duffelPlace              `json:"origin"`
	Destination                  duffelPlace              `json:"destination"`
	DepartingAt                  string                   `json:"departing_at"`
	ArrivingAt                   string                   `json:"arriving_at"`
	Duration                     string                   `json:"duration"`
	MarketingCarrier             duffelCarrier            `json:"marketing_carrier"`
	OperatingCarrier             duffelCarrier            `json:"operating_carrier"`
	MarketingCarrierFlightNumber string                   `json:"marketing_carrier_flight_number"`
	Aircraft                     struct{ Name string }    `json:"aircraft"`
	Passengers                   []duffelSegmentPassenger `json:"passengers"`
}

type duffelSlice struct {
	Origin      duffelPlace     `json:"origin"`
	Destination duffelPlace     `json:"destination"`
	Duration    string          `json:"duration"`
	Segments    []duffelSegment `json:"segments"`
}

type duffelOffer struct {
	ID            string        `json:"id"`
	TotalAmount   string        `json:"total_amount"`
	TotalCurrency string        `json:"total_currency"`
	BaseAmount    string        `json:"base_amount"`
	TaxAmount     string        `json:"tax_amount"`
	Slices        []duffelSlice `json:"slices"`
	Owner         duffelCarrier `json:"owner"`
	Passengers    []struct {
		Type string `json:"type"`
	} `json:"passengers"`
	PaymentRequirements struct {
		RequiresInstantPayment bool   `json:"requires_instant_payment"`
		PaymentRequiredBy      string `json:"payment_required_by"`
	} `json:"payment_requirements"`
}

// SearchFlights creates a Duffel offer request and transforms the returned
// offers. The result is sorted by price ascending.
func (d *DuffelClient) SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightOffer, error) {
	if !d.Configured() {
		log.Println("[FlightSearch] Duffel token not configured, returning no offers")
		return nil, nil
	}

	passengers, childCount, infantCount := buildPassengers(q)

	slices := []map[string]string{
		{"origin": q.Origin, "destination": q.Destination, "departure_date": q.DepartureDate},
	}
	if q.ReturnDate != "" {
		slices = append(slices, map[string]string{
			"origin": q.Destination, "destination": q.Origin, "departure_date": q.ReturnDate,
		})
	}

	cabin := q.CabinClass
	if cabin == "" {
		cabin = "economy"
	}

	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"slices":        slices,
			"passengers":    passengers,
			"cabin_class":   cabin,
			"return_offers": true,
			"currency":      string(q.Currency),
		},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[FlightSearch] searching %s -> %s, %s - %s, %da %dc, direct=%v",
		q.Origin, q.Destination, q.DepartureDate, q.ReturnDate, q.Adults, q.Children, q.DirectFlightsOnly)

	resp, err := httputil.DoWithRetry(ctx, d.client, "FlightSearch", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+"/air/offer_requests", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+d.cfg.AccessToken)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Duffel-Version", "v2")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := "flight search failed"
		if len(apiErr.Errors) > 0 {
			msg = apiErr.Errors[0].Message
		}
		return nil, fmt.Errorf("duffel: %s (status %d)", msg, resp.StatusCode)
	}

	var payload struct {
		Data struct {
			Offers []duffelOffer `json:"offers"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}

	log.Printf("[FlightSearch] received %d offers", len(payload.Data.Offers))

	flights := transformOffers(payload.Data.Offers, q.Adults, childCount, infantCount, len(passengers), q.DirectFlightsOnly)
	return flights, nil
}

// buildPassengers maps the adult/child counts to Duffel's passenger list.
// Children get an age so Duffel infers the type; under-2s count as infants.
func buildPassengers(q FlightQuery) (passengers []map[string]any, childCount, infantCount int) {
	for i := 0; i < q.Adults; i++ {
		passengers = append(passengers, map[string]any{"type": "adult"})
	}
	for i := 0; i < q.Children; i++ {
		age := 7
		if i < len(q.ChildAges) {
			age = q.ChildAges[i]
		}
		if age < 2 {
			infantCount++
		} else {
			childCount++
		}
		passengers = append(passengers, map[string]any{"age": age})
	}
	return passengers, childCount, infantCount
}

func transformOffers(offers []duffelOffer, adults, children, infants, passengerCount int, directOnly bool) []models.FlightOffer {
	flights := make([]models.FlightOffer, 0, len(offers))

	for _, offer := range offers {
		if len(offer.Slices) == 0 || !slicesHaveSegments(offer.Slices) {
			continue
		}

		outbound := transformSlice(offer.Slices[0])
		var inbound *models.FlightSlice
		if len(offer.Slices) > 1 {
			s := transformSlice(offer.Slices[1])
			inbound = &s
		}

		cabinBag, checkedBag := firstSegmentBaggage(offer.Slices[0])

		ownerLogo := offer.Owner.LogoLockupURL
		if ownerLogo == "" {
			ownerLogo = offer.Owner.LogoSymbolURL
		}

		flights = append(flights, models.FlightOffer{
			ID:        offer.ID,
			Price:     parseAmount(offer.TotalAmount),
			BasePrice: parseAmount(offer.BaseAmount),
			TaxAmount: parseAmount(offer.TaxAmount),
			Currency:  models.Currency(offer.TotalCurrency),
			OwnerCode: offer.Owner.IataCode,
			OwnerName: offer.Owner.Name,
			OwnerLogo: ownerLogo,
			Outbound:  outbound,
			Inbound:   inbound,
			Passengers: models.PassengerCounts{
				Adults:   adults,
				Children: children,
				Infants:  infants,
				Total:    passengerCount,
			},
			FareBreakdown:          fareBreakdown(offer, adults, children, infants),
			CabinBaggage:           describeCabinBaggage(cabinBag),
			CheckedBaggage:         describeCheckedBaggage(checkedBag),
			PaymentDeadline:        offer.PaymentRequirements.PaymentRequiredBy,
			InstantPaymentRequired: offer.PaymentRequirements.RequiresInstantPayment,
		})
	}

	if directOnly {
		direct := flights[:0]
		for _, f := range flights {
			if f.MaxStops() == 0 {
				direct = append(direct, f)
			}
		}
		flights = direct
		log.Printf("[FlightSearch] filtered to %d direct flights", len(flights))
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})
	return flights
}

// slicesHaveSegments rejects offers that decode with an empty segment list
// in either direction; transformSlice needs at least one segment per slice.
func slicesHaveSegments(slices []duffelSlice) bool {
	for _, s := range slices {
		if len(s.Segments) == 0 {
			return false
		}
	}
	return true
}

func transformSlice(slice duffelSlice) models.FlightSlice {
	first := slice.Segments[0]
	last := slice.Segments[len(slice.Segments)-1]

	duration := parseISODuration(slice.Duration)
	if duration == 0 {
		duration = durationFromTimes(first.DepartingAt, last.ArrivingAt)
	}

	out := models.FlightSlice{
		Origin:          slice.Origin.IataCode,
		OriginName:      slice.Origin.Name,
		OriginCity:      slice.Origin.CityName,
		Destination:     slice.Destination.IataCode,
		DestinationName: slice.Destination.Name,
		DestinationCity: slice.Destination.CityName,
		AirlineCode:     first.MarketingCarrier.IataCode,
		AirlineName:     first.MarketingCarrier.Name,
		AirlineLogo:     first.MarketingCarrier.LogoSymbolURL,
		Stops:           len(slice.Segments) - 1,
		Duration:        duration,
		DepartureTime:   formatTime(first.DepartingAt),
		ArrivalTime:     formatTime(last.ArrivingAt),
		DepartureDate:   formatDate(first.DepartingAt),
		ArrivalDate:     formatDate(last.ArrivingAt),
	}

	for _, seg := range slice.Segments {
		cabin := "Economy"
		baggage := false
		if len(seg.Passengers) > 0 {
			if seg.Passengers[0].CabinClassMarketingName != "" {
				cabin = seg.Passengers[0].CabinClassMarketingName
			}
			for _, b := range seg.Passengers[0].Baggages {
				if b.Type == "checked" && b.Quantity > 0 {
					baggage = true
				}
			}
		}

		out.Segments = append(out.Segments, models.FlightSegment{
			DepartureAirport:     seg.Origin.IataCode,
			DepartureAirportName: seg.Origin.Name,
			DepartureCity:        seg.Origin.CityName,
			ArrivalAirport:       seg.Destination.IataCode,
			ArrivalAirportName:   seg.Destination.Name,
			ArrivalCity:          seg.Destination.CityName,
			DepartureTime:        formatTime(seg.DepartingAt),
			ArrivalTime:          formatTime(seg.ArrivingAt),
			DepartureDate:        formatDate(seg.DepartingAt),
			ArrivalDate:          formatDate(seg.ArrivingAt),
			FlightNumber:         seg.MarketingCarrier.IataCode + seg.MarketingCarrierFlightNumber,
			AirlineCode:          seg.MarketingCarrier.IataCode,
			AirlineName:          seg.MarketingCarrier.Name,
			AirlineLogo:          seg.MarketingCarrier.LogoSymbolURL,
			OperatingCarrier:     seg.OperatingCarrier.Name,
			Duration:             parseISODuration(seg.Duration),
			CabinClass:           cabin,
			Aircraft:             seg.Aircraft.Name,
			BaggageIncluded:      baggage,
		})
	}

	return out
}

// fareBreakdown estimates the per-passenger-type split. Duffel does not
// price per passenger, so the split uses fixed weights: children around
// 85% of an adult fare, lap infants around 10%.
func fareBreakdown(offer duffelOffer, adults, children, infants int) []models.FareBreakdown {
	adultCount, childCount, infantCount := 0, 0, 0
	for _, p := range offer.Passengers {
		switch p.Type {
		case "adult":
			adultCount++
		case "child":
			childCount++
		case "infant_without_seat", "infant_with_seat":
			infantCount++
		}
	}
	if adultCount == 0 {
		adultCount = adults
	}
	if childCount == 0 {
		childCount = children
	}
	if infantCount == 0 {
		infantCount = infants
	}

	const (
		adultWeight  = 1.0
		childWeight  = 0.85
		infantWeight = 0.10
	)

	totalWeight := float64(adultCount)*adultWeight + float64(childCount)*childWeight + float64(infantCount)*infantWeight
	if totalWeight == 0 {
		return nil
	}
	perWeight := parseAmount(offer.TotalAmount) / totalWeight

	var breakdown []models.FareBreakdown
	add := func(typ string, count int, weight float64) {
		if count == 0 {
			return
		}
		per := round2(perWeight * weight)
		breakdown = append(breakdown, models.FareBreakdown{
			Type:           typ,
			Count:          count,
			PricePerPerson: per,
			TotalPrice:     round2(per * float64(count)),
		})
	}
	add("adult", adultCount, adultWeight)
	add("child", childCount, childWeight)
	add("infant", infantCount, infantWeight)
	return breakdown
}

func firstSegmentBaggage(slice duffelSlice) (cabin, checked *duffelBaggage) {
	if len(slice.Segments) == 0 || len(slice.Segments[0].Passengers) == 0 {
		return nil, nil
	}
	for i, b := range slice.Segments[0].Passengers[0].Baggages {
		switch b.Type {
		case "carry_on":
			cabin = &slice.Segments[0].Passengers[0].Baggages[i]
		case "checked":
			checked = &slice.Segments[0].Passengers[0].Baggages[i]
		}
	}
	return cabin, checked
}

func describeCabinBaggage(b *duffelBaggage) string {
	if b != nil && b.Quantity > 0 {
		return fmt.Sprintf("%d × Cabin bag (up to 10kg)", b.Quantity)
	}
	return "Personal item only (40×30×15cm)"
}

func describeCheckedBaggage(b *duffelBaggage) string {
	if b != nil && b.Quantity > 0 {
		return fmt.Sprintf("%d × Checked bag (23kg each)", b.Quantity)
	}
	return "Not included – available to purchase"
}

var isoDuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// parseISODuration converts "PT2H30M" style durations to minutes.
func parseISODuration(s string) int {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

func durationFromTimes(departing, arriving string) int {
	dep, err1 := time.Parse(time.RFC3339, departing)
	arr, err2 := time.Parse(time.RFC3339, arriving)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(math.Round(arr.Sub(dep).Minutes()))
}

func formatTime(dateTime string) string {
	t, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		// Duffel sometimes omits the zone on local times
		t, err = time.Parse("2006-01-02T15:04:05", dateTime)
		if err != nil {
			return ""
		}
	}
	return t.Format("15:04")
}

func formatDate(dateTime string) string {
	t, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04:05", dateTime)
		if err != nil {
			return ""
		}
	}
	return t.Format("2006-01-02")
}

func parseAmount(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
