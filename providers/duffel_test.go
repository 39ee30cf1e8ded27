package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"globehunters/config"
	"globehunters/httputil"
	"globehunters/models"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT2H30M", 150},
		{"PT45M", 45},
		{"PT11H", 660},
		{"garbage", 0},
	}
	for _, c := range cases {
		if got := parseISODuration(c.in); got != c.want {
			t.Errorf("parseISODuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatTimeHandlesMissingZone(t *testing.T) {
	if got := formatTime("2026-09-15T08:30:00Z"); got != "08:30" {
		t.Errorf("RFC3339 time = %q", got)
	}
	if got := formatTime("2026-09-15T08:30:00"); got != "08:30" {
		t.Errorf("zoneless time = %q", got)
	}
	if got := formatDate("2026-09-15T08:30:00"); got != "2026-09-15" {
		t.Errorf("zoneless date = %q", got)
	}
	if got := formatTime("not a time"); got != "" {
		t.Errorf("bad input = %q, want empty", got)
	}
}

func TestBuildPassengers(t *testing.T) {
	passengers, children, infants := buildPassengers(FlightQuery{
		Adults: 2, Children: 3, ChildAges: []int{1, 7}, // third child defaults to 7
	})
	if len(passengers) != 5 {
		t.Fatalf("passenger count = %d", len(passengers))
	}
	if children != 2 || infants != 1 {
		t.Errorf("children = %d infants = %d, want 2 and 1", children, infants)
	}
	if passengers[0]["type"] != "adult" {
		t.Errorf("first passenger = %v", passengers[0])
	}
	if passengers[2]["age"] != 1 {
		t.Errorf("first child age = %v", passengers[2]["age"])
	}
}

func TestFareBreakdownWeights(t *testing.T) {
	offer := duffelOffer{TotalAmount: "1000"}
	breakdown := fareBreakdown(offer, 1, 0, 1)
	if len(breakdown) != 2 {
		t.Fatalf("breakdown entries = %d", len(breakdown))
	}
	// Weights 1.0 and 0.10 over a 1000 total.
	if breakdown[0].Type != "adult" || breakdown[0].PricePerPerson != 909.09 {
		t.Errorf("adult = %+v", breakdown[0])
	}
	if breakdown[1].Type != "infant" || breakdown[1].PricePerPerson != 90.91 {
		t.Errorf("infant = %+v", breakdown[1])
	}
}

func TestDescribeBaggage(t *testing.T) {
	if got := describeCheckedBaggage(&duffelBaggage{Type: "checked", Quantity: 2}); got != "2 × Checked bag (23kg each)" {
		t.Errorf("checked = %q", got)
	}
	if got := describeCheckedBaggage(nil); got != "Not included – available to purchase" {
		t.Errorf("no checked = %q", got)
	}
	if got := describeCabinBaggage(nil); got != "Personal item only (40×30×15cm)" {
		t.Errorf("no cabin = %q", got)
	}
}

func TestTransformOffersSkipsEmptySegments(t *testing.T) {
	offers := []duffelOffer{
		{ID: "off_no_segments", TotalAmount: "100.00", Slices: []duffelSlice{{}}},
		{ID: "off_no_slices", TotalAmount: "90.00"},
	}
	flights := transformOffers(offers, 1, 0, 0, 1, false)
	if len(flights) != 0 {
		t.Fatalf("offers without segments must be dropped, got %d", len(flights))
	}
}

func duffelFixture() map[string]any {
	seg := func(origin, dest, dep, arr, carrier string) map[string]any {
		return map[string]any{
			"origin":                          map[string]any{"iata_code": origin, "name": origin + " Airport"},
			"destination":                     map[string]any{"iata_code": dest, "name": dest + " Airport"},
			"departing_at":                    dep,
			"arriving_at":                     arr,
			"duration":                        "PT2H00M",
			"marketing_carrier":               map[string]any{"iata_code": carrier, "name": carrier + " Air"},
			"marketing_carrier_flight_number": "123",
			"passengers": []map[string]any{{
				"cabin_class_marketing_name": "Economy Basic",
				"baggages":                   []map[string]any{{"type": "checked", "quantity": 1}},
			}},
		}
	}
	offer := func(id, amount string, segments ...map[string]any) map[string]any {
		return map[string]any{
			"id":             id,
			"total_amount":   amount,
			"total_currency": "GBP",
			"owner":          map[string]any{"iata_code": "BA", "name": "British Airways"},
			"slices": []map[string]any{{
				"origin":      map[string]any{"iata_code": "LHR"},
				"destination": map[string]any{"iata_code": "CDG"},
				"duration":    "PT2H00M",
				"segments":    segments,
			}},
			"passengers": []map[string]any{{"type": "adult"}},
		}
	}
	direct := offer("off_direct", "250.00",
		seg("LHR", "CDG", "2026-09-15T08:30:00Z", "2026-09-15T10:30:00Z", "BA"))
	oneStop := offer("off_cheap", "180.00",
		seg("LHR", "AMS", "2026-09-15T06:00:00Z", "2026-09-15T07:30:00Z", "KL"),
		seg("AMS", "CDG", "2026-09-15T09:00:00Z", "2026-09-15T10:10:00Z", "KL"))
	return map[string]any{"data": map[string]any{"offers": []map[string]any{direct, oneStop}}}
}

func duffelTestClient(srv *httptest.Server) *DuffelClient {
	return NewDuffelClient(
		config.DuffelConfig{AccessToken: "test-token", BaseURL: srv.URL},
		&httputil.Clients{API: srv.Client()},
	)
}

func TestSearchFlightsTransform(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/air/offer_requests" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("auth = %q", auth)
		}
		var body struct {
			Data struct {
				Slices     []map[string]string `json:"slices"`
				CabinClass string              `json:"cabin_class"`
			} `json:"data"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Data.Slices) != 1 {
			t.Errorf("one-way search sent %d slices", len(body.Data.Slices))
		}
		if body.Data.CabinClass != "economy" {
			t.Errorf("default cabin = %q", body.Data.CabinClass)
		}
		json.NewEncoder(w).Encode(duffelFixture())
	}))
	defer srv.Close()

	flights, err := duffelTestClient(srv).SearchFlights(context.Background(), FlightQuery{
		Origin: "LHR", Destination: "CDG", DepartureDate: "2026-09-15",
		Adults: 1, Currency: models.GBP,
	})
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("got %d flights", len(flights))
	}

	// Price ascending: the one-stop at 180 first.
	if flights[0].ID != "off_cheap" || flights[0].Price != 180 {
		t.Errorf("first = %s @ %v", flights[0].ID, flights[0].Price)
	}
	if flights[0].Outbound.Stops != 1 {
		t.Errorf("stops = %d", flights[0].Outbound.Stops)
	}

	direct := flights[1]
	if direct.Outbound.DepartureTime != "08:30" || direct.Outbound.ArrivalTime != "10:30" {
		t.Errorf("times = %s - %s", direct.Outbound.DepartureTime, direct.Outbound.ArrivalTime)
	}
	if direct.Outbound.Duration != 120 {
		t.Errorf("duration = %d", direct.Outbound.Duration)
	}
	if direct.CheckedBaggage != "1 × Checked bag (23kg each)" {
		t.Errorf("checked baggage = %q", direct.CheckedBaggage)
	}
	if len(direct.Outbound.Segments) != 1 || direct.Outbound.Segments[0].FlightNumber != "BA123" {
		t.Errorf("segments = %+v", direct.Outbound.Segments)
	}
	if direct.Outbound.Segments[0].CabinClass != "Economy Basic" {
		t.Errorf("cabin = %q", direct.Outbound.Segments[0].CabinClass)
	}
}

func TestSearchFlightsDirectOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(duffelFixture())
	}))
	defer srv.Close()

	flights, err := duffelTestClient(srv).SearchFlights(context.Background(), FlightQuery{
		Origin: "LHR", Destination: "CDG", DepartureDate: "2026-09-15",
		Adults: 1, Currency: models.GBP, DirectFlightsOnly: true,
	})
	if err != nil {
		t.Fatalf("SearchFlights: %v", err)
	}
	if len(flights) != 1 || flights[0].ID != "off_direct" {
		t.Fatalf("direct filter kept %v", ids(flights))
	}
}

func TestSearchFlightsUnconfigured(t *testing.T) {
	d := NewDuffelClient(config.DuffelConfig{}, &httputil.Clients{API: http.DefaultClient})
	flights, err := d.SearchFlights(context.Background(), FlightQuery{Origin: "LHR", Destination: "CDG"})
	if err != nil || flights != nil {
		t.Errorf("unconfigured client should be a silent no-op, got %v, %v", flights, err)
	}
}

func TestFlightQueryCacheKey(t *testing.T) {
	q := FlightQuery{Origin: "LHR", Destination: "CDG", DepartureDate: "2026-09-15",
		Adults: 2, Currency: models.GBP, CabinClass: "economy"}
	key := q.CacheKey()
	if !strings.Contains(key, "oneway") {
		t.Errorf("one-way key = %q", key)
	}
	q.ReturnDate = "2026-09-22"
	if q.CacheKey() == key {
		t.Error("return date must change the key")
	}
	q.DirectFlightsOnly = true
	if !strings.Contains(q.CacheKey(), "direct") {
		t.Errorf("direct key = %q", q.CacheKey())
	}
}

func ids(flights []models.FlightOffer) []string {
	out := make([]string, len(flights))
	for i, f := range flights {
		out[i] = f.ID
	}
	return out
}
