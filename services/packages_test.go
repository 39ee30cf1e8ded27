package services

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
	"globehunters/providers"
)

// fakeUpstreams serves both providers: Duffel on /air/*, RateHawk on the
// rest. Empty destination names trigger the no-region and no-flight paths.
func fakeUpstreams(t *testing.T, offers []map[string]any, hotels []map[string]any, regions []map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/air/offer_requests":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"offers": offers}})
		case "/search/multicomplete/":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"regions": regions}})
		case "/search/hp/":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"hotels": hotels}})
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
}

func testService(srv *httptest.Server) *PackageService {
	clients := &httputil.Clients{API: srv.Client()}
	flights := providers.NewDuffelClient(config.DuffelConfig{AccessToken: "t", BaseURL: srv.URL}, clients)
	hotels := providers.NewRateHawkClient(config.RateHawkConfig{APIKey: "k", BaseURL: srv.URL}, clients)
	return NewPackageService(flights, hotels)
}

func testOffer(id string, amount string) map[string]any {
	return map[string]any{
		"id": id, "total_amount": amount, "total_currency": "GBP",
		"owner": map[string]any{"iata_code": "BA", "name": "British Airways"},
		"slices": []map[string]any{{
			"origin":      map[string]any{"iata_code": "LHR"},
			"destination": map[string]any{"iata_code": "CDG"},
			"duration":    "PT2H00M",
			"segments": []map[string]any{{
				"origin":            map[string]any{"iata_code": "LHR"},
				"destination":       map[string]any{"iata_code": "CDG"},
				"departing_at":      "2026-09-15T08:30:00Z",
				"arriving_at":       "2026-09-15T10:30:00Z",
				"duration":          "PT2H00M",
				"marketing_carrier": map[string]any{"iata_code": "BA", "name": "British Airways"},
			}},
		}},
	}
}

func testHotel(id int, price string, meal string, freeCancel bool) map[string]any {
	rate := map[string]any{
		"room_name": "Double Room",
		"meal":      meal,
	}
	penalties := map[string]any{}
	if freeCancel {
		penalties["free_cancellation_before"] = "2026-09-10T00:00:00"
	}
	rate["payment_options"] = map[string]any{
		"payment_types": []map[string]any{{
			"amount":                 price,
			"cancellation_penalties": penalties,
		}},
	}
	return map[string]any{
		"id": id, "name": "Hotel", "star_rating": 4,
		"rates": []map[string]any{rate},
	}
}

var parisRegion = []map[string]any{{"id": 2114, "name": "Paris", "country": "France"}}

func TestSearchDestinationNotFound(t *testing.T) {
	srv := fakeUpstreams(t, nil, nil, []map[string]any{})
	defer srv.Close()

	result, err := testService(srv).Search(context.Background(), PackageQuery{Destination: "nowhere"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Message != "Destination not found" || result.Region != nil {
		t.Errorf("result = %+v", result)
	}
}

func TestSearchNoFlights(t *testing.T) {
	srv := fakeUpstreams(t, []map[string]any{}, []map[string]any{testHotel(101, "500", "nomeal", false)}, parisRegion)
	defer srv.Close()

	result, err := testService(srv).Search(context.Background(), PackageQuery{
		Origin: "LHR", Destination: "Paris",
		DepartureDate: "2026-09-15", ReturnDate: "2026-09-18",
		Adults: 2, Currency: models.GBP,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Message != "No flights available" {
		t.Errorf("message = %q", result.Message)
	}
	if result.Region == nil || result.Region.Name != "Paris" {
		t.Errorf("region should survive the empty result: %+v", result.Region)
	}
}

func TestSearchNoHotels(t *testing.T) {
	srv := fakeUpstreams(t, []map[string]any{testOffer("FL-AAAA1111", "200.00")}, []map[string]any{}, parisRegion)
	defer srv.Close()

	result, err := testService(srv).Search(context.Background(), PackageQuery{
		Origin: "LHR", Destination: "Paris",
		DepartureDate: "2026-09-15", ReturnDate: "2026-09-18",
		Adults: 2, Currency: models.GBP,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Message != "No hotels available" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestSearchAssemblesPackages(t *testing.T) {
	offers := []map[string]any{
		testOffer("FL-BBBB2222", "270.00"),
		testOffer("FL-AAAA1111", "200.00"),
	}
	hotels := []map[string]any{
		testHotel(101, "700.00", "breakfast", true),
		testHotel(102, "150.00", "nomeal", false),
	}
	srv := fakeUpstreams(t, offers, hotels, parisRegion)
	defer srv.Close()

	result, err := testService(srv).Search(context.Background(), PackageQuery{
		Origin: "LHR", Destination: "Paris",
		DepartureDate: "2026-09-15", ReturnDate: "2026-09-18",
		Adults: 2, Currency: models.GBP,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Message != "" {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if len(result.Packages) != 2 {
		t.Fatalf("got %d packages", len(result.Packages))
	}

	// Cheapest-first: flight 200 + hotel 150.
	first := result.Packages[0]
	if first.TotalPrice != 350 {
		t.Errorf("total = %v", first.TotalPrice)
	}
	if first.PricePerPerson != 175 {
		t.Errorf("per person = %v", first.PricePerPerson)
	}
	if first.Flight.ID != "FL-AAAA1111" {
		t.Errorf("packages should use the cheapest flight, got %s", first.Flight.ID)
	}
	if first.ID != "pkg-102-AAAA1111" {
		t.Errorf("package id = %q", first.ID)
	}
	if first.Nights != 3 || first.Days != 4 {
		t.Errorf("nights/days = %d/%d", first.Nights, first.Days)
	}
	if first.Destination != "Paris" || first.DestinationCountry != "France" {
		t.Errorf("destination = %s, %s", first.Destination, first.DestinationCountry)
	}

	wantIncludes := "Return flights, 3 nights accommodation"
	if got := strings.Join(first.Includes, ", "); got != wantIncludes {
		t.Errorf("room-only includes = %q", got)
	}

	second := result.Packages[1]
	if second.TotalPrice != 900 {
		t.Errorf("second total = %v", second.TotalPrice)
	}
	got := strings.Join(second.Includes, ", ")
	if !strings.Contains(got, "Breakfast Included") || !strings.Contains(got, "Free cancellation") {
		t.Errorf("includes = %q", got)
	}

	if len(first.AlternativeFlights) != 1 {
		t.Fatalf("alternatives = %d", len(first.AlternativeFlights))
	}
	alt := first.AlternativeFlights[0]
	if alt.ID != "FL-BBBB2222" || alt.PriceDifference != 70 {
		t.Errorf("alternative = %+v", alt)
	}
}

func TestPackageID(t *testing.T) {
	if got := packageID("101", "off_abcdef123"); got != "pkg-101-bcdef123" {
		// Last 8 characters of the flight id.
		t.Errorf("packageID = %q", got)
	}
	if got := packageID("101", "short"); got != "pkg-101-short" {
		t.Errorf("short flight id = %q", got)
	}
	got := packageID("101", "")
	if !strings.HasPrefix(got, "pkg-101-") || len(got) != len("pkg-101-")+8 {
		t.Errorf("empty flight id should get a random suffix, got %q", got)
	}
}
