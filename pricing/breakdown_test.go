package pricing

import "testing"

func ptr(v float64) *float64 { return &v }

func TestCalculateTotalPrice(t *testing.T) {
	got := CalculateTotalPrice(Input{
		FlightPrice:   ptr(300),
		HotelPrice:    ptr(500),
		ActivityTotal: 40,
		Nights:        3,
		Adults:        2,
	})

	if got.Total == nil || *got.Total != 840 {
		t.Fatalf("Total = %v, want 840", got.Total)
	}
	if got.PerPerson == nil || *got.PerPerson != 420 {
		t.Fatalf("PerPerson = %v, want 420", got.PerPerson)
	}
}

func TestCalculateTotalPriceMissingFlight(t *testing.T) {
	got := CalculateTotalPrice(Input{
		HotelPrice:    ptr(500),
		ActivityTotal: 40,
		Adults:        2,
	})

	if got.Total != nil {
		t.Fatalf("Total should be nil when flight price is missing, got %v", *got.Total)
	}
	if got.PerPerson != nil {
		t.Fatal("PerPerson should be nil when flight price is missing")
	}
	if got.HotelPrice == nil || *got.HotelPrice != 500 {
		t.Fatal("known component prices must pass through unchanged")
	}
}

func TestCalculateTotalPriceMissingHotel(t *testing.T) {
	got := CalculateTotalPrice(Input{FlightPrice: ptr(300), Adults: 2})
	if got.Total != nil || got.PerPerson != nil {
		t.Fatal("missing hotel price must propagate as nil totals")
	}
}

func TestCalculateTotalPriceZeroAdults(t *testing.T) {
	got := CalculateTotalPrice(Input{FlightPrice: ptr(300), HotelPrice: ptr(500)})

	if got.Total == nil || *got.Total != 800 {
		t.Fatalf("Total = %v, want 800", got.Total)
	}
	if got.PerPerson != nil {
		t.Fatal("PerPerson undefined for zero adults, should be nil")
	}
}

func TestCalculateTotalPricePerPersonRounds(t *testing.T) {
	got := CalculateTotalPrice(Input{
		FlightPrice: ptr(100),
		HotelPrice:  ptr(101),
		Adults:      2,
	})

	// 201/2 = 100.5 rounds to 101.
	if got.PerPerson == nil || *got.PerPerson != 101 {
		t.Fatalf("PerPerson = %v, want 101", got.PerPerson)
	}
}
