package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"globehunters/models"
)

func TestLiveRatesRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/GBP" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"base":"GBP","rates":{"GBP":1,"EUR":1.21,"USD":1.30,"AUD":2.01}}`))
	}))
	defer srv.Close()

	l := NewLiveRates(srv.Client())
	l.baseURL = srv.URL

	if err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	rate, err := l.Rate(models.GBP, models.EUR)
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rate != 1.21 {
		t.Fatalf("live GBP->EUR = %v, want 1.21", rate)
	}
}

func TestLiveRatesFillsMissingFromStatic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"GBP","rates":{"GBP":1,"EUR":1.21}}`))
	}))
	defer srv.Close()

	l := NewLiveRates(srv.Client())
	l.baseURL = srv.URL

	if err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	rate, err := l.Rate(models.GBP, models.AUD)
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rate != 1.95 {
		t.Fatalf("missing AUD should come from the static table, got %v", rate)
	}
}

func TestLiveRatesFallsBackWhenFeedDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	l := NewLiveRates(srv.Client())
	l.baseURL = srv.URL

	rate, err := l.Rate(models.GBP, models.USD)
	if err != nil {
		t.Fatalf("Rate should fall back to static, got error: %v", err)
	}
	if rate != 1.27 {
		t.Fatalf("static fallback GBP->USD = %v, want 1.27", rate)
	}
}
