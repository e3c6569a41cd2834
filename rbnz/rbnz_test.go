package rbnz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sjoerdsma/fif"
)

func TestResolveRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("currency"); got != "EUR" {
			t.Errorf("currency query = %q, want EUR", got)
		}
		if got := r.URL.Query().Get("date"); got != "2023-11-15" {
			t.Errorf("date query = %q, want 2023-11-15", got)
		}
		w.Write([]byte(`{"observations":[{"date":"2023-11-14","value":"0.5500"},{"date":"2023-11-15","value":"0.5512"}]}`))
	}))
	defer server.Close()

	resolver := NewWithBase(server.Client(), server.URL)
	rate, err := resolver.ResolveRate("EUR", fif.MustParseDate("2023-11-15"))
	if err != nil {
		t.Fatalf("ResolveRate: %v", err)
	}
	// the last observation is the one for the requested date
	if rate != "0.5512" {
		t.Errorf("rate = %q, want 0.5512", rate)
	}
}

func TestResolveRateNumericValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"observations":[{"value":0.5512}]}`))
	}))
	defer server.Close()

	resolver := NewWithBase(server.Client(), server.URL)
	rate, err := resolver.ResolveRate("EUR", fif.MustParseDate("2023-11-15"))
	if err != nil {
		t.Fatalf("ResolveRate: %v", err)
	}
	if rate != "0.5512" {
		t.Errorf("rate = %q, want 0.5512", rate)
	}
}

func TestResolveRateNoObservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"observations":[]}`))
	}))
	defer server.Close()

	resolver := NewWithBase(server.Client(), server.URL)
	if _, err := resolver.ResolveRate("EUR", fif.MustParseDate("2023-11-15")); err == nil {
		t.Error("expected an error when the portal has no observation")
	}
}

func TestResolveRateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	resolver := NewWithBase(server.Client(), server.URL)
	if _, err := resolver.ResolveRate("EUR", fif.MustParseDate("2023-11-15")); err == nil {
		t.Error("expected an error on a portal failure")
	}
}
