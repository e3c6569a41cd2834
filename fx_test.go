package fif

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// fakeRateResolver answers from a fixed map and counts the calls.
type fakeRateResolver struct {
	rates map[string]string // keyed by currency
	calls int
	err   error
}

func (f *fakeRateResolver) ResolveRate(currency string, on Date) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	rate, ok := f.rates[currency]
	if !ok {
		return "", errors.New("no rate")
	}
	return rate, nil
}

func TestFxRateStoreCaches(t *testing.T) {
	resolver := &fakeRateResolver{rates: map[string]string{"EUR": "0.5613"}}
	store := NewFxRateStore(resolver)

	first, err := store.Rate("EUR", MustParseDate("2023-11-28"))
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if !first.Equal(decimal.RequireFromString("0.5613")) {
		t.Errorf("Rate = %s, want 0.5613", first)
	}

	// Another date with the same observation point must hit the cache.
	second, err := store.Rate("EUR", MustParseDate("2023-11-02"))
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if !second.Equal(first) {
		t.Errorf("cached Rate = %s, want %s", second, first)
	}
	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, want 1", resolver.calls)
	}

	// A different month is a different observation point.
	if _, err := store.Rate("EUR", MustParseDate("2023-12-01")); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if resolver.calls != 2 {
		t.Errorf("resolver called %d times, want 2", resolver.calls)
	}
}

func TestFxRateStoreNZD(t *testing.T) {
	// NZD needs no resolution, ever.
	store := NewFxRateStore(nil)
	rate, err := store.Rate(NZD, MustParseDate("2023-11-28"))
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if !rate.Equal(decimal.NewFromInt(1)) {
		t.Errorf("NZD rate = %s, want 1", rate)
	}
}

func TestFxRateStoreNoResolver(t *testing.T) {
	store := NewFxRateStore(nil)
	if _, err := store.Rate("EUR", MustParseDate("2023-11-28")); err == nil {
		t.Error("expected an error on a cache miss with no resolver")
	}
}

func TestFxRateStoreCancellation(t *testing.T) {
	resolver := &fakeRateResolver{err: ErrCancelled}
	store := NewFxRateStore(resolver)
	_, err := store.Rate("EUR", MustParseDate("2023-11-28"))
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}

func TestFxRateStoreSet(t *testing.T) {
	store := NewFxRateStore(nil)

	// Set normalizes the date to its observation point.
	if err := store.Set("USD", MustParseDate("2023-11-28"), decimal.RequireFromString("0.61")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rate, err := store.Rate("USD", MustParseDate("2023-11-02"))
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if !rate.Equal(decimal.RequireFromString("0.61")) {
		t.Errorf("Rate = %s, want 0.61", rate)
	}

	// Replacing an entry is allowed.
	if err := store.Set("USD", MustParseDate("2023-11-15"), decimal.RequireFromString("0.62")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rate, _ = store.Rate("USD", MustParseDate("2023-11-28"))
	if !rate.Equal(decimal.RequireFromString("0.62")) {
		t.Errorf("Rate after replace = %s, want 0.62", rate)
	}

	if err := store.Set("XXX-NOT-A-CURRENCY", MustParseDate("2023-11-15"), decimal.NewFromInt(1)); err == nil {
		t.Error("expected an error for an unknown currency")
	}
	if err := store.Set("USD", MustParseDate("2023-11-15"), decimal.NewFromInt(-1)); err == nil {
		t.Error("expected an error for a negative rate")
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		input string
		err   bool
	}{
		{"0.5613", false},
		{"1", false},
		{"0", true},
		{"-0.5", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		_, err := ParseRate(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseRate(%q) error = %v, want error %v", tt.input, err, tt.err)
		}
	}
}
