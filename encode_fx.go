package fif

import (
	"encoding/json"
	"fmt"
	"io"
)

// The FX rate store is persisted as a single human-readable JSON object:
// currency to observation date to rate, rates kept as strings so they
// round-trip exactly.

// DecodeFxRateStore reads a persisted rate cache and attaches a resolver for
// the misses. A missing or empty stream yields an empty store.
func DecodeFxRateStore(r io.Reader, resolver RateResolver) (*FxRateStore, error) {
	store := NewFxRateStore(resolver)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fx rates: %w", err)
	}
	if len(data) == 0 {
		return store, nil
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("format error in fx rates: %w", err)
	}

	for currency, byDate := range raw {
		for str, value := range byDate {
			on, err := ParseDate(str)
			if err != nil {
				return nil, fmt.Errorf("format error in %s fx rates: %w", currency, err)
			}
			rate, err := ParseRate(value)
			if err != nil {
				return nil, fmt.Errorf("format error in %s fx rate for %s: %w", currency, on, err)
			}
			if err := store.Set(currency, on, rate); err != nil {
				return nil, err
			}
		}
	}
	return store, nil
}

// EncodeFxRateStore persists the rate cache.
func EncodeFxRateStore(w io.Writer, store *FxRateStore) error {
	raw := make(map[string]map[string]string)
	for _, entry := range store.Rates() {
		byDate, ok := raw[entry.Currency]
		if !ok {
			byDate = make(map[string]string)
			raw[entry.Currency] = byDate
		}
		byDate[entry.Date.String()] = entry.Rate.String()
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
