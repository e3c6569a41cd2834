package fif

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrCancelled is returned when the user aborts a resolution request. It is
// propagated back through the pipeline so the top-level driver can terminate
// the run gracefully; nothing deep in the core exits the process.
var ErrCancelled = errors.New("cancelled by user")

// RateResolver supplies an exchange rate the store does not have yet. The
// date passed in is already normalized to a statutory observation point.
// Implementations may prompt the user or query a data feed; they return the
// rate as a decimal string (native currency units per 1 NZD), or
// ErrCancelled when the user aborts the run.
type RateResolver interface {
	ResolveRate(currency string, on Date) (string, error)
}

// ParseRate validates a resolved exchange rate. It is a pure function: the
// interactive retry loop lives entirely in the CLI layer.
func ParseRate(str string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid exchange rate %q: %w", str, err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("invalid exchange rate %q: must be positive", str)
	}
	return rate, nil
}

// FxRateStore maps (currency, observation date) to a conversion rate,
// expressed as native currency units per 1 NZD. It is constructed once and
// threaded through every pipeline stage as an explicit dependency.
//
// A rate once resolved for a date is reused for the remainder of the run;
// there is no invalidation policy. The cache is write-once-per-key.
type FxRateStore struct {
	rates    map[string]map[Date]decimal.Decimal
	resolver RateResolver
}

// NewFxRateStore creates an empty store. The resolver may be nil, in which
// case a cache miss is an error.
func NewFxRateStore(resolver RateResolver) *FxRateStore {
	return &FxRateStore{
		rates:    make(map[string]map[Date]decimal.Decimal),
		resolver: resolver,
	}
}

// Rate returns the conversion rate for a currency on a date. The date is
// normalized to its statutory observation point first. On a cache miss the
// resolver is consulted, its answer validated and cached.
func (s *FxRateStore) Rate(currency string, on Date) (decimal.Decimal, error) {
	if currency == NZD {
		return decimal.NewFromInt(1), nil
	}
	obs := on.Observation()
	if rate, ok := s.rates[currency][obs]; ok {
		return rate, nil
	}
	if s.resolver == nil {
		return decimal.Decimal{}, fmt.Errorf("no %s exchange rate for %s and no resolver to ask", currency, obs)
	}
	str, err := s.resolver.ResolveRate(currency, obs)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving %s rate for %s: %w", currency, obs, err)
	}
	rate, err := ParseRate(str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving %s rate for %s: %w", currency, obs, err)
	}
	s.put(currency, obs, rate)
	return rate, nil
}

// Set validates and stores a rate, normalizing the date to its observation
// point. An existing entry is replaced.
func (s *FxRateStore) Set(currency string, on Date, rate decimal.Decimal) error {
	if err := ValidateCurrency(currency); err != nil {
		return err
	}
	if !rate.IsPositive() {
		return fmt.Errorf("invalid %s exchange rate %s: must be positive", currency, rate)
	}
	s.put(currency, on.Observation(), rate)
	return nil
}

func (s *FxRateStore) put(currency string, obs Date, rate decimal.Decimal) {
	byDate, ok := s.rates[currency]
	if !ok {
		byDate = make(map[Date]decimal.Decimal)
		s.rates[currency] = byDate
	}
	byDate[obs] = rate
}

// FxRate is one cached entry, for listings.
type FxRate struct {
	Currency string
	Date     Date
	Rate     decimal.Decimal
}

// Rates returns all cached entries sorted by currency then date.
func (s *FxRateStore) Rates() []FxRate {
	var all []FxRate
	for currency, byDate := range s.rates {
		for on, rate := range byDate {
			all = append(all, FxRate{Currency: currency, Date: on, Rate: rate})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Currency != all[j].Currency {
			return all[i].Currency < all[j].Currency
		}
		return all[i].Date.Before(all[j].Date)
	})
	return all
}
