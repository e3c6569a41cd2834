package fif

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateCurrency checks a currency code against the ISO-4217 registry.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Share is a tracked foreign security and its running results for the year.
//
// The result fields are each written exactly once, by a single pipeline
// stage: openingValue by ProcessOpening, holding and costOfTrades by trade
// processing, grossIncome by dividend processing, closingValue by closing
// processing, and quickSale by trade processing (pending) then the
// adjustment engine (computed). No stage resets another stage's field.
type Share struct {
	code     string // unique key, e.g. broker abbreviation or ticker
	name     string
	currency string // native currency of prices and dividends

	openingHolding Quantity
	openingPrice   Money // native, per share
	holding        Quantity
	closingPrice   Money // native, per share

	openingValue Money // NZD
	closingValue Money // NZD
	grossIncome  Money // NZD, accumulated dividends
	costOfTrades Money // NZD, accumulated net cost of the year's trades
	quickSale    QuickSale
}

// NewShare creates a share from opening-position data. A share first seen in
// a trade has a zero opening holding and price.
func NewShare(code, name, currency string, openingHolding Quantity, openingPrice Money) (*Share, error) {
	if code == "" {
		return nil, fmt.Errorf("share code is missing")
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, fmt.Errorf("share %s: %w", code, err)
	}
	if openingHolding.IsNegative() {
		return nil, fmt.Errorf("share %s: opening holding %s is negative", code, openingHolding)
	}
	if openingPrice.IsNegative() {
		return nil, fmt.Errorf("share %s: opening price %s is negative", code, openingPrice)
	}
	return &Share{
		code:           code,
		name:           name,
		currency:       currency,
		openingHolding: openingHolding,
		openingPrice:   M(openingPrice.value, currency),
		// the running holding starts at the opening holding and is then
		// mutated by each of the year's trades in chronological order.
		holding: openingHolding,
	}, nil
}

func (s *Share) Code() string     { return s.code }
func (s *Share) Name() string     { return s.name }
func (s *Share) Currency() string { return s.currency }

func (s *Share) OpeningHolding() Quantity { return s.openingHolding }
func (s *Share) OpeningPrice() Money      { return s.openingPrice }

// Holding returns the running holding; after trade processing it is the
// closing holding for the year.
func (s *Share) Holding() Quantity { return s.holding }

func (s *Share) ClosingPrice() Money { return s.closingPrice }

func (s *Share) OpeningValue() Money  { return s.openingValue }
func (s *Share) ClosingValue() Money  { return s.closingValue }
func (s *Share) GrossIncome() Money   { return s.grossIncome }
func (s *Share) CostOfTrades() Money  { return s.costOfTrades }
func (s *Share) QuickSale() QuickSale { return s.quickSale }

func (s *Share) String() string {
	return fmt.Sprintf("%s shareholding is %s shares", s.code, s.holding)
}
