package fif

import (
	"fmt"
	"slices"
)

// Ledger owns the set of tracked shares and the year's trades, dividends
// and closing prices, supplied as a closed, consistent batch.
type Ledger struct {
	shares    []*Share
	index     map[string]*Share // index shares by code
	trades    []*Trade
	dividends []Dividend
	closing   map[string]Money // native closing price by share code
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		index:   make(map[string]*Share),
		closing: make(map[string]Money),
	}
}

// Share returns the share tracked under this code, or nil if unknown.
func (l *Ledger) Share(code string) *Share { return l.index[code] }

// Shares returns the tracked shares in the order they were added.
func (l *Ledger) Shares() []*Share { return l.shares }

// AddShare starts tracking a share. Codes are unique.
func (l *Ledger) AddShare(s *Share) error {
	if _, ok := l.index[s.code]; ok {
		return fmt.Errorf("share %q is already tracked", s.code)
	}
	l.shares = append(l.shares, s)
	l.index[s.code] = s
	return nil
}

// AddTrade appends a trade to the ledger.
func (l *Ledger) AddTrade(t Trade) error {
	if err := t.Validate(); err != nil {
		return err
	}
	l.trades = append(l.trades, &t)
	return nil
}

// AddDividend appends a dividend to the ledger.
func (l *Ledger) AddDividend(d Dividend) error {
	if err := d.Validate(); err != nil {
		return err
	}
	l.dividends = append(l.dividends, d)
	return nil
}

// SetClosingPrice records the native year-end price for a share code.
// Zero-holding shares need no entry.
func (l *Ledger) SetClosingPrice(code string, price Money) error {
	if code == "" {
		return fmt.Errorf("closing price share code is missing")
	}
	if price.IsNegative() {
		return fmt.Errorf("closing price for %s is negative: %s", code, price)
	}
	l.closing[code] = price
	return nil
}

// ClosingPrice returns the recorded year-end price for a share code.
func (l *Ledger) ClosingPrice(code string) (Money, bool) {
	price, ok := l.closing[code]
	return price, ok
}

// Dividends returns the year's dividends.
func (l *Ledger) Dividends() []Dividend { return l.dividends }

// Trades returns the year's trades.
func (l *Ledger) Trades() []*Trade { return l.trades }

// sortTrades orders the trades ascending by date. The sort is stable:
// same-day trades keep their original input order.
func (l *Ledger) sortTrades() {
	slices.SortStableFunc(l.trades, func(a, b *Trade) int {
		return a.Date.Compare(b.Date)
	})
}

// tradesOf returns the trades of one share, in the current ledger order.
func (l *Ledger) tradesOf(code string) []*Trade {
	var ts []*Trade
	for _, t := range l.trades {
		if t.Code == code {
			ts = append(ts, t)
		}
	}
	return ts
}

// dividendsOf returns the dividends of one share.
func (l *Ledger) dividendsOf(code string) []Dividend {
	var ds []Dividend
	for _, d := range l.dividends {
		if d.Code == code {
			ds = append(ds, d)
		}
	}
	return ds
}
