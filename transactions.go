package fif

import (
	"errors"
	"fmt"
)

// Trade is a single acquisition (positive quantity) or disposal (negative
// quantity) of a share during the tax year. Trades are immutable once read,
// except for the quick sale portion annotation assigned by the adjustment
// engine.
type Trade struct {
	Code     string
	Date     Date
	Quantity Quantity // signed: positive = acquisition, negative = disposal
	Price    Money    // native, per share
	Costs    Money    // native transaction costs (brokerage, fees)

	quickSalePortion Quantity
	quickSaleTagged  bool
}

// Charge is the trade's total native-currency amount, unrounded:
// quantity x price + costs. It is negative for most disposals.
func (t Trade) Charge() Money {
	return t.Price.Mul(t.Quantity).Add(t.Costs)
}

func (t Trade) IsAcquisition() bool { return t.Quantity.IsPositive() }
func (t Trade) IsDisposal() bool    { return t.Quantity.IsNegative() }

// QuickSalePortion returns the number of this trade's shares involved in a
// quick sale, and whether the adjustment engine has annotated the trade.
// For a disposal it is the portion drawn from shares acquired within the
// year; for an acquisition, the count of its shares later disposed of.
func (t Trade) QuickSalePortion() (Quantity, bool) {
	return t.quickSalePortion, t.quickSaleTagged
}

func (t *Trade) setQuickSalePortion(q Quantity) {
	t.quickSalePortion = q
	t.quickSaleTagged = true
}

// Validate checks the trade's own fields; the share's currency is imposed on
// the weak amounts during trade processing.
func (t Trade) Validate() error {
	if t.Code == "" {
		return errors.New("trade share code is missing")
	}
	if t.Date.IsZero() {
		return errors.New("trade date is missing")
	}
	if t.Quantity.IsZero() {
		return fmt.Errorf("trade for %s on %s has a zero share quantity", t.Code, t.Date)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("trade for %s on %s has a negative price %s", t.Code, t.Date, t.Price)
	}
	if t.Costs.IsNegative() {
		return fmt.Errorf("trade for %s on %s has negative costs %s", t.Code, t.Date, t.Costs)
	}
	return nil
}

func (t Trade) String() string {
	return fmt.Sprintf("trade for %s shares of %s on %s at %s with costs of %s",
		t.Quantity, t.Code, t.Date, t.Price, t.Costs)
}

// Dividend is a dividend payment received during the tax year.
type Dividend struct {
	Code     string
	Date     Date  // payment date
	PerShare Money // native, per share declared
	Paid     Money // native, gross amount paid
}

// EligibleShares derives the number of shares the dividend was declared on,
// rounded to whole shares. It fails explicitly when the per-share amount is
// zero rather than raising an unguarded division.
func (d Dividend) EligibleShares() (Quantity, error) {
	if d.PerShare.IsZero() {
		return Quantity{}, fmt.Errorf("dividend for %s on %s: per-share amount is zero, eligible shares are undefined", d.Code, d.Date)
	}
	return Q(d.Paid.value.Div(d.PerShare.value)).Whole(), nil
}

func (d Dividend) Validate() error {
	if d.Code == "" {
		return errors.New("dividend share code is missing")
	}
	if d.Date.IsZero() {
		return errors.New("dividend payment date is missing")
	}
	if d.PerShare.IsNegative() {
		return fmt.Errorf("dividend for %s on %s has a negative per-share amount %s", d.Code, d.Date, d.PerShare)
	}
	if d.Paid.IsNegative() {
		return fmt.Errorf("dividend for %s on %s has a negative gross amount %s", d.Code, d.Date, d.Paid)
	}
	return nil
}

func (d Dividend) String() string {
	return fmt.Sprintf("dividend of %s on %s for %s at %s per share",
		d.Paid, d.Date, d.Code, d.PerShare)
}
