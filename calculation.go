package fif

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
)

// DefaultFDRRate is the statutory fair dividend rate.
var DefaultFDRRate = decimal.RequireFromString("0.05")

// ShareResolver supplies the details of a security first encountered in a
// trade, with no opening-position record. Implementations may prompt the
// user or query a reference source; they return ErrCancelled when the user
// aborts the run.
type ShareResolver interface {
	ResolveShare(code string) (name, currency string, err error)
}

// Calculation runs the position and income computation pipeline for one tax
// year. Stages must run in their fixed order (opening, trades, dividends,
// closing, quick sale adjustment, reconciliation) because later stages read
// totals produced by earlier ones; Run does exactly that.
type Calculation struct {
	ledger   *Ledger
	fx       *FxRateStore
	resolver ShareResolver
	year     TaxYear
	fdrRate  decimal.Decimal

	diagnostics []string
}

// NewCalculation assembles a calculation over a ledger. The share resolver
// may be nil, in which case an unmatched trade code is an error.
func NewCalculation(ledger *Ledger, fx *FxRateStore, resolver ShareResolver, year TaxYear, fdrRate decimal.Decimal) *Calculation {
	return &Calculation{
		ledger:   ledger,
		fx:       fx,
		resolver: resolver,
		year:     year,
		fdrRate:  fdrRate,
	}
}

// diagf records a non-fatal reported condition; the run continues.
func (c *Calculation) diagf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	c.diagnostics = append(c.diagnostics, msg)
}

// Result holds the aggregate figures of a FIF income calculation, all in NZD.
type Result struct {
	Year TaxYear

	OpeningValue Money // total opening value of the holdings
	ClosingValue Money // total closing value of the holdings
	GrossIncome  Money // total dividend income
	CostOfTrades Money // total net cost of the year's trades

	FDRBasic             Money // fair dividend rate income before adjustments
	QuickSaleAdjustments Money // sum of the quick sale adjustments
	QuickSaleApplied     bool  // false when the CV short circuit skipped the engine

	CVIncome  Money // comparative value income
	FDRIncome Money // fair dividend rate income
	FIFIncome Money // min(FDRIncome, CVIncome) floored at zero

	Shares      []*Share
	Diagnostics []string
}

// Run executes the whole pipeline and reconciles the two methods.
func (c *Calculation) Run() (*Result, error) {
	opening, fdrBasic, err := c.ProcessOpening()
	if err != nil {
		return nil, err
	}
	costs, anyQuickSale, err := c.ProcessTrades()
	if err != nil {
		return nil, err
	}
	income, err := c.ProcessDividends()
	if err != nil {
		return nil, err
	}
	closing, err := c.ProcessClosing()
	if err != nil {
		return nil, err
	}

	r := &Result{
		Year:                 c.year,
		OpeningValue:         opening,
		ClosingValue:         closing,
		GrossIncome:          income,
		CostOfTrades:         costs,
		FDRBasic:             fdrBasic,
		QuickSaleAdjustments: M(0, NZD),
		Shares:               c.ledger.Shares(),
	}

	r.CVIncome = closing.Add(income).Sub(opening.Add(costs))
	r.FDRIncome = fdrBasic

	// Short circuit: a quick sale adjustment can only raise FDR income, so
	// when CV income already is the lower of the two there is no point in
	// computing it.
	if anyQuickSale && r.CVIncome.GreaterThan(fdrBasic) {
		for _, sh := range c.ledger.Shares() {
			if !sh.quickSale.IsPending() {
				continue
			}
			adj, err := c.QuickSaleAdjust(sh)
			if err != nil {
				return nil, err
			}
			r.QuickSaleAdjustments = r.QuickSaleAdjustments.Add(adj)
		}
		r.QuickSaleApplied = true
		r.FDRIncome = fdrBasic.Add(r.QuickSaleAdjustments)
	}

	r.FIFIncome = r.FDRIncome
	if r.CVIncome.LessThan(r.FIFIncome) {
		r.FIFIncome = r.CVIncome
	}
	if r.FIFIncome.IsNegative() {
		r.FIFIncome = M(0, NZD)
	}

	r.Diagnostics = c.diagnostics
	return r, nil
}
