package fif

import (
	"fmt"
	"log"
)

// QuickSaleAdjust computes the capped addition to FDR income for one share
// flagged pending: the portion of the year's gains attributable to shares
// acquired and disposed of within the same tax year.
//
// The first pass walks the share's trades ascending by date, reconstructing
// the holding and matching each disposal against the shares acquired so far;
// the second pass walks them descending to annotate the acquisitions for
// audit. Trades with a zero native price are non-economic events (such as
// splits, which are unsupported): they are excluded and diagnosed.
func (c *Calculation) QuickSaleAdjust(sh *Share) (Money, error) {
	if !sh.quickSale.IsPending() {
		return M(0, NZD), fmt.Errorf("share %s is not flagged for a quick sale adjustment", sh.code)
	}
	trades := c.ledger.tradesOf(sh.code)

	holding := sh.openingHolding
	peak := holding
	acquiredShares := Q(0)
	quickSaleShares := Q(0)
	acquisitionCosts := M(0, NZD)
	proceeds := M(0, NZD)

	for _, t := range trades {
		if t.Price.IsZero() {
			c.diagf("share %s: ignoring zero-priced trade of %s shares on %s (splits and corporate actions are not supported)",
				sh.code, t.Quantity, t.Date)
			continue
		}
		holding = holding.Add(t.Quantity)
		if holding.GreaterThan(peak) {
			peak = holding
		}
		rate, err := c.fx.Rate(sh.currency, t.Date)
		if err != nil {
			return M(0, NZD), err
		}
		charge := M(t.Charge().value, sh.currency)
		if t.IsAcquisition() {
			acquiredShares = acquiredShares.Add(t.Quantity)
			acquisitionCosts = acquisitionCosts.Add(charge.ConvertAt(rate).RoundCent())
			continue
		}
		// A disposal draws first from the shares acquired within the year
		// that have not been matched yet.
		sold := t.Quantity.Abs()
		portion := MinQuantity(sold, acquiredShares.Sub(quickSaleShares))
		if portion.IsNegative() {
			portion = Q(0)
		}
		t.setQuickSalePortion(portion)
		quickSaleShares = quickSaleShares.Add(portion)
		if !portion.IsZero() {
			gross := charge.Abs().ConvertAt(rate)
			proceeds = proceeds.Add(gross.Mul(portion).Div(sold).RoundCent())
		}
	}

	// The reconstructed holding must agree with the closing holding recorded
	// by trade processing. A mismatch (typically caused by an excluded
	// zero-priced trade) voids this share's adjustment; the run continues.
	if !holding.Equal(sh.holding) {
		c.diagf("share %s: reconstructed holding %s does not match the closing holding %s; quick sale adjustment set to zero",
			sh.code, holding, sh.holding)
		sh.quickSale = QuickSaleComputed(M(0, NZD))
		return M(0, NZD), nil
	}

	c.annotateAcquisitions(sh, trades)

	if acquiredShares.IsZero() {
		// A pending flag requires an acquisition before a disposal, so this
		// is unreachable on consistent data; fail explicitly rather than
		// divide by zero.
		return M(0, NZD), fmt.Errorf("share %s: flagged for a quick sale adjustment but no shares were acquired", sh.code)
	}

	averageCost := acquisitionCosts.Div(acquiredShares)
	peakDifferential := MinQuantity(peak.Sub(sh.openingHolding), peak.Sub(sh.holding))
	peakHoldingAdjustment := averageCost.Mul(peakDifferential).Mul(Q(c.fdrRate)).RoundCent()

	quickSaleCosts := averageCost.Mul(quickSaleShares).RoundCent()
	quickSaleGain := proceeds.Sub(quickSaleCosts)
	if quickSaleGain.IsNegative() {
		quickSaleGain = M(0, NZD)
	}

	adjustment := peakHoldingAdjustment
	if quickSaleGain.LessThan(adjustment) {
		adjustment = quickSaleGain
	}
	sh.quickSale = QuickSaleComputed(adjustment)
	return adjustment, nil
}

// annotateAcquisitions walks the trades in reverse to tag each acquisition
// with the count of its shares later disposed of as quick sales. The
// annotation does not affect the adjustment; it exists for audit reporting,
// alongside the dividends paid while those shares were held.
func (c *Calculation) annotateAcquisitions(sh *Share, trades []*Trade) {
	balance := Q(0)
	var last Date
	for i := len(trades) - 1; i >= 0; i-- {
		t := trades[i]
		if t.Price.IsZero() {
			continue
		}
		if !last.IsZero() {
			for _, d := range c.ledger.dividendsOf(sh.code) {
				if d.Date.After(t.Date) && d.Date.Before(last) {
					log.Printf("share %s: dividend of %s paid on %s between trades of %s and %s",
						sh.code, d.Paid, d.Date, t.Date, last)
				}
			}
		}
		last = t.Date
		if t.IsDisposal() {
			if portion, ok := t.QuickSalePortion(); ok {
				balance = balance.Add(portion)
			}
			continue
		}
		portion := MinQuantity(t.Quantity, balance)
		t.setQuickSalePortion(portion)
		balance = balance.Sub(portion)
	}
}
