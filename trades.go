package fif

import "fmt"

// ProcessTrades aggregates the year's trades per share in chronological
// order: it updates holdings, converts each trade's charge to NZD at the
// trade date, and flags shares that need a quick sale adjustment (a
// disposal chronologically after an intra-year acquisition).
//
// Shares first seen in a trade are created through the share resolver.
func (c *Calculation) ProcessTrades() (total Money, anyQuickSale bool, err error) {
	total = M(0, NZD)
	c.ledger.sortTrades()

	// Track every traded code first, so holdings and costs are accumulated
	// against a known share.
	for _, t := range c.ledger.trades {
		if c.ledger.Share(t.Code) != nil {
			continue
		}
		if c.resolver == nil {
			return total, false, fmt.Errorf("trade for unknown share %q and no resolver to ask", t.Code)
		}
		name, currency, err := c.resolver.ResolveShare(t.Code)
		if err != nil {
			return total, false, fmt.Errorf("resolving share %q: %w", t.Code, err)
		}
		sh, err := NewShare(t.Code, name, currency, Q(0), M(0, currency))
		if err != nil {
			return total, false, err
		}
		if err := c.ledger.AddShare(sh); err != nil {
			return total, false, err
		}
	}

	for _, sh := range c.ledger.Shares() {
		acquired := false
		for _, t := range c.ledger.tradesOf(sh.code) {
			sh.holding = sh.holding.Add(t.Quantity)

			charge := M(t.Charge().value, sh.currency)
			if !charge.IsZero() {
				rate, err := c.fx.Rate(sh.currency, t.Date)
				if err != nil {
					return total, anyQuickSale, err
				}
				nzd := charge.ConvertAt(rate).RoundCent()
				sh.costOfTrades = sh.costOfTrades.Add(nzd)
				total = total.Add(nzd)
			}

			if t.IsAcquisition() {
				acquired = true
			} else if acquired && !sh.quickSale.Applicable() {
				sh.quickSale = QuickSalePending()
			}
			if sh.quickSale.IsPending() {
				anyQuickSale = true
			}
		}
	}

	if err := c.checkHoldings(); err != nil {
		return total, anyQuickSale, err
	}
	return total, anyQuickSale, nil
}

// checkHoldings cross-checks the invariant
// holding = opening holding + sum of the share's trade quantities.
// A mismatch is a data-integrity fault: some writer other than trade
// processing touched a holding.
func (c *Calculation) checkHoldings() error {
	for _, sh := range c.ledger.Shares() {
		want := sh.openingHolding
		for _, t := range c.ledger.tradesOf(sh.code) {
			want = want.Add(t.Quantity)
		}
		if !sh.holding.Equal(want) {
			return fmt.Errorf("share %s: holding %s does not reconcile with opening holding plus trades (%s)",
				sh.code, sh.holding, want)
		}
	}
	return nil
}
