package fif

import "fmt"

// ProcessDividends aggregates per-share dividend income, converted to NZD
// at the payment date and rounded half-up to the cent per dividend. No
// ordering requirement.
func (c *Calculation) ProcessDividends() (total Money, err error) {
	total = M(0, NZD)
	for _, d := range c.ledger.Dividends() {
		sh := c.ledger.Share(d.Code)
		if sh == nil {
			return total, fmt.Errorf("dividend for unknown share %q", d.Code)
		}
		if _, err := d.EligibleShares(); err != nil {
			// Reported, not silently coerced: the income figure below only
			// needs the gross amount.
			c.diagf("%v", err)
		}
		paid := M(d.Paid.value, sh.currency)
		if paid.IsZero() {
			continue
		}
		rate, err := c.fx.Rate(sh.currency, d.Date)
		if err != nil {
			return total, err
		}
		nzd := paid.ConvertAt(rate).RoundCent()
		sh.grossIncome = sh.grossIncome.Add(nzd)
		total = total.Add(nzd)
	}
	return total, nil
}
