package fif

// ProcessOpening computes each share's opening NZD value and accumulates the
// basic fair dividend rate income. Both are rounded half-up to the cent per
// security before summation; summing first and rounding once would give a
// different (wrong) result.
func (c *Calculation) ProcessOpening() (total, fdrBasic Money, err error) {
	total, fdrBasic = M(0, NZD), M(0, NZD)
	openingDate := c.year.PreviousEnd()
	for _, sh := range c.ledger.Shares() {
		value := M(0, NZD)
		native := sh.openingPrice.Mul(sh.openingHolding).RoundCent()
		if !native.IsZero() {
			rate, err := c.fx.Rate(sh.currency, openingDate)
			if err != nil {
				return total, fdrBasic, err
			}
			value = native.ConvertAt(rate).RoundCent()
		}
		sh.openingValue = value
		total = total.Add(value)
		fdrBasic = fdrBasic.Add(value.Mul(Q(c.fdrRate)).RoundCent())
	}
	return total, fdrBasic, nil
}
