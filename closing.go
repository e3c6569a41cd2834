package fif

// ProcessClosing values each share's post-trade holding at its recorded
// year-end price. Shares with no closing price, a zero price, or a zero
// holding are reported with a zero value, not dropped.
func (c *Calculation) ProcessClosing() (total Money, err error) {
	total = M(0, NZD)
	closingDate := c.year.End()
	for _, sh := range c.ledger.Shares() {
		if price, ok := c.ledger.ClosingPrice(sh.code); ok {
			sh.closingPrice = M(price.value, sh.currency)
		}
		value := M(0, NZD)
		native := sh.closingPrice.Mul(sh.holding).RoundCent()
		if !native.IsZero() {
			rate, err := c.fx.Rate(sh.currency, closingDate)
			if err != nil {
				return total, err
			}
			value = native.ConvertAt(rate).RoundCent()
		}
		sh.closingValue = value
		total = total.Add(value)
	}
	return total, nil
}
