package fif

import (
	"testing"
)

// calcFixture builds a calculation over the given ledger with a rate-1
// resolver for every currency, which keeps NZD figures equal to native ones.
func calcFixture(t *testing.T, ledger *Ledger) *Calculation {
	t.Helper()
	resolver := &fakeRateResolver{rates: map[string]string{
		"USD": "1", "EUR": "1", "AUD": "1",
	}}
	return NewCalculation(ledger, NewFxRateStore(resolver), nil, TaxYear(2024), DefaultFDRRate)
}

func mustShare(t *testing.T, code, currency, holding, price string) *Share {
	t.Helper()
	sh, err := NewShare(code, code, currency, Q(holding), M(price, currency))
	if err != nil {
		t.Fatalf("NewShare(%s): %v", code, err)
	}
	return sh
}

// assertMoney fails unless the money equals the given NZD amount.
func assertMoney(t *testing.T, label string, got Money, want string) {
	t.Helper()
	if !got.value.Equal(M(want, NZD).value) {
		t.Errorf("%s = %s, want %s", label, got.value, want)
	}
}

func TestProcessOpening(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "SOME", "NZD", "0", "0"))
	ledger.AddShare(mustShare(t, "EMB", "USD", "1100", "1000"))
	ledger.AddShare(mustShare(t, "ROBECO", "EUR", "111.11", "1.2345"))

	c := calcFixture(t, ledger)
	total, fdrBasic, err := c.ProcessOpening()
	if err != nil {
		t.Fatalf("ProcessOpening: %v", err)
	}

	// 1.2345 x 111.11 = 137.1653 rounds to 137.17 before summation.
	assertMoney(t, "opening total", total, "1100137.17")
	// 5% per security: 0 + 55000.00 + 6.86 (137.17 x 0.05 = 6.8585).
	assertMoney(t, "FDR basic", fdrBasic, "55006.86")

	assertMoney(t, "ROBECO opening value", ledger.Share("ROBECO").OpeningValue(), "137.17")
	if got := ledger.Share("SOME").OpeningValue(); !got.IsZero() {
		t.Errorf("zero-holding share opening value = %s, want 0", got.value)
	}
}

// The 5% is rounded per security, not on the grand total: two securities at
// 100.90 yield 5.05 each, 10.10 in total, where a single rounding of
// 201.80 x 0.05 would give 10.09.
func TestProcessOpeningRoundsPerSecurity(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "A", "USD", "1", "100.90"))
	ledger.AddShare(mustShare(t, "B", "USD", "1", "100.90"))

	c := calcFixture(t, ledger)
	_, fdrBasic, err := c.ProcessOpening()
	if err != nil {
		t.Fatalf("ProcessOpening: %v", err)
	}
	assertMoney(t, "FDR basic", fdrBasic, "10.10")
}

// A zero opening value must not trigger an exchange rate lookup: the store
// has no resolver for this currency and would fail.
func TestProcessOpeningSkipsFxOnZero(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "NEW", "GBP", "0", "0"))

	c := NewCalculation(ledger, NewFxRateStore(nil), nil, TaxYear(2024), DefaultFDRRate)
	total, fdrBasic, err := c.ProcessOpening()
	if err != nil {
		t.Fatalf("ProcessOpening: %v", err)
	}
	if !total.IsZero() || !fdrBasic.IsZero() {
		t.Errorf("total = %s, fdrBasic = %s, want both zero", total.value, fdrBasic.value)
	}
}
