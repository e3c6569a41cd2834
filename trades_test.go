package fif

import (
	"errors"
	"testing"
)

// fakeShareResolver describes any share as a USD position named after its code.
type fakeShareResolver struct {
	calls int
	err   error
}

func (f *fakeShareResolver) ResolveShare(code string) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return code + " Inc", "USD", nil
}

func TestProcessTrades(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "EMB", "USD", "1000", "100"))
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-06-01"), Quantity: Q(3000), Price: M(100, ""), Costs: M("12.34", "")})
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-08-01"), Quantity: Q(-1000), Price: M("90.99", ""), Costs: M("4.56", "")})

	c := calcFixture(t, ledger)
	total, anyQuickSale, err := c.ProcessTrades()
	if err != nil {
		t.Fatalf("ProcessTrades: %v", err)
	}

	// 3000 x 100 + 12.34 = 300012.34; -1000 x 90.99 + 4.56 = -90985.44.
	assertMoney(t, "cost of trades", total, "209026.90")
	if !anyQuickSale {
		t.Error("a disposal after an intra-year acquisition must flag a quick sale")
	}

	sh := ledger.Share("EMB")
	if !sh.Holding().Equal(Q(3000)) {
		t.Errorf("holding = %s, want 3000", sh.Holding())
	}
	if !sh.QuickSale().IsPending() {
		t.Errorf("quick sale = %s, want pending", sh.QuickSale())
	}
}

// A disposal with no earlier intra-year acquisition is not a quick sale.
func TestProcessTradesDisposalFirst(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "EMB", "USD", "1000", "100"))
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-08-01"), Quantity: Q(-200), Price: M(100, ""), Costs: M(0, "")})
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-09-01"), Quantity: Q(500), Price: M(100, ""), Costs: M(0, "")})

	c := calcFixture(t, ledger)
	_, anyQuickSale, err := c.ProcessTrades()
	if err != nil {
		t.Fatalf("ProcessTrades: %v", err)
	}
	if anyQuickSale {
		t.Error("disposal before any acquisition must not flag a quick sale")
	}
	if ledger.Share("EMB").QuickSale().Applicable() {
		t.Errorf("quick sale = %s, want n/a", ledger.Share("EMB").QuickSale())
	}
}

// Trades are processed in date order regardless of ledger order, so a
// buy recorded after a sell but dated before it still flags the share.
func TestProcessTradesSortsByDate(t *testing.T) {
	ledger := NewLedger()
	ledger.AddShare(mustShare(t, "EMB", "USD", "1000", "100"))
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-08-01"), Quantity: Q(-200), Price: M(100, ""), Costs: M(0, "")})
	ledger.AddTrade(Trade{Code: "EMB", Date: MustParseDate("2023-06-01"), Quantity: Q(500), Price: M(100, ""), Costs: M(0, "")})

	c := calcFixture(t, ledger)
	_, anyQuickSale, err := c.ProcessTrades()
	if err != nil {
		t.Fatalf("ProcessTrades: %v", err)
	}
	if !anyQuickSale {
		t.Error("the June acquisition precedes the August disposal once sorted")
	}
}

func TestProcessTradesResolvesUnknownShares(t *testing.T) {
	ledger := NewLedger()
	ledger.AddTrade(Trade{Code: "NEW", Date: MustParseDate("2023-06-01"), Quantity: Q(10), Price: M(5, ""), Costs: M(0, "")})

	resolver := &fakeShareResolver{}
	fx := NewFxRateStore(&fakeRateResolver{rates: map[string]string{"USD": "1"}})
	c := NewCalculation(ledger, fx, resolver, TaxYear(2024), DefaultFDRRate)

	if _, _, err := c.ProcessTrades(); err != nil {
		t.Fatalf("ProcessTrades: %v", err)
	}
	sh := ledger.Share("NEW")
	if sh == nil {
		t.Fatal("traded share was not created")
	}
	if sh.Name() != "NEW Inc" || sh.Currency() != "USD" {
		t.Errorf("share = %s/%s, want NEW Inc/USD", sh.Name(), sh.Currency())
	}
	if !sh.OpeningHolding().IsZero() {
		t.Errorf("opening holding = %s, want 0", sh.OpeningHolding())
	}
	if resolver.calls != 1 {
		t.Errorf("resolver called %d times, want 1", resolver.calls)
	}
}

func TestProcessTradesNoResolver(t *testing.T) {
	ledger := NewLedger()
	ledger.AddTrade(Trade{Code: "NEW", Date: MustParseDate("2023-06-01"), Quantity: Q(10), Price: M(5, ""), Costs: M(0, "")})

	c := calcFixture(t, ledger)
	if _, _, err := c.ProcessTrades(); err == nil {
		t.Error("expected an error for an unknown share with no resolver")
	}
}

func TestProcessTradesCancelled(t *testing.T) {
	ledger := NewLedger()
	ledger.AddTrade(Trade{Code: "NEW", Date: MustParseDate("2023-06-01"), Quantity: Q(10), Price: M(5, ""), Costs: M(0, "")})

	resolver := &fakeShareResolver{err: ErrCancelled}
	fx := NewFxRateStore(nil)
	c := NewCalculation(ledger, fx, resolver, TaxYear(2024), DefaultFDRRate)

	_, _, err := c.ProcessTrades()
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("error = %v, want ErrCancelled", err)
	}
}
