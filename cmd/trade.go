package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	code       string
	date       string
	quantity   string
	price      string
	costs      string
	currency   string
	ledgerFile string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "record a buy or sell trade" }
func (*tradeCmd) Usage() string {
	return `fifcalc trade -c <code> -d <date> -q <qty> -price <amount> -currency <cur> [-costs <amount>] [-l <ledger>]

  Appends a trade record to the ledger. Quantity is signed: positive
  buys, negative sells. Price and costs are in the share's native
  currency.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Share code (required)")
	f.StringVar(&c.date, "d", fif.Today().String(), "Trade date, e.g. 2023-11-28")
	f.StringVar(&c.quantity, "q", "", "Signed number of shares, positive buys (required)")
	f.StringVar(&c.price, "price", "", "Native per-share price (required)")
	f.StringVar(&c.costs, "costs", "0", "Native transaction costs such as brokerage")
	f.StringVar(&c.currency, "currency", "", "Trade currency, 3-letter code (required)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.quantity == "" || c.price == "" || c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: the -c, -q, -price and -currency flags are required.")
		return subcommands.ExitUsageError
	}
	day, err := fif.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := fif.ParseQuantity(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := fif.ParseMoney(c.price, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	costs, err := fif.ParseMoney(c.costs, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing costs: %v\n", err)
		return subcommands.ExitUsageError
	}
	t := fif.Trade{Code: c.code, Date: day, Quantity: qty, Price: price, Costs: costs}
	if err := t.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendLedgerLine(c.ledgerFile, func(f *os.File) error {
		return fif.EncodeTrade(f, t)
	})
}
