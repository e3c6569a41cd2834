package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// closePriceCmd holds the flags for the 'close' subcommand.
type closePriceCmd struct {
	code       string
	price      string
	currency   string
	ledgerFile string
}

func (*closePriceCmd) Name() string     { return "close" }
func (*closePriceCmd) Synopsis() string { return "record a closing price at the end of a tax year" }
func (*closePriceCmd) Usage() string {
	return `fifcalc close -c <code> -price <amount> -currency <cur> [-l <ledger>]

  Appends a closing price record to the ledger. The price is the native
  per-share price as at 31 March.
`
}

func (c *closePriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Share code (required)")
	f.StringVar(&c.price, "price", "", "Native per-share price at 31 March (required)")
	f.StringVar(&c.currency, "currency", "", "Price currency, 3-letter code (required)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to")
}

func (c *closePriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.price == "" || c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: the -c, -price and -currency flags are required.")
		return subcommands.ExitUsageError
	}
	price, err := fif.ParseMoney(c.price, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendLedgerLine(c.ledgerFile, func(f *os.File) error {
		return fif.EncodeClosingPrice(f, c.code, price)
	})
}
