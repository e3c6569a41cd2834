package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// openingCmd holds the flags for the 'opening' subcommand.
type openingCmd struct {
	code       string
	name       string
	currency   string
	holding    string
	price      string
	ledgerFile string
}

func (*openingCmd) Name() string     { return "opening" }
func (*openingCmd) Synopsis() string { return "record an opening position at the start of a tax year" }
func (*openingCmd) Usage() string {
	return `fifcalc opening -c <code> -currency <cur> -holding <qty> -price <amount> [-name <name>] [-l <ledger>]

  Appends an opening position record to the ledger. The holding and the
  native per-share price are as at the start of the tax year (1 April).
`
}

func (c *openingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Share code, e.g. ASX:EMB (required)")
	f.StringVar(&c.name, "name", "", "Share name")
	f.StringVar(&c.currency, "currency", "", "Share currency, 3-letter code (required)")
	f.StringVar(&c.holding, "holding", "", "Number of shares held at the start of the year (required)")
	f.StringVar(&c.price, "price", "", "Native per-share price at the start of the year (required)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to")
}

func (c *openingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.currency == "" || c.holding == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: the -c, -currency, -holding and -price flags are required.")
		return subcommands.ExitUsageError
	}
	holding, err := fif.ParseQuantity(c.holding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing holding: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := fif.ParseMoney(c.price, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	sh, err := fif.NewShare(c.code, c.name, c.currency, holding, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendLedgerLine(c.ledgerFile, func(f *os.File) error {
		return fif.EncodeOpening(f, sh)
	})
}
