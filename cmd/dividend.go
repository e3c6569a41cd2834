package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// dividendCmd holds the flags for the 'dividend' subcommand.
type dividendCmd struct {
	code       string
	date       string
	perShare   string
	paid       string
	currency   string
	ledgerFile string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend payment" }
func (*dividendCmd) Usage() string {
	return `fifcalc dividend -c <code> -d <date> -per-share <amount> -paid <amount> -currency <cur> [-l <ledger>]

  Appends a dividend record to the ledger. Both amounts are gross and in
  the share's native currency.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Share code (required)")
	f.StringVar(&c.date, "d", fif.Today().String(), "Payment date, e.g. 2023-09-15")
	f.StringVar(&c.perShare, "per-share", "", "Gross dividend declared per share (required)")
	f.StringVar(&c.paid, "paid", "", "Gross amount paid in total (required)")
	f.StringVar(&c.currency, "currency", "", "Dividend currency, 3-letter code (required)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to append to")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.perShare == "" || c.paid == "" || c.currency == "" {
		fmt.Fprintln(os.Stderr, "Error: the -c, -per-share, -paid and -currency flags are required.")
		return subcommands.ExitUsageError
	}
	day, err := fif.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	perShare, err := fif.ParseMoney(c.perShare, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing per-share amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	paid, err := fif.ParseMoney(c.paid, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing paid amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	d := fif.Dividend{Code: c.code, Date: day, PerShare: perShare, Paid: paid}
	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return appendLedgerLine(c.ledgerFile, func(f *os.File) error {
		return fif.EncodeDividend(f, d)
	})
}
