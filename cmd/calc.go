package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
	"github.com/sjoerdsma/fif/rbnz"
	"github.com/sjoerdsma/fif/renderer"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	year       string
	ledgerFile string
	fxFile     string
	feed       bool
	shares     bool
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute FIF income for a tax year" }
func (*calcCmd) Usage() string {
	return `fifcalc calc -y <year> [-l <ledger>] [-fx <rates>] [-feed] [-shares]

  Computes the FIF income for the given tax year using both the fair
  dividend rate and comparative value methods, and reports the lower of
  the two (never below zero).

  Exchange rates missing from the rates file are fetched from the RBNZ
  feed when -feed is given, and prompted for otherwise. Newly resolved
  rates are saved back to the rates file.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", "", "Tax year by the calendar year it ends in, e.g. 2024 (required)")
	f.StringVar(&c.ledgerFile, "l", defaultLedgerFile, "Ledger file to read")
	f.StringVar(&c.fxFile, "fx", defaultFxFile, "Exchange rate cache file")
	f.BoolVar(&c.feed, "feed", false, "Fetch missing exchange rates from the RBNZ feed instead of prompting")
	f.BoolVar(&c.shares, "shares", false, "Also print the per-share detail tables")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == "" {
		fmt.Fprintln(os.Stderr, "Error: the -y flag is required.")
		return subcommands.ExitUsageError
	}
	year, err := fif.ParseTaxYear(c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tax year: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger(c.ledgerFile, year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}

	var resolver fif.RateResolver
	if c.feed {
		resolver = rbnz.New()
	} else {
		resolver = newPromptRateResolver(os.Stdin, os.Stdout)
	}
	fx, err := loadFxStore(c.fxFile, resolver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding exchange rates %q: %v\n", c.fxFile, err)
		return subcommands.ExitFailure
	}

	calc := fif.NewCalculation(ledger, fx, newPromptShareResolver(os.Stdin, os.Stdout), year, fif.DefaultFDRRate)
	result, err := calc.Run()
	if errors.Is(err, fif.ErrCancelled) {
		fmt.Fprintln(os.Stderr, "Cancelled.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing FIF income: %v\n", err)
		return subcommands.ExitFailure
	}

	// Rates resolved during the run are worth keeping for the next one.
	if err := saveFxStore(c.fxFile, fx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save exchange rates to %q: %v\n", c.fxFile, err)
	}

	printMarkdown(renderer.SummaryMarkdown(result))
	if c.shares {
		printMarkdown(renderer.SharesMarkdown(result))
	}
	return subcommands.ExitSuccess
}
