package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// setRateCmd holds the flags for the 'set-rate' subcommand.
type setRateCmd struct {
	currency string
	date     string
	rate     string
	fxFile   string
}

func (*setRateCmd) Name() string     { return "set-rate" }
func (*setRateCmd) Synopsis() string { return "add or replace a cached exchange rate" }
func (*setRateCmd) Usage() string {
	return `fifcalc set-rate -currency <cur> -d <date> -rate <rate> [-fx <rates>]

  Stores an exchange rate in the cache file. The rate is foreign
  currency units per 1 NZD. The date is normalised to its observation
  date: 31 March stays as is, any other date becomes the 15th of its
  month.
`
}

func (c *setRateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Currency, 3-letter code (required)")
	f.StringVar(&c.date, "d", fif.Today().String(), "Date the rate applies to")
	f.StringVar(&c.rate, "rate", "", "Foreign currency units per 1 NZD (required)")
	f.StringVar(&c.fxFile, "fx", defaultFxFile, "Exchange rate cache file")
}

func (c *setRateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.currency == "" || c.rate == "" {
		fmt.Fprintln(os.Stderr, "Error: the -currency and -rate flags are required.")
		return subcommands.ExitUsageError
	}
	day, err := fif.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := fif.ParseRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rate: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := loadFxStore(c.fxFile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding exchange rates %q: %v\n", c.fxFile, err)
		return subcommands.ExitFailure
	}
	if err := store.Set(c.currency, day, rate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := saveFxStore(c.fxFile, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving exchange rates to %q: %v\n", c.fxFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Stored %s rate for %s.\n", c.currency, day.Observation())
	return subcommands.ExitSuccess
}
