package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	fxFile string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "list the cached exchange rates" }
func (*ratesCmd) Usage() string {
	return `fifcalc rates [-fx <rates>]

  Lists every exchange rate in the cache file, grouped by currency.
  Rates are foreign currency units per 1 NZD.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fxFile, "fx", defaultFxFile, "Exchange rate cache file")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadFxStore(c.fxFile, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding exchange rates %q: %v\n", c.fxFile, err)
		return subcommands.ExitFailure
	}

	rates := store.Rates()
	if len(rates) == 0 {
		fmt.Println("No cached exchange rates.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("# Cached Exchange Rates\n\n")
	b.WriteString("| Currency | Date | Rate per 1 NZD |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range rates {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Currency, r.Date, r.Rate)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
