// Package cmd implements the CLI application to compute FIF income.
// A main package registers Commands and executes the user-selected one.
// All interactive prompting and retry loops live here; the core only
// validates.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sjoerdsma/fif"
)

// Commands lists the subcommands of the fifcalc tool.
var Commands = []subcommands.Command{
	&calcCmd{},
	&openingCmd{},
	&tradeCmd{},
	&dividendCmd{},
	&closePriceCmd{},
	&ratesCmd{},
	&setRateCmd{},
	&topicCmd{},
}

const (
	defaultLedgerFile = "ledger.jsonl"
	defaultFxFile     = "fx-rates.json"
)

// loadLedger decodes the ledger file filtered to one tax year.
func loadLedger(filename string, year fif.TaxYear) (*fif.Ledger, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return fif.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fif.DecodeLedger(f, year)
}

// loadFxStore decodes the persisted rate cache, attaching a resolver for
// the misses.
func loadFxStore(filename string, resolver fif.RateResolver) (*fif.FxRateStore, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return fif.NewFxRateStore(resolver), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fif.DecodeFxRateStore(f, resolver)
}

// saveFxStore persists the rate cache, so resolved rates survive the run.
func saveFxStore(filename string, store *fif.FxRateStore) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return fif.EncodeFxRateStore(f, store)
}

// appendLedgerLine opens the ledger in append mode and writes one record.
func appendLedgerLine(filename string, encode func(f *os.File) error) subcommands.ExitStatus {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := encode(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully appended record to %s\n", filename)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
