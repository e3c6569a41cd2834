package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sjoerdsma/fif"
)

// promptRateResolver asks the user for exchange rates the store could not
// supply. It keeps asking until the input parses, and treats "q" as a
// request to abandon the whole run.
type promptRateResolver struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPromptRateResolver(in io.Reader, out io.Writer) *promptRateResolver {
	return &promptRateResolver{in: bufio.NewScanner(in), out: out}
}

func (p *promptRateResolver) ResolveRate(currency string, on fif.Date) (string, error) {
	for {
		fmt.Fprintf(p.out, "Exchange rate for %s on %s (units per 1 NZD, or q to quit): ", currency, on)
		if !p.in.Scan() {
			return "", fif.ErrCancelled
		}
		answer := strings.TrimSpace(p.in.Text())
		if strings.EqualFold(answer, "q") {
			return "", fif.ErrCancelled
		}
		if _, err := fif.ParseRate(answer); err != nil {
			fmt.Fprintf(p.out, "Invalid rate: %v\n", err)
			continue
		}
		return answer, nil
	}
}

// promptShareResolver asks the user to describe shares that appear in
// trades without an opening position.
type promptShareResolver struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPromptShareResolver(in io.Reader, out io.Writer) *promptShareResolver {
	return &promptShareResolver{in: bufio.NewScanner(in), out: out}
}

func (p *promptShareResolver) ResolveShare(code string) (string, string, error) {
	fmt.Fprintf(p.out, "Share %q is traded but has no opening position.\n", code)
	fmt.Fprintf(p.out, "Name for %s (or q to quit): ", code)
	if !p.in.Scan() {
		return "", "", fif.ErrCancelled
	}
	name := strings.TrimSpace(p.in.Text())
	if strings.EqualFold(name, "q") {
		return "", "", fif.ErrCancelled
	}
	if name == "" {
		name = code
	}

	for {
		fmt.Fprintf(p.out, "Currency for %s, 3-letter code (or q to quit): ", code)
		if !p.in.Scan() {
			return "", "", fif.ErrCancelled
		}
		currency := strings.ToUpper(strings.TrimSpace(p.in.Text()))
		if strings.EqualFold(currency, "Q") {
			return "", "", fif.ErrCancelled
		}
		if err := fif.ValidateCurrency(currency); err != nil {
			fmt.Fprintf(p.out, "Invalid currency: %v\n", err)
			continue
		}
		return name, currency, nil
	}
}
