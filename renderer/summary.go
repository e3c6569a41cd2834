package renderer

import (
	"fmt"
	"strings"

	"github.com/sjoerdsma/fif"
)

// SummaryMarkdown renders the reconciliation of the two methods and the
// final FIF income figure.
func SummaryMarkdown(r *fif.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# FIF Income for the %s Tax Year\n\n", r.Year)

	fmt.Fprint(&b, "## Comparative Value\n\n")
	fmt.Fprintln(&b, "| Component | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Closing value (%s) | %s |\n", r.Year.End(), r.ClosingValue.String())
	fmt.Fprintf(&b, "| Gross dividend income | %s |\n", r.GrossIncome.String())
	fmt.Fprintf(&b, "| Opening value (%s) | %s |\n", r.Year.PreviousEnd(), r.OpeningValue.Neg().String())
	fmt.Fprintf(&b, "| Net cost of trades | %s |\n", r.CostOfTrades.Neg().String())
	fmt.Fprintf(&b, "| **CV income** | **%s** |\n\n", r.CVIncome.String())

	fmt.Fprint(&b, "## Fair Dividend Rate\n\n")
	fmt.Fprintln(&b, "| Component | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| FDR basic income | %s |\n", r.FDRBasic.String())
	if r.QuickSaleApplied {
		fmt.Fprintf(&b, "| Quick sale adjustments | %s |\n", r.QuickSaleAdjustments.String())
	} else {
		fmt.Fprintf(&b, "| Quick sale adjustments | not required |\n")
	}
	fmt.Fprintf(&b, "| **FDR income** | **%s** |\n\n", r.FDRIncome.String())

	fmt.Fprintf(&b, "**FIF income (lesser of the two, floored at zero): %s**\n", r.FIFIncome.String())

	if len(r.Diagnostics) > 0 {
		fmt.Fprint(&b, "\n## Diagnostics\n\n")
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}

	return b.String()
}
