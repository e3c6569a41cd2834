package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/sjoerdsma/fif"
)

// SharesMarkdown renders the per-security breakdown of the calculation.
func SharesMarkdown(r *fif.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Breakdown per Security")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Security",
			"Opening Shares",
			"Closing Shares",
			"Opening Value",
			"Cost of Trades",
			"Dividends",
			"Closing Value",
			"Quick Sale Adj.",
		},
	}
	for _, sh := range r.Shares {
		table.Rows = append(table.Rows, []string{
			sh.Code(),
			sh.OpeningHolding().String(),
			sh.Holding().String(),
			sh.OpeningValue().String(),
			sh.CostOfTrades().String(),
			sh.GrossIncome().String(),
			sh.ClosingValue().String(),
			sh.QuickSale().String(),
		})
	}
	doc.Table(table)

	doc.Build()
	return buf.String()
}
