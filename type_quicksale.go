package fif

// quickSaleState enumerates the lifecycle of a share's quick sale adjustment.
type quickSaleState int

const (
	// quickSaleNotApplicable means no intra-year disposal followed an acquisition.
	quickSaleNotApplicable quickSaleState = iota
	// quickSalePending means trade processing flagged the share for an adjustment.
	quickSalePending
	// quickSaleComputed means the adjustment engine has produced an amount.
	quickSaleComputed
)

// QuickSale is the tri-state quick sale adjustment of a share:
// not applicable, pending, or a computed NZD amount.
type QuickSale struct {
	state  quickSaleState
	amount Money
}

// QuickSalePending marks a share as requiring a quick sale adjustment.
func QuickSalePending() QuickSale { return QuickSale{state: quickSalePending} }

// QuickSaleComputed wraps the adjustment computed for a share.
func QuickSaleComputed(amount Money) QuickSale {
	return QuickSale{state: quickSaleComputed, amount: amount}
}

// IsPending reports whether the adjustment is flagged but not yet computed.
func (q QuickSale) IsPending() bool { return q.state == quickSalePending }

// Applicable reports whether the share was flagged at all.
func (q QuickSale) Applicable() bool { return q.state != quickSaleNotApplicable }

// Amount returns the computed adjustment, and whether it has been computed.
func (q QuickSale) Amount() (Money, bool) {
	return q.amount, q.state == quickSaleComputed
}

func (q QuickSale) String() string {
	switch q.state {
	case quickSalePending:
		return "pending"
	case quickSaleComputed:
		return q.amount.String()
	default:
		return "n/a"
	}
}
