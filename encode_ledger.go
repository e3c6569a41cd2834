package fif

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// CommandType is a typed string for identifying ledger record commands.
type CommandType string

// Command types used for identifying ledger records.
const (
	CmdOpening      CommandType = "opening"
	CmdTrade        CommandType = "trade"
	CmdDividend     CommandType = "dividend"
	CmdClosingPrice CommandType = "closing-price"
)

// The ledger is a JSONL file, one record per line, identified by a
// "command" discriminator. Amounts are bare decimals in the native currency
// of the share; the currency itself appears only on the opening record.

// openingRecord declares a share and its position at the start of the year.
type openingRecord struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Holding  decimal.Decimal `json:"holding"`
	Price    decimal.Decimal `json:"price"`
}

// tradeRecord is one acquisition (positive quantity) or disposal (negative).
type tradeRecord struct {
	Date     Date            `json:"date"`
	Code     string          `json:"code"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Costs    decimal.Decimal `json:"costs"`
}

// dividendRecord is one dividend payment.
type dividendRecord struct {
	Date     Date            `json:"date"`
	Code     string          `json:"code"`
	PerShare decimal.Decimal `json:"perShare"`
	Paid     decimal.Decimal `json:"paid"`
}

// closingPriceRecord is the share's native price at the tax year end.
type closingPriceRecord struct {
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
}

// DecodeLedger decodes ledger records from a stream of JSONL data and
// returns a Ledger. Trades and dividends outside the tax year are filtered
// out here: the computation receives the year's data as a closed batch.
func DecodeLedger(r io.Reader, year TaxYear) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var err error
		switch identifier.Command {
		case CmdOpening:
			var rec openingRecord
			if err = json.Unmarshal(lineBytes, &rec); err != nil {
				break
			}
			var sh *Share
			sh, err = NewShare(rec.Code, rec.Name, rec.Currency, Q(rec.Holding), M(rec.Price, rec.Currency))
			if err != nil {
				break
			}
			err = ledger.AddShare(sh)
		case CmdTrade:
			var rec tradeRecord
			if err = json.Unmarshal(lineBytes, &rec); err != nil {
				break
			}
			if !year.Contains(rec.Date) {
				continue
			}
			err = ledger.AddTrade(Trade{
				Code:     rec.Code,
				Date:     rec.Date,
				Quantity: Q(rec.Quantity),
				Price:    M(rec.Price, ""),
				Costs:    M(rec.Costs, ""),
			})
		case CmdDividend:
			var rec dividendRecord
			if err = json.Unmarshal(lineBytes, &rec); err != nil {
				break
			}
			if !year.Contains(rec.Date) {
				continue
			}
			err = ledger.AddDividend(Dividend{
				Code:     rec.Code,
				Date:     rec.Date,
				PerShare: M(rec.PerShare, ""),
				Paid:     M(rec.Paid, ""),
			})
		case CmdClosingPrice:
			var rec closingPriceRecord
			if err = json.Unmarshal(lineBytes, &rec); err != nil {
				break
			}
			err = ledger.SetClosingPrice(rec.Code, M(rec.Price, ""))
		default:
			return nil, fmt.Errorf("unknown command %q in line %q", identifier.Command, string(lineBytes))
		}
		if err != nil {
			return nil, fmt.Errorf("invalid ledger line %q: %w", string(lineBytes), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return ledger, nil
}

// encodeLine marshals one record and appends it as a JSONL line.
func encodeLine(w io.Writer, v json.Marshaler) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// EncodeOpening appends an opening-position record.
func EncodeOpening(w io.Writer, sh *Share) error {
	var obj jsonObjectWriter
	obj.Append("command", CmdOpening)
	obj.Append("code", sh.Code())
	obj.Optional("name", sh.Name())
	obj.Append("currency", sh.Currency())
	obj.Append("holding", sh.OpeningHolding())
	obj.Append("price", sh.OpeningPrice())
	return encodeLine(w, &obj)
}

// EncodeTrade appends a trade record.
func EncodeTrade(w io.Writer, t Trade) error {
	var obj jsonObjectWriter
	obj.Append("command", CmdTrade)
	obj.Append("date", t.Date)
	obj.Append("code", t.Code)
	obj.Append("quantity", t.Quantity)
	obj.Append("price", t.Price)
	obj.Append("costs", t.Costs)
	return encodeLine(w, &obj)
}

// EncodeDividend appends a dividend record.
func EncodeDividend(w io.Writer, d Dividend) error {
	var obj jsonObjectWriter
	obj.Append("command", CmdDividend)
	obj.Append("date", d.Date)
	obj.Append("code", d.Code)
	obj.Append("perShare", d.PerShare)
	obj.Append("paid", d.Paid)
	return encodeLine(w, &obj)
}

// EncodeClosingPrice appends a closing-price record.
func EncodeClosingPrice(w io.Writer, code string, price Money) error {
	var obj jsonObjectWriter
	obj.Append("command", CmdClosingPrice)
	obj.Append("code", code)
	obj.Append("price", price)
	return encodeLine(w, &obj)
}
