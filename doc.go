// Package fif computes New Zealand Foreign Investment Fund (FIF) income for
// a single tax year from a taxpayer's foreign share holdings.
//
// Income is calculated with two independent statutory methods:
//   - Fair Dividend Rate (FDR): a fixed percentage of the opening NZD value
//     of the holdings, plus a quick sale adjustment for shares bought and
//     sold within the same year.
//   - Comparative Value (CV): closing value plus dividends, minus opening
//     value and the net cost of trades.
//
// The final FIF income is the lesser of the two, floored at zero.
//
// The core functionalities include:
//   - Ledger: the set of tracked shares together with the year's trades,
//     dividends and closing prices, persisted as a human-readable JSONL file.
//   - FX rate store: an explicit cache of exchange rates (foreign units per
//     NZD) keyed by currency and statutory observation date, filled on
//     demand through a pluggable resolver and persisted between runs.
//   - Computation pipeline: opening positions, trades, dividends, closing
//     values, the quick sale adjustment, and the final reconciliation of the
//     two methods.
//
// This package serves as the foundational logic for the `fifcalc`
// command-line tool. All monetary arithmetic is exact decimal; statutory
// rounding is half-up to the cent, applied per security before summation.
package fif
