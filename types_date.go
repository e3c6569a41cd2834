package fif

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare orders two dates chronologically, for use with the slices sort helpers.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Observation returns the statutory observation point used for exchange
// rates: the tax year boundary (31 March) verbatim, any other date the 15th
// of its month.
func (d Date) Observation() Date {
	if d.m == time.March && d.d == 31 {
		return d
	}
	return NewDate(d.y, d.m, 15)
}

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseDate(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// TaxYear identifies a New Zealand tax year by the calendar year it ends in:
// TaxYear(2018) runs from 1 April 2017 to 31 March 2018.
type TaxYear int

// fdrIntroduced is the first tax year the fair dividend rate rules applied to.
const fdrIntroduced = 2008

// End returns the last day of the tax year (31 March).
func (y TaxYear) End() Date { return NewDate(int(y), time.March, 31) }

// PreviousEnd returns the last day of the previous tax year, the valuation
// date for opening positions.
func (y TaxYear) PreviousEnd() Date { return NewDate(int(y)-1, time.March, 31) }

// Contains reports whether the date falls inside the tax year: exclusive of
// the previous year end, inclusive of the current one.
func (y TaxYear) Contains(d Date) bool {
	return d.After(y.PreviousEnd()) && !d.After(y.End())
}

func (y TaxYear) String() string { return fmt.Sprintf("%d-%d", int(y)-1, int(y)) }

// ParseTaxYear parses the calendar year a tax year ends in, e.g. "2018" for
// the 2017-2018 tax year. It is a pure validation function: the interactive
// retry loop lives in the CLI layer.
func ParseTaxYear(str string) (TaxYear, error) {
	year, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid tax year %q: %w", str, err)
	}
	if year < fdrIntroduced {
		return 0, fmt.Errorf("invalid tax year %d: the fair dividend rate rules apply from %d onwards", year, fdrIntroduced)
	}
	if year > time.Now().Year()+1 {
		return 0, fmt.Errorf("invalid tax year %d: it has not started yet", year)
	}
	return TaxYear(year), nil
}
