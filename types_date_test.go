package fif

import (
	"testing"
	"time"
)

func TestObservation(t *testing.T) {
	tests := []struct {
		input    Date
		expected Date
	}{
		// The tax year boundary is observed verbatim.
		{NewDate(2024, time.March, 31), NewDate(2024, time.March, 31)},
		// Any other date snaps to the 15th of its month, either direction.
		{NewDate(2024, time.March, 30), NewDate(2024, time.March, 15)},
		{NewDate(2023, time.November, 28), NewDate(2023, time.November, 15)},
		{NewDate(2023, time.November, 2), NewDate(2023, time.November, 15)},
		{NewDate(2023, time.November, 15), NewDate(2023, time.November, 15)},
		// the 31st of any other month is not special.
		{NewDate(2024, time.May, 31), NewDate(2024, time.May, 15)},
	}
	for _, tt := range tests {
		if got := tt.input.Observation(); got != tt.expected {
			t.Errorf("Observation(%s) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestTaxYearBounds(t *testing.T) {
	y := TaxYear(2024)
	if got, want := y.End(), NewDate(2024, time.March, 31); got != want {
		t.Errorf("End() = %s, want %s", got, want)
	}
	if got, want := y.PreviousEnd(), NewDate(2023, time.March, 31); got != want {
		t.Errorf("PreviousEnd() = %s, want %s", got, want)
	}
	if got, want := y.String(), "2023-2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTaxYearContains(t *testing.T) {
	y := TaxYear(2024)
	tests := []struct {
		date     string
		expected bool
	}{
		{"2023-03-31", false}, // previous year end is excluded
		{"2023-04-01", true},  // first day in
		{"2023-11-28", true},
		{"2024-03-31", true},  // year end is included
		{"2024-04-01", false}, // next year
	}
	for _, tt := range tests {
		if got := y.Contains(MustParseDate(tt.date)); got != tt.expected {
			t.Errorf("TaxYear(2024).Contains(%s) = %v, want %v", tt.date, got, tt.expected)
		}
	}
}

func TestParseTaxYear(t *testing.T) {
	tests := []struct {
		input string
		want  TaxYear
		err   bool
	}{
		{"2024", TaxYear(2024), false},
		{"2008", TaxYear(2008), false}, // first year the rules apply
		{"2007", 0, true},              // before the rules existed
		{"9999", 0, true},              // far future
		{"twenty", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTaxYear(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseTaxYear(%q) error = %v, want error %v", tt.input, err, tt.err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParseTaxYear(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
