// Package core provides the domain types of the finance app and the pure
// computations over them.
//
// This file contains the Amount type. Amounts travel through JSON as either
// numbers or numeric strings depending on which client wrote them, and
// malformed values must never break aggregation, so decoding is lenient:
// anything unparseable becomes zero.
package core

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal monetary amount.
type Amount struct {
	dec decimal.Decimal
}

// NewAmount builds an Amount from a float, for literals and user input.
func NewAmount(f float64) Amount {
	return Amount{dec: decimal.NewFromFloat(f)}
}

// ParseAmount parses a decimal string such as "45.5".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{dec: d}, nil
}

func (a Amount) Add(b Amount) Amount      { return Amount{dec: a.dec.Add(b.dec)} }
func (a Amount) Sub(b Amount) Amount      { return Amount{dec: a.dec.Sub(b.dec)} }
func (a Amount) Positive() bool           { return a.dec.IsPositive() }
func (a Amount) Negative() bool           { return a.dec.IsNegative() }
func (a Amount) IsZero() bool             { return a.dec.IsZero() }
func (a Amount) LessThan(b Amount) bool   { return a.dec.LessThan(b.dec) }
func (a Amount) Equal(b Amount) bool      { return a.dec.Equal(b.dec) }
func (a Amount) Float64() float64         { f, _ := a.dec.Float64(); return f }
func (a Amount) String() string           { return a.dec.String() }

// Format renders the amount with two decimal places, as the screens do.
func (a Amount) Format() string {
	return a.dec.StringFixed(2)
}

// MarshalJSON emits a plain JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.dec.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings; null, absent digits or
// any other malformed value coerce to zero rather than erroring, so a single
// bad record cannot poison balance computation.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		a.dec = decimal.Zero
		return nil
	}
	a.dec = d
	return nil
}
