// Package core holds the domain types shared by every aggregation.
//
// This file contains amount parsing and rounding helpers. Amounts are carried
// as shopspring decimals end to end; conversion to float happens only at
// serialization boundaries.
package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceDateLayout is the accepted format for reference-date strings.
const ReferenceDateLayout = "2006-01-02"

// ParseAmount converts a decimal string to an amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign; the source data treats amounts as plain summable
// numbers, so negatives pass through untouched. Anything that does not parse
// as a number is ErrInvalidAmount: a malformed amount is a fatal input error,
// never a zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// RoundWhole rounds to the nearest integer, halves away from zero.
func RoundWhole(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ParseReferenceDate parses a reference date in ReferenceDateLayout.
// A malformed string is an error for the caller to surface; it is never
// silently replaced by the current time.
func ParseReferenceDate(s string) (time.Time, error) {
	return time.Parse(ReferenceDateLayout, strings.TrimSpace(s))
}
