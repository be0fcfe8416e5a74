package funds

import (
	"github.com/shopspring/decimal"
)

// Allocation shares are computed by division over daily saving rates. The
// default division precision of 16 digits accumulates enough drift over a
// deep tree to break conservation to the last cent, so it is raised once,
// process-wide, before any amount is computed.
func init() {
	decimal.DivisionPrecision = 100
}

// ParseAmount converts a decimal string to an amount.
func ParseAmount(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &ParseError{Kind: "amount", Value: value}
	}
	return d, nil
}

// MustParseAmount converts a decimal string to an amount and panics on error.
// Use only in tests or when you're certain the value is valid.
func MustParseAmount(value string) decimal.Decimal {
	d, err := ParseAmount(value)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatAmount renders an amount with two fractional places, rounded
// half-up. Amounts in this model are non-negative, so decimal's
// round-half-away-from-zero coincides with round-half-up.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatRate renders a daily saving rate with four fractional places.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(4)
}
