package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts untrusted text into a non-negative decimal. Dollar
// signs, commas, and surrounding whitespace are tolerated; anything that
// still fails to parse, and any negative value, becomes zero. This is the
// only place raw strings are turned into money: the calculation engines
// never see unvalidated input.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// ParseCount converts untrusted text into a non-negative integer count,
// with the same fallback-to-zero policy as ParseAmount.
func ParseCount(s string) int {
	d := ParseAmount(s)
	return int(d.IntPart())
}
