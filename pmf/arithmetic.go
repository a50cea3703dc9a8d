// SPDX-License-Identifier: MIT

package pmf

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// powers returns [x^0, x^1, …, x^n] computed by exact repeated multiplication.
// The table starts at 1, so 0^0 = 1 without a special case.
func powers(x decimal.Decimal, n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n+1)
	out[0] = one
	for i := 1; i <= n; i++ {
		out[i] = out[i-1].Mul(x)
	}
	return out
}

// round applies the rounding policy: half-to-even at scale fractional digits.
// The result always carries exactly scale digits after the point.
func round(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.RoundBank(scale)
}

// Sum adds values exactly. Useful to check that a distribution totals 100
// within the rounding slack of its element count.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Tolerance is the largest distance Sum may be from 100 for a result of
// length terms rounded to scale digits: terms · 10^−scale.
func Tolerance(terms int, scale int32) decimal.Decimal {
	return decimal.New(int64(terms), -scale)
}

// canonical maps every zero to decimal.Zero. A zero such as 0e-9 keeps its
// exponent, which would otherwise grow through both power tables.
func canonical(p decimal.Decimal) decimal.Decimal {
	if p.IsZero() {
		return decimal.Zero
	}
	return p
}

// inUnitInterval reports 0 ≤ p ≤ 1.
func inUnitInterval(p decimal.Decimal) bool {
	return p.Sign() >= 0 && p.Cmp(one) <= 0
}
