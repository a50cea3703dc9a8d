// Package pmf evaluates the binomial probability mass function as exact
// decimal percentages.
//
// 🚀 What does it compute?
//
//	For every k in [0, n]:
//	  result[k] = round(C(n,k) · p^k · (1−p)^(n−k) · 100, Scale)
//	with Scale = 12 fractional digits by default.
//
// ✨ Numeric contract:
//   - Coefficients come from combinatorics.Row as unbounded integers.
//   - Powers, products and the ×100 scaling are exact decimal operations;
//     native float64 never touches a value.
//   - Each element is rounded exactly once, after its last multiplication,
//     using round-half-to-even (banker's rounding). Intermediates are never
//     rounded.
//   - 0^0 evaluates to 1, so p = 0 and p = 1 produce a single 100 at k = 0
//     and k = n respectively.
//
// ⚙️ Usage:
//
//	values, err := pmf.Compute(16, decimal.RequireFromString("0.5"))
//	if errors.Is(err, binomial.ErrInvalidArgument) {
//	    // n or p out of range
//	}
//
// Invariants callers may rely on:
//   - len(values) == n+1,
//   - every value lies in [0, 100],
//   - Sum(values) differs from 100 by at most (n+1)·10^−Scale, the value
//     of Tolerance(n+1, Scale).
//
// Performance:
//
//	Time:   O(n) exact multiplications plus O(n²) additions for the row
//	Memory: O(n) decimals whose digit count grows with n and the digits of p
package pmf
