// SPDX-License-Identifier: MIT

package pmf

import (
	"math"
	"math/big"

	"github.com/katalvlaran/binomial/combinatorics"
	"github.com/shopspring/decimal"
)

// Compute returns the binomial probability mass function for n trials with
// success probability p as percentages: result[k] = P(X = k) · 100, rounded
// to the configured scale. It is the engine's single entry point.
//
// Implementation:
//   - Stage 1: validate n ∈ [0, MaxTrials] and p ∈ [0, 1].
//   - Stage 2: build the coefficient row C(n, 0..n).
//   - Stage 3: Evaluate every element.
//
// Errors (all match binomial.ErrInvalidArgument):
//   - ErrTrialsOutOfRange for n < 0 or n > MaxTrials.
//   - ErrProbabilityOutOfRange for p < 0 or p > 1, or when p has so many
//     fractional digits that p^n or (1−p)^n leaves the decimal exponent range.
//
// No partial results: on error the slice is nil.
func Compute(n int, p decimal.Decimal, opts ...Option) ([]decimal.Decimal, error) {
	o := gatherOptions(opts...)
	p = canonical(p)
	if err := validateInput(opCompute, n, p, o); err != nil {
		return nil, err
	}

	coefficients, err := combinatorics.Row(n)
	if err != nil {
		return nil, err
	}

	return evaluate(n, p, coefficients, o), nil
}

// Evaluate combines a precomputed coefficient row with p^k · (1−p)^(n−k) and
// scales each element to a percentage. coefficients must be C(n, 0..n).
//
// Callers are expected to pass validated input; Evaluate still rejects
// out-of-range n or p and a row of the wrong shape instead of producing
// meaningless numbers.
//
// Errors (all match binomial.ErrInvalidArgument):
//   - ErrTrialsOutOfRange, ErrProbabilityOutOfRange as in Compute.
//   - ErrCoefficientRow if len(coefficients) != n+1 or an entry is nil or negative.
func Evaluate(n int, p decimal.Decimal, coefficients []*big.Int, opts ...Option) ([]decimal.Decimal, error) {
	o := gatherOptions(opts...)
	p = canonical(p)
	if err := validateInput(opEvaluate, n, p, o); err != nil {
		return nil, err
	}
	if len(coefficients) != n+1 {
		return nil, pmfErrorf(opEvaluate, ErrCoefficientRow, "got %d coefficients for n=%d", len(coefficients), n)
	}
	for k, c := range coefficients {
		if c == nil || c.Sign() < 0 {
			return nil, pmfErrorf(opEvaluate, ErrCoefficientRow, "coefficient %d is %v", k, c)
		}
	}

	return evaluate(n, p, coefficients, o), nil
}

// evaluate assumes validated input.
func evaluate(n int, p decimal.Decimal, coefficients []*big.Int, o Options) []decimal.Decimal {
	successes := powers(p, n)
	failures := powers(one.Sub(p), n)

	out := make([]decimal.Decimal, n+1)
	for k := 0; k <= n; k++ {
		term := decimal.NewFromBigInt(coefficients[k], 0).
			Mul(successes[k]).
			Mul(failures[n-k]).
			Mul(hundred)
		out[k] = round(term, o.scale)
	}

	return out
}

// validateInput enforces n ∈ [0, maxTrials], an exponent range that keeps
// every product representable, and p ∈ [0, 1], in that order.
//
// Every term C(n,k)·p^k·(1−p)^(n−k) carries exponent k·e + (n−k)·e' where
// e' = min(e, 0) is the exponent of 1−p, so n·e bounds them all.
func validateInput(op string, n int, p decimal.Decimal, o Options) error {
	if n < 0 || n > o.maxTrials {
		return pmfErrorf(op, ErrTrialsOutOfRange, "n=%d, want [0,%d]", n, o.maxTrials)
	}
	if e := int64(p.Exponent()); e < 0 && e*int64(n) < math.MinInt32 {
		return pmfErrorf(op, ErrProbabilityOutOfRange, "p with exponent %d overflows at n=%d", e, n)
	}
	if !inUnitInterval(p) {
		return pmfErrorf(op, ErrProbabilityOutOfRange, "p=%s, want [0,1]", p)
	}
	return nil
}
