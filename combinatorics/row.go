// SPDX-License-Identifier: MIT

package combinatorics

import "math/big"

// Row returns the full coefficient row [C(n,0), …, C(n,n)] of length n+1.
// It is Combinations(n, n).
//
// Errors:
//   - ErrNegative if n < 0.
func Row(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, combinatoricsErrorf(opRow, n, n, ErrNegative)
	}

	return combinations(n, n), nil
}

// Combinations returns the prefix [C(n,0), …, C(n,k)] of row n, length k+1.
//
// Implementation:
//   - Stage 1: validate 0 ≤ k ≤ n.
//   - Stage 2: answer the base rows n=0 and n=1 directly.
//   - Stage 3: fill k+1 ones and advance rows 2..n in place.
//
// Errors:
//   - ErrNegative if n < 0 or k < 0.
//   - ErrKExceedsN if k > n.
//
// The returned integers are freshly allocated; callers own them.
func Combinations(n, k int) ([]*big.Int, error) {
	if n < 0 || k < 0 {
		return nil, combinatoricsErrorf(opCombinations, n, k, ErrNegative)
	}
	if k > n {
		return nil, combinatoricsErrorf(opCombinations, n, k, ErrKExceedsN)
	}

	return combinations(n, k), nil
}

// combinations assumes 0 ≤ k ≤ n.
func combinations(n, k int) []*big.Int {
	if n == 0 || (n == 1 && k == 0) {
		return []*big.Int{big.NewInt(1)}
	}
	if n == 1 && k == 1 {
		return []*big.Int{big.NewInt(1), big.NewInt(1)}
	}

	out := make([]*big.Int, k+1)
	for j := range out {
		out[j] = big.NewInt(1)
	}

	// Row i only touches cells 1..min(i-1, k); cell i keeps its initial 1,
	// which is C(i, i).
	for i := 2; i <= n; i++ {
		// previous holds the pre-update value of out[j-1]. It starts as a copy
		// of out[0] so that the slot itself is never mutated.
		previous := new(big.Int).Set(out[0])
		for j := 1; j < i && j <= k; j++ {
			current := out[j]
			// previous is detached from the buffer, so it can carry the sum.
			out[j] = previous.Add(previous, current)
			previous = current
		}
	}

	return out
}
