// SPDX-License-Identifier: MIT

package combinatorics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomial"
)

// Sentinel errors for the combinatorics package. combinatoricsErrorf
// classifies them as binomial.ErrInvalidArgument when they are returned, so
// callers may match either the concrete sentinel or the shared classification.
var (
	// ErrNegative indicates n or k is below zero.
	ErrNegative = errors.New("combinatorics: n and k must be non-negative")

	// ErrKExceedsN indicates a prefix longer than the row was requested.
	ErrKExceedsN = errors.New("combinatorics: k must be less than or equal to n")
)

// Operation names used as error context.
const (
	opRow          = "Row"
	opCombinations = "Combinations"
)

// combinatoricsErrorf attaches the operation and the offending arguments to a
// sentinel without hiding it from errors.Is.
func combinatoricsErrorf(op string, n, k int, err error) error {
	return fmt.Errorf("%s(n=%d, k=%d): %w", op, n, k, binomial.Invalid(err))
}
