// SPDX-License-Identifier: MIT
// Package pmf: sentinel error set.
// Sentinels are plain values. pmfErrorf attaches the call context and the
// binomial.ErrInvalidArgument classification at the point of failure, so
// callers match either the concrete sentinel or the classification.

package pmf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomial"
)

var (
	// ErrTrialsOutOfRange indicates n < 0 or n above the configured MaxTrials.
	ErrTrialsOutOfRange = errors.New("pmf: trial count out of range")

	// ErrProbabilityOutOfRange indicates p outside the closed interval [0,1],
	// or a p so small that p^n cannot be represented exactly.
	ErrProbabilityOutOfRange = errors.New("pmf: probability out of range")

	// ErrCoefficientRow indicates a coefficient row whose length is not n+1
	// or which holds nil or negative entries.
	ErrCoefficientRow = errors.New("pmf: malformed coefficient row")
)

// Operation names for error context.
const (
	opCompute  = "Compute"
	opEvaluate = "Evaluate"
)

// pmfErrorf returns an error "<op>: <message>: <sentinel>" that matches both
// err and binomial.ErrInvalidArgument under errors.Is.
func pmfErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), binomial.Invalid(err))
}
