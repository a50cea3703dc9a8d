// Package binomial computes the binomial probability mass function with
// arbitrary-precision arithmetic end to end.
//
// What is in the box?
//
//	For n independent trials with success probability p, the engine returns
//	P(X = k) * 100 for every k in [0, n], rounded to 12 fractional digits.
//	Coefficients are unbounded integers and every product is an exact
//	decimal, so n = 512 (coefficients above 150 digits) is as precise as n = 2.
//
// Under the hood the work is split across a handful of subpackages:
//
//	combinatorics/ — the row C(n, 0..n), built in place with Pascal's recurrence
//	pmf/           — the probability evaluator and the Compute entry point
//	params/        — caller-side parsing and validation of (n, p) text input
//	history/       — navigable record of past (n, p) choices with select-to-restore
//	export/        — CSV table, plotting series and text table renderers
//	cmd/binomial   — command-line front end (one-shot and interactive)
//
// Quick example:
//
//	values, err := pmf.Compute(2, decimal.RequireFromString("0.5"))
//	// values = [25.000000000000 50.000000000000 25.000000000000]
//
// Every validation failure in the module matches ErrInvalidArgument under
// errors.Is; the concrete sentinels live next to the code that returns them.
//
//	go get github.com/katalvlaran/binomial
package binomial
