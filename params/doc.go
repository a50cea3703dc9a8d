// Package params turns user-supplied text into validated (n, p) pairs for the
// engine.
//
// Validation is owned by the caller, not by the numeric core: pmf.Compute
// takes an int and a decimal and only re-checks ranges defensively. Parse is
// the single place where text is coerced, so front ends (CLI flags, YAML,
// environment, REPL input) all agree on what they accept:
//
//	n — base-10 integer in [0, MaxTrials]; "16", " 16 " and "16.0" are fine,
//	    "16.5" and "abc" are not.
//	p — decimal in [0, 1]; parsed exactly, never through float64.
package params
