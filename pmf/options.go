// SPDX-License-Identifier: MIT
// Package pmf: functional configuration for the evaluator.
//
// Defaults are the single source of truth for zero-option calls:
//   - DefaultMaxTrials = 512 (guard against unbounded work),
//   - DefaultScale     = 12  (fractional digits kept after rounding).
//
// WithX constructors panic on nonsensical values (programmer error); the
// evaluation paths themselves never panic.

package pmf

const (
	// DefaultMaxTrials is the largest n accepted when WithMaxTrials is not given.
	DefaultMaxTrials = 512

	// DefaultScale is the number of fractional digits every result is rounded to.
	DefaultScale int32 = 12
)

const (
	panicMaxTrialsInvalid = "pmf: WithMaxTrials: bound must be non-negative"
	panicScaleInvalid     = "pmf: WithScale: scale must be non-negative"
)

// Option mutates Options. Later options override earlier ones.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; public
// entry points accept ...Option and resolve them through gatherOptions.
type Options struct {
	maxTrials int   // >= 0; DefaultMaxTrials
	scale     int32 // >= 0; DefaultScale
}

// WithMaxTrials sets the inclusive upper bound for n.
// Panics if bound < 0.
func WithMaxTrials(bound int) Option {
	if bound < 0 {
		panic(panicMaxTrialsInvalid)
	}
	return func(o *Options) {
		o.maxTrials = bound
	}
}

// WithScale sets how many fractional digits results are rounded to.
// Panics if scale < 0.
func WithScale(scale int32) Option {
	if scale < 0 {
		panic(panicScaleInvalid)
	}
	return func(o *Options) {
		o.scale = scale
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		maxTrials: DefaultMaxTrials,
		scale:     DefaultScale,
	}
}

// MaxTrials reports the resolved upper bound for n.
func (o Options) MaxTrials() int { return o.maxTrials }

// Scale reports the resolved number of fractional digits.
func (o Options) Scale() int32 { return o.scale }

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Resolve exposes gatherOptions to callers that need the effective values,
// for example to render exports with the same scale the engine rounded to.
func Resolve(opts ...Option) Options {
	return gatherOptions(opts...)
}
