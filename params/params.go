package params

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/binomial/pmf"
	"github.com/shopspring/decimal"
)

// Initial values shown before the user picks anything.
const (
	DefaultN = 16
	DefaultP = "0.5"
)

// MaxProbabilityDigits caps the fractional digits of p, trailing zeros
// excluded. The digits of p fix the size of every p^k and (1−p)^(n−k), so
// this bounds the engine's work the way MaxTrials does for n.
const MaxProbabilityDigits = 34

// Params is one validated engine input.
type Params struct {
	N int
	P decimal.Decimal
}

// Default returns n=16, p=0.5.
func Default() Params {
	return Params{N: DefaultN, P: decimal.RequireFromString(DefaultP)}
}

// Parse coerces text into Params and validates it. The trial bound comes from
// the same pmf options the engine is called with.
func Parse(nText, pText string, opts ...pmf.Option) (Params, error) {
	maxTrials := pmf.Resolve(opts...).MaxTrials()

	n, err := parseTrials(nText, maxTrials)
	if err != nil {
		return Params{}, err
	}
	p, err := parseProbability(pText)
	if err != nil {
		return Params{}, err
	}

	return Params{N: n, P: p}, nil
}

// Validate re-checks ranges on Params built without Parse.
func (p Params) Validate(opts ...pmf.Option) error {
	maxTrials := pmf.Resolve(opts...).MaxTrials()
	if p.N < 0 || p.N > maxTrials {
		return paramsErrorf(ErrInvalidTrials, "n=%d must be in [0,%d]", p.N, maxTrials)
	}
	if p.P.Sign() < 0 {
		return paramsErrorf(ErrInvalidProbability, "p=%s must be in [0,1]", p.P)
	}
	canonical := p.P.String()
	if fractionDigits(canonical) > MaxProbabilityDigits {
		return paramsErrorf(ErrInvalidProbability, "p has more than %d fractional digits", MaxProbabilityDigits)
	}
	if decimal.RequireFromString(canonical).GreaterThan(decimal.NewFromInt(1)) {
		return paramsErrorf(ErrInvalidProbability, "p=%s must be in [0,1]", p.P)
	}
	return nil
}

// Equal compares by value; p is compared numerically, so 0.5 equals 0.50.
func (p Params) Equal(other Params) bool {
	return p.N == other.N && p.P.Equal(other.P)
}

func (p Params) String() string {
	return fmt.Sprintf("n=%d p=%s", p.N, p.P)
}

func parseTrials(text string, maxTrials int) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, paramsErrorf(ErrInvalidTrials, "n is required")
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, paramsErrorf(ErrInvalidTrials, "n=%q is not a number", text)
	}
	if !d.IsInteger() {
		return 0, paramsErrorf(ErrInvalidTrials, "n=%q must be an integer", text)
	}
	if d.Sign() < 0 || d.GreaterThan(decimal.NewFromInt(int64(maxTrials))) {
		return 0, paramsErrorf(ErrInvalidTrials, "n=%q must be in [0,%d]", text, maxTrials)
	}
	return int(d.IntPart()), nil
}

func parseProbability(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Decimal{}, paramsErrorf(ErrInvalidProbability, "p is required")
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, paramsErrorf(ErrInvalidProbability, "p=%q is not a number", text)
	}
	if d.Sign() < 0 {
		return decimal.Decimal{}, paramsErrorf(ErrInvalidProbability, "p=%q must be in [0,1]", text)
	}
	// String drops trailing fractional zeros, so 0.500 and 0e-9 count as
	// 0.5 and 0 and are stored with the short exponent.
	canonical := d.String()
	if fractionDigits(canonical) > MaxProbabilityDigits {
		return decimal.Decimal{}, paramsErrorf(ErrInvalidProbability,
			"p=%q has more than %d fractional digits", text, MaxProbabilityDigits)
	}
	d = decimal.RequireFromString(canonical)
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, paramsErrorf(ErrInvalidProbability, "p=%q must be in [0,1]", text)
	}
	return d, nil
}

// fractionDigits counts the digits after the point of a plain decimal string.
func fractionDigits(s string) int {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
