package pmf_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomial"
	"github.com/katalvlaran/binomial/pmf"
	"github.com/shopspring/decimal"
)

// ExampleCompute prints the distribution of heads in two fair coin flips.
func ExampleCompute() {
	values, err := pmf.Compute(2, decimal.RequireFromString("0.5"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k, v := range values {
		fmt.Printf("%d %s\n", k, v.StringFixed(pmf.DefaultScale))
	}
	// Output:
	// 0 25.000000000000
	// 1 50.000000000000
	// 2 25.000000000000
}

// ExampleCompute_invalid shows how callers classify rejected input.
func ExampleCompute_invalid() {
	_, err := pmf.Compute(5, decimal.RequireFromString("1.5"))
	fmt.Println(errors.Is(err, binomial.ErrInvalidArgument))
	fmt.Println(errors.Is(err, pmf.ErrProbabilityOutOfRange))
	// Output:
	// true
	// true
}

// ExampleSum checks the total of a skewed distribution.
func ExampleSum() {
	values, _ := pmf.Compute(4, decimal.RequireFromString("0.2"))
	fmt.Println(pmf.Sum(values).StringFixed(pmf.DefaultScale))
	// Output:
	// 100.000000000000
}
