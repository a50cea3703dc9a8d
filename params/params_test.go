package params_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/binomial"
	"github.com/katalvlaran/binomial/params"
	"github.com/katalvlaran/binomial/pmf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParse_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		nText, pText string
		wantN        int
		wantP        string
	}{
		{"plain", "16", "0.5", 16, "0.5"},
		{"whitespace", " 7 ", "\t0.25\n", 7, "0.25"},
		{"integral decimal n", "16.0", "1", 16, "1"},
		{"exponent n", "1e2", "0", 100, "0"},
		{"bounds", "512", "1.000", 512, "1"},
		{"zero", "0", "0", 0, "0"},
		{"long p", "3", "0.123456789012345678", 3, "0.123456789012345678"},
		{"p at digit cap", "3", "0.1234567890123456789012345678901234", 3, "0.1234567890123456789012345678901234"},
		{"trailing zeros past cap", "3", "0.50000000000000000000000000000000000000000000", 3, "0.5"},
		{"zero with exponent", "512", "0e-5000000", 512, "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := params.Parse(tc.nText, tc.pText)
			require.NoError(t, err)
			require.Equal(t, tc.wantN, got.N)
			require.Truef(t, got.P.Equal(decimal.RequireFromString(tc.wantP)), "p=%s", got.P)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		nText, pText string
		want         error
	}{
		{"empty n", "", "0.5", params.ErrInvalidTrials},
		{"word n", "abc", "0.5", params.ErrInvalidTrials},
		{"fractional n", "1.5", "0.5", params.ErrInvalidTrials},
		{"negative n", "-1", "0.5", params.ErrInvalidTrials},
		{"n above bound", "513", "0.5", params.ErrInvalidTrials},
		{"huge n", "1e40", "0.5", params.ErrInvalidTrials},
		{"empty p", "5", " ", params.ErrInvalidProbability},
		{"word p", "5", "half", params.ErrInvalidProbability},
		{"negative p", "5", "-0.1", params.ErrInvalidProbability},
		{"p above one", "5", "1.01", params.ErrInvalidProbability},
		{"p past digit cap", "5", "0.12345678901234567890123456789012345", params.ErrInvalidProbability},
		{"p below exponent range", "512", "1e-5000000", params.ErrInvalidProbability},
		{"p above one by exponent", "5", "1e5000", params.ErrInvalidProbability},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := params.Parse(tc.nText, tc.pText)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, binomial.ErrInvalidArgument)
		})
	}
}

func TestParse_MaxTrialsOption(t *testing.T) {
	t.Parallel()

	got, err := params.Parse("1000", "0.5", pmf.WithMaxTrials(1000))
	require.NoError(t, err)
	require.Equal(t, 1000, got.N)

	_, err = params.Parse("11", "0.5", pmf.WithMaxTrials(10))
	require.ErrorIs(t, err, params.ErrInvalidTrials)
}

func TestParams_ValidateEqualString(t *testing.T) {
	t.Parallel()

	d := params.Default()
	require.NoError(t, d.Validate())
	require.Equal(t, "n=16 p=0.5", d.String())
	require.True(t, d.Equal(params.Params{N: 16, P: decimal.RequireFromString("0.50")}))
	require.False(t, d.Equal(params.Params{N: 17, P: d.P}))

	bad := params.Params{N: -2, P: d.P}
	require.ErrorIs(t, bad.Validate(), params.ErrInvalidTrials)
	bad = params.Params{N: 2, P: decimal.NewFromInt(2)}
	require.ErrorIs(t, bad.Validate(), params.ErrInvalidProbability)
	require.ErrorIs(t, bad.Validate(), binomial.ErrInvalidArgument)

	require.Nil(t, errors.Unwrap(params.ErrInvalidTrials))
	require.Nil(t, errors.Unwrap(params.ErrInvalidProbability))
}

// TestParse_ProbabilityFeedsEngine covers the path from text to Compute for
// inputs whose written form is much longer than their value.
func TestParse_ProbabilityFeedsEngine(t *testing.T) {
	t.Parallel()

	got, err := params.Parse("512", "0.2500000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	require.Equal(t, int32(-2), got.P.Exponent())

	got, err = params.Parse("512", "0e-5000000")
	require.NoError(t, err)
	require.NotPanics(t, func() {
		values, err := pmf.Compute(got.N, got.P)
		require.NoError(t, err)
		require.Len(t, values, 513)
	})

	_, err = params.Parse("512", "1e-5000000")
	require.ErrorIs(t, err, params.ErrInvalidProbability)

	long := params.Params{N: 2, P: decimal.RequireFromString("1e-35")}
	require.ErrorIs(t, long.Validate(), params.ErrInvalidProbability)
}
