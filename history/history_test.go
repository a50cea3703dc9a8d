package history_test

import (
	"testing"

	"github.com/katalvlaran/binomial/history"
	"github.com/katalvlaran/binomial/params"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(n int, p string) params.Params {
	return params.Params{N: n, P: decimal.RequireFromString(p)}
}

// strs renders entries for compact comparisons.
func strs(entries []params.Params) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

func TestHistory_SetPushesCurrent(t *testing.T) {
	t.Parallel()

	h := history.New(params.Default())
	require.Equal(t, 0, h.Len())

	require.True(t, h.Set(mk(10, "0.3")))
	require.True(t, h.Set(mk(20, "0.7")))

	assert.Equal(t, "n=20 p=0.7", h.Current().String())
	assert.Equal(t, []string{"n=10 p=0.3", "n=16 p=0.5"}, strs(h.Entries()))
}

func TestHistory_SetSameIsNoop(t *testing.T) {
	t.Parallel()

	h := history.New(mk(4, "0.5"))
	require.False(t, h.Set(mk(4, "0.50")), "numerically equal p must not create an entry")
	require.Equal(t, 0, h.Len())
}

func TestHistory_SelectRestoresAndRecords(t *testing.T) {
	t.Parallel()

	h := history.New(mk(1, "0.1"))
	h.Set(mk(2, "0.2"))
	h.Set(mk(3, "0.3"))
	// past: [2, 1], current: 3

	got, err := h.Select(1)
	require.NoError(t, err)
	assert.Equal(t, "n=1 p=0.1", got.String())
	assert.Equal(t, "n=1 p=0.1", h.Current().String())
	assert.Equal(t, []string{"n=3 p=0.3", "n=2 p=0.2", "n=1 p=0.1"}, strs(h.Entries()))
}

func TestHistory_SelectOutOfRange(t *testing.T) {
	t.Parallel()

	h := history.New(params.Default())
	_, err := h.Select(0)
	require.ErrorIs(t, err, history.ErrIndexOutOfRange)

	h.Set(mk(3, "0.3"))
	_, err = h.Select(-1)
	require.ErrorIs(t, err, history.ErrIndexOutOfRange)
	_, err = h.Select(1)
	require.ErrorIs(t, err, history.ErrIndexOutOfRange)
	require.Equal(t, "n=3 p=0.3", h.Current().String())
}

func TestHistory_EntriesIsCopy(t *testing.T) {
	t.Parallel()

	h := history.New(params.Default())
	h.Set(mk(3, "0.3"))
	entries := h.Entries()
	entries[0] = mk(99, "0.9")
	require.Equal(t, "n=16 p=0.5", h.Entries()[0].String())
}
