package history

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomial/params"
)

// ErrIndexOutOfRange indicates Select was given an index outside the past list.
var ErrIndexOutOfRange = errors.New("history: index out of range")

// History is the current parameter choice plus every previous one, most
// recent first.
type History struct {
	current params.Params
	past    []params.Params
}

// New starts a history at initial with no past entries.
func New(initial params.Params) *History {
	return &History{current: initial}
}

// Current returns the active parameters.
func (h *History) Current() params.Params {
	return h.current
}

// Entries returns a copy of the past entries, most recent first.
func (h *History) Entries() []params.Params {
	out := make([]params.Params, len(h.past))
	copy(out, h.past)
	return out
}

// Len reports the number of past entries.
func (h *History) Len() int {
	return len(h.past)
}

// Set makes p current and reports whether anything changed.
func (h *History) Set(p params.Params) bool {
	if h.current.Equal(p) {
		return false
	}
	h.past = append([]params.Params{h.current}, h.past...)
	h.current = p
	return true
}

// Select restores past entry i and returns it.
func (h *History) Select(i int) (params.Params, error) {
	if i < 0 || i >= len(h.past) {
		return params.Params{}, fmt.Errorf("select %d of %d: %w", i, len(h.past), ErrIndexOutOfRange)
	}
	p := h.past[i]
	h.Set(p)
	return p, nil
}
