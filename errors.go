package binomial

import "errors"

// ErrInvalidArgument classifies every input rejection across the module:
// negative or too large trial counts, probabilities outside [0,1], malformed
// coefficient rows and unparsable text. Package sentinels stay plain values;
// the classification is attached with Invalid where the error is returned,
// so errors.Is(err, ErrInvalidArgument) holds for every rejection.
//
// Input errors are caller bugs, not transient conditions: nothing retries.
var ErrInvalidArgument = errors.New("binomial: invalid argument")

// Invalid marks err as an invalid-argument failure. The result keeps err's
// message and matches both err and ErrInvalidArgument under errors.Is.
// Invalid(nil) returns nil.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &invalidError{err: err}
}

type invalidError struct{ err error }

func (e *invalidError) Error() string { return e.err.Error() }

func (e *invalidError) Unwrap() []error { return []error{e.err, ErrInvalidArgument} }
