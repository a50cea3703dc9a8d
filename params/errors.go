package params

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/binomial"
)

// Sentinel errors for params. paramsErrorf classifies both as
// binomial.ErrInvalidArgument when they are returned.
var (
	ErrInvalidTrials      = errors.New("params: invalid trial count")
	ErrInvalidProbability = errors.New("params: invalid probability")
)

func paramsErrorf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), binomial.Invalid(err))
}
