package mc

import (
	"errors"
	"fmt"
)

// Configuration errors, raised at construction time before any sampling.
var (
	// ErrDimensionMismatch indicates drift, initial-value and Cholesky-factor
	// shapes that do not agree.
	ErrDimensionMismatch = errors.New("mc: dimension mismatch")

	// ErrBadWeights indicates basket weights that do not sum to one.
	ErrBadWeights = errors.New("mc: weights do not sum to 1")
)

// ConfigError wraps a configuration failure with the field that caused it.
type ConfigError struct {
	Field   string
	Detail  string
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s (%s)", e.Wrapped, e.Field, e.Detail)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
