package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every configuration failure, including DivisionError.
	ErrInvalidConfig = errors.New("invalid stint config")
	// ErrDivision is matched by DivisionError only.
	ErrDivision = errors.New("division by non-positive value")
)

// ConfigError reports a non-physical input detected before any lap is simulated.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s, got %v", e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// DivisionError is the lap-time specific ConfigError: a zero, negative or NaN divisor.
type DivisionError struct {
	Field string
	Value float64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("%s must be positive to divide by it, got %v", e.Field, e.Value)
}

func (e *DivisionError) Unwrap() []error { return []error{ErrDivision, ErrInvalidConfig} }

// As lets errors.As treat a DivisionError as the *ConfigError it specializes.
func (e *DivisionError) As(target any) bool {
	ce, ok := target.(**ConfigError)
	if !ok {
		return false
	}
	*ce = &ConfigError{Field: e.Field, Value: e.Value, Reason: "must be positive"}
	return true
}
