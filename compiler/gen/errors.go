package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("metamodel: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("metamodel: code generation failed")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("metamodel: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("metamodel: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// GenError represents a failure while generating one entity.
type GenError struct {
	Entity string
	Cause  error
}

// Error implements the error interface.
func (e *GenError) Error() string {
	return fmt.Sprintf("metamodel: generate %s: %v", e.Entity, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenError.
func (e *GenError) Is(target error) bool {
	return target == ErrGenerationFailed
}
