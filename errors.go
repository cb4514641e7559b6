package metamodel

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations. Losing a precedence
// race is not among them: the builders report that as a plain false,
// never as an error.
var (
	// ErrInvalidSchema is returned when a loaded schema definition is
	// malformed.
	ErrInvalidSchema = errors.New("metamodel: invalid schema")

	// ErrInvalidSnapshot is returned when a snapshot cannot be decoded
	// or replayed.
	ErrInvalidSnapshot = errors.New("metamodel: invalid snapshot")
)

// SchemaError represents a schema definition error.
type SchemaError struct {
	Entity   string // Entity type name
	Property string // Property name (if applicable)
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("metamodel: schema error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(entity, property, message string, cause error) *SchemaError {
	return &SchemaError{
		Entity:   entity,
		Property: property,
		Message:  message,
		Cause:    cause,
	}
}

// IsInvalidSchema returns true if the error is a SchemaError.
func IsInvalidSchema(err error) bool {
	if err == nil {
		return false
	}
	var e *SchemaError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSchema)
}

// SnapshotError represents a snapshot decode or replay error.
type SnapshotError struct {
	ID      string // Snapshot ID, if known
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("metamodel: snapshot %s: %s", e.ID, e.message())
	}
	return fmt.Sprintf("metamodel: snapshot: %s", e.message())
}

func (e *SnapshotError) message() string {
	if e.Cause != nil && e.Message != "" {
		return e.Message + ": " + e.Cause.Error()
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SnapshotError.
func (e *SnapshotError) Is(target error) bool {
	return target == ErrInvalidSnapshot
}

// NewSnapshotError creates a new SnapshotError.
func NewSnapshotError(id, message string, cause error) *SnapshotError {
	return &SnapshotError{ID: id, Message: message, Cause: cause}
}

// IsInvalidSnapshot returns true if the error is a SnapshotError.
func IsInvalidSnapshot(err error) bool {
	if err == nil {
		return false
	}
	var e *SnapshotError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidSnapshot)
}
