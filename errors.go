package kwrepr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates an invalid option combination. It is raised
	// at attachment time, never at render time.
	ErrConfig = errors.New("kwrepr: invalid configuration")

	// ErrMissingAttribute indicates a resolved field could not be
	// obtained from the instance. Recoverable via Options.SkipMissing.
	ErrMissingAttribute = errors.New("kwrepr: missing attribute")

	// ErrFormat indicates a format specifier could not be applied to a
	// field's value. Never suppressed, even with SkipMissing.
	ErrFormat = errors.New("kwrepr: format failed")

	// ErrNotRegistered indicates Sprint was called for a type that was
	// never registered.
	ErrNotRegistered = errors.New("kwrepr: type not registered")
)

// MissingAttributeError reports a field that could not be resolved on
// an instance. It unwraps to ErrMissingAttribute.
type MissingAttributeError struct {
	Field string // Field name that failed to resolve
	Type  string // Type name of the instance
	Cause error  // Underlying error from a compute function, if any
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("kwrepr: missing attribute %q on %s: %v", e.Field, e.Type, e.Cause)
	}
	return fmt.Sprintf("kwrepr: missing attribute %q on %s", e.Field, e.Type)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *MissingAttributeError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrMissingAttribute
}

// Is reports whether target is ErrMissingAttribute.
func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// FormatError reports a format specifier that is incompatible with a
// field's value. It unwraps to ErrFormat.
type FormatError struct {
	Field string // Field the specifier was configured for
	Spec  string // The offending specifier string
	Cause error  // Underlying error from the specifier engine
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("kwrepr: format %q for field %q: %v", e.Spec, e.Field, e.Cause)
	}
	return fmt.Sprintf("kwrepr: format %q for field %q failed", e.Spec, e.Field)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *FormatError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
