package sdk

import (
	"errors"
	"fmt"
)

// Sentinel errors for common SDK error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidConfig indicates the provided configuration is invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDeviceIDUnavailable indicates no vendor identifier provider is
	// available, or the provider could not produce a value.
	ErrDeviceIDUnavailable = errors.New("device identifier unavailable")

	// ErrNoBuilders indicates the Fingerprinter was constructed with no
	// signal groups at all, so there is nothing to fingerprint.
	ErrNoBuilders = errors.New("no signal groups configured")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents errors related to configuration.
	KindConfiguration = "configuration"

	// KindUnavailable represents errors where a signal source cannot
	// produce a value.
	KindUnavailable = "unavailable"

	// KindHash represents errors raised by the injected hash function.
	KindHash = "hash"

	// KindSerialization represents errors rendering the flattened signal
	// map to JSON.
	KindSerialization = "serialization"
)

// Error is a structured error type that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Fingerprinter.DeviceID").
	Op string

	// Kind categorizes the error (e.g., KindHash, KindUnavailable).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sdk: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("sdk: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison by Kind (and
// Op, when set on the target) or by the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind != t.Kind {
			return false
		}
		if t.Op != "" && e.Op != t.Op {
			return false
		}
		return t.Kind != "" || t.Op != ""
	}
	return errors.Is(e.Err, target)
}
