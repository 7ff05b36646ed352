package gt06

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Session operations. Wrap with
// fmt.Errorf("...: %w", ...) for extra context; callers use errors.Is.
var (
	// ErrNotConnected is returned when an operation is attempted while
	// the session has no usable connection.
	ErrNotConnected = errors.New("gt06: not connected")

	// ErrAckTimeout is returned when SendAndWait exceeds its timeout
	// without a matching acknowledgement.
	ErrAckTimeout = errors.New("gt06: timed out waiting for server acknowledgement")

	// ErrConnectFailed is returned when Connect exhausts its retry
	// budget without establishing a connection.
	ErrConnectFailed = errors.New("gt06: failed to connect after exhausting retries")

	// ErrCallbackMissing indicates an inbound server command frame was
	// dropped because no callback was registered.
	ErrCallbackMissing = errors.New("gt06: inbound command frame dropped, no callback registered")

	// ErrAlreadyConnected is returned by Connect when the session is
	// already Connected or LoggedIn.
	ErrAlreadyConnected = errors.New("gt06: session is already connected")
)

// FieldError reports a value outside the protocol's valid range for a
// field (course, alarm state, IMEI, ...).
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("gt06: field %s: %s (value: %v)", e.Field, e.Reason, e.Value)
}

func newFieldError(field, reason string, value any) *FieldError {
	return &FieldError{Field: field, Value: value, Reason: reason}
}

// IsFieldError reports whether err is a *FieldError.
func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

// DecodeError wraps an inbound frame rejected by the codec (bad
// sentinel, length, or CRC). The reader logs and drops these; they are
// only surfaced to callers via Logger, never returned from a public
// operation.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("gt06: inbound frame rejected: %v", e.Err)
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(err error) *DecodeError {
	return &DecodeError{Err: err}
}

// IsAckTimeout reports whether err is (or wraps) ErrAckTimeout.
func IsAckTimeout(err error) bool { return errors.Is(err, ErrAckTimeout) }

// IsNotConnected reports whether err is (or wraps) ErrNotConnected.
func IsNotConnected(err error) bool { return errors.Is(err, ErrNotConnected) }

// IsConnectFailed reports whether err is (or wraps) ErrConnectFailed.
func IsConnectFailed(err error) bool { return errors.Is(err, ErrConnectFailed) }
