package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies gateway errors.
type Kind int

const (
	// KindConfiguration indicates a required field is missing or unresolvable.
	// Always raised during resolution, never deferred to call time.
	KindConfiguration Kind = iota
	// KindSerialization indicates runtime data does not match the declared
	// request model. Raised during prepare.
	KindSerialization
	// KindHTTP indicates a response status >= 400. Raised during ingress,
	// before any decoding is attempted.
	KindHTTP
	// KindDecoding indicates a response body that cannot be decoded into the
	// declared response model. Raised after the status check passes.
	KindDecoding
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindSerialization:
		return "serialization"
	case KindHTTP:
		return "http"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// Error is a structured gateway error with classification.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// StatusCode is the HTTP status code (KindHTTP only).
	StatusCode int
	// Reason is the HTTP status line reason (KindHTTP only).
	Reason string
	// Message describes the error.
	Message string
	// Body is the raw response body (KindHTTP only, may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("gateway: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a configuration error.
func NewConfigurationError(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// NewSerializationError creates a serialization error.
func NewSerializationError(err error) *Error {
	return &Error{Kind: KindSerialization, Message: err.Error(), Err: err}
}

// NewHTTPError creates an HTTP status error carrying code and reason.
func NewHTTPError(statusCode int, reason string, body []byte) *Error {
	return &Error{
		Kind:       KindHTTP,
		StatusCode: statusCode,
		Reason:     reason,
		Message:    reason,
		Body:       body,
	}
}

// NewDecodingError creates a decoding error.
func NewDecodingError(err error) *Error {
	return &Error{Kind: KindDecoding, Message: err.Error(), Err: err}
}

// IsConfiguration checks if an error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfiguration
}

// IsSerialization checks if an error is a serialization error.
func IsSerialization(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindSerialization
}

// IsHTTP checks if an error is an HTTP status error.
func IsHTTP(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindHTTP
}

// IsDecoding checks if an error is a decoding error.
func IsDecoding(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindDecoding
}

// AsHTTP extracts the structured error when err is an HTTP status error,
// giving access to the status code, reason and raw body.
func AsHTTP(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindHTTP {
		return e, true
	}
	return nil, false
}
