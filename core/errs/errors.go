package errs

import (
	"errors"
	"fmt"
)

// Kind categorises a failure without exposing provider-specific codes.
// Every storage provider maps its SDK errors to one of these kinds.
type Kind int

const (
	KindUnknown               Kind = iota
	KindConfiguration              // missing or mismatched settings
	KindUnavailableDependency      // SDK client could not be created
	KindConnectionFailed           // cannot reach the backing store
	KindPermissionDenied           // access denied / auth failure
	KindUnsupportedOperation       // capability not offered by the client
	KindNotHandled                 // client declines, caller falls back
	KindNotFound                   // no object, no bucket
	KindInvalidInput               // bad arguments from the caller
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUnavailableDependency:
		return "unavailable_dependency"
	case KindConnectionFailed:
		return "connection_failed"
	case KindPermissionDenied:
		return "permission_denied"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	case KindNotHandled:
		return "not_handled"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the error type shared by the client contract and its providers.
type Error struct {
	Kind    Kind
	Message string
	Cause   error // underlying SDK error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsUnsupported reports whether err was raised for an operation the client
// does not implement.
func IsUnsupported(err error) bool {
	return KindOf(err) == KindUnsupportedOperation
}

// IsNotHandled reports whether the client declined to serve a request and the
// caller should use its generic path instead.
func IsNotHandled(err error) bool {
	return KindOf(err) == KindNotHandled
}

// IsPermissionDenied reports whether err is an access control failure.
func IsPermissionDenied(err error) bool {
	return KindOf(err) == KindPermissionDenied
}

// IsNotFound reports whether err represents a missing object or bucket.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}

// IsUnavailable reports whether the SDK client behind the call was never built.
func IsUnavailable(err error) bool {
	return KindOf(err) == KindUnavailableDependency
}

// IsConfiguration reports whether err is a configuration problem.
func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}

// IsConnectionFailed reports whether err is a connectivity failure.
func IsConnectionFailed(err error) bool {
	return KindOf(err) == KindConnectionFailed
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
