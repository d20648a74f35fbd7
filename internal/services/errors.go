package services

import "fmt"

// ErrorKind classifies relay failures so callers and tests can tell them apart.
// The HTTP mapping stays coarse (validation -> 400, everything else -> 500),
// but the internal representation keeps the variants distinct.
type ErrorKind int

const (
	// ErrorKindValidation means the inbound request failed presence validation.
	ErrorKindValidation ErrorKind = iota
	// ErrorKindInvocation means the call to the upstream compute function failed.
	ErrorKindInvocation
	// ErrorKindDecode means the upstream function returned output that is not valid JSON.
	ErrorKindDecode
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindValidation:
		return "validation"
	case ErrorKindInvocation:
		return "invocation"
	case ErrorKindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// RelayError is a relay failure with its cause classified
type RelayError struct {
	Kind ErrorKind
	Err  error
}

func (e *RelayError) Error() string {
	return e.Err.Error()
}

func (e *RelayError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation-kind relay error
func NewValidationError(msg string) *RelayError {
	return &RelayError{Kind: ErrorKindValidation, Err: fmt.Errorf("%s", msg)}
}

// NewInvocationError wraps a failure from the compute-invocation service
func NewInvocationError(err error) *RelayError {
	return &RelayError{Kind: ErrorKindInvocation, Err: err}
}

// NewDecodeError wraps a failure decoding the upstream function's output
func NewDecodeError(err error) *RelayError {
	return &RelayError{Kind: ErrorKindDecode, Err: err}
}

// IsValidationError checks if an error is a validation-kind relay error
func IsValidationError(err error) bool {
	return errKind(err) == ErrorKindValidation
}

// IsInvocationError checks if an error is an invocation-kind relay error
func IsInvocationError(err error) bool {
	return errKind(err) == ErrorKindInvocation
}

// IsDecodeError checks if an error is a decode-kind relay error
func IsDecodeError(err error) bool {
	return errKind(err) == ErrorKindDecode
}

func errKind(err error) ErrorKind {
	if relayErr, ok := err.(*RelayError); ok {
		return relayErr.Kind
	}
	return ErrorKind(-1)
}
