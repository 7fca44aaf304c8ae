package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the console. These provide consistent, checkable
// errors for the failure classes an operator can run into.
var (
	// ErrAuthenticationRequired is returned when a gated action runs without a
	// stored credential. No request reaches the network in that case.
	ErrAuthenticationRequired = errors.New("Authentication required")

	// ErrUserDeclined marks an explicit negative confirmation. It is a silent
	// no-op and is never shown to the operator.
	ErrUserDeclined = errors.New("user declined")

	// ErrUnknownAction is returned by the router for an unregistered action.
	ErrUnknownAction = errors.New("unknown action")
)

// ValidationError reports a blank required field caught before any request
// is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError wraps a network, read or decode failure. Error returns the
// underlying message unchanged so it can be shown verbatim.
type TransportError struct {
	// Op is the request that failed, e.g. "GET /users".
	Op  string
	Err error
}

// NewTransportError creates a TransportError for the given operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
