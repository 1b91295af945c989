package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application failure. The kind travels on the error
// value itself so the HTTP layer never has to inspect message text to pick
// a status code.
type Kind int

const (
	// Unclassified covers anything the taxonomy does not name and maps
	// to a 500.
	Unclassified Kind = iota
	// InvalidRequest covers malformed or non-schema-conformant input.
	InvalidRequest
	// ResourceNotFound covers references to absent resources.
	ResourceNotFound
	// MethodNotAllowed covers unsupported HTTP methods on an endpoint.
	MethodNotAllowed
)

// HTTPStatus maps a kind to its HTTP status code. Unknown kinds fall
// through to 500.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidRequest:
		return http.StatusBadRequest
	case ResourceNotFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Error is an application failure tagged with a Kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unclassified error"
}

func (e *Error) Unwrap() error { return e.Err }

// NewInvalidRequest wraps a parse or validation failure, keeping its
// message for the client.
func NewInvalidRequest(err error) *Error {
	return &Error{Kind: InvalidRequest, Message: err.Error(), Err: err}
}

// NewNotFound reports an absent resource.
func NewNotFound(message string) *Error {
	return &Error{Kind: ResourceNotFound, Message: message}
}

// NewMethodNotAllowed reports an unsupported HTTP method.
func NewMethodNotAllowed(message string) *Error {
	return &Error{Kind: MethodNotAllowed, Message: message}
}

// KindOf extracts the kind from err. Plain errors without a tagged kind
// anywhere in their chain are Unclassified.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unclassified
}
