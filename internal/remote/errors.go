package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is the error shape remote stores surface to the accessor. Code
// follows HTTP status semantics even for non-HTTP backends.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Code, e.Message)
}

// NewStatusError builds a StatusError for op with the given code.
func NewStatusError(op string, code int, message string) *StatusError {
	return &StatusError{Op: op, Code: code, Message: message}
}

// transientCodes is the fixed set of status codes worth retrying: rate
// limiting, server overload, and gateway failures.
var transientCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// IsTransient reports whether err is a remote failure expected to succeed on
// retry.
func IsTransient(err error) bool {
	var status *StatusError
	if !errors.As(err, &status) {
		return false
	}
	_, ok := transientCodes[status.Code]
	return ok
}

// IsNotFound reports whether err represents a missing item.
func IsNotFound(err error) bool {
	var status *StatusError
	return errors.As(err, &status) && status.Code == http.StatusNotFound
}

// IsPermissionDenied reports whether err represents an authorization failure.
func IsPermissionDenied(err error) bool {
	var status *StatusError
	return errors.As(err, &status) && status.Code == http.StatusForbidden
}
