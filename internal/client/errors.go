package client

import (
	"errors"
	"fmt"
)

// ErrTransport matches every TransportError via errors.Is.
var ErrTransport = errors.New("employee api transport error")

// TransportError is the single failure kind of the employee API: network failures,
// non-2xx responses and malformed payloads all end up here.
type TransportError struct {
	Op         string // Op is the API operation: list, create, update, delete.
	Method     string
	URL        string
	StatusCode int // StatusCode is 0 when no response was received.
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s %s: status code %d: %v", e.Op, e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match so callers need not know the concrete type.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
