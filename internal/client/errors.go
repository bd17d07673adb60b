package client

import "fmt"

// ErrorKind separates failures the server reported from failures reaching the
// server at all. The UI shows different diagnostic text for the two.
type ErrorKind int

const (
	// KindTransport covers network errors, timeouts and responses that are
	// not a well-formed envelope.
	KindTransport ErrorKind = iota
	// KindServer means the envelope arrived with success == false.
	KindServer
)

// Error is the failure result of a fetch.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// IsTransport reports whether err is a connection-level failure rather than
// a server-reported one.
func IsTransport(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindTransport
}
