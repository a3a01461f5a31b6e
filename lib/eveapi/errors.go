package eveapi

import (
	"errors"
	"fmt"
	"pew/lib/restyutil"
)

// ErrMalformedEnvelope is returned when a response decodes but doesn't have
// the shape of an API envelope.
var ErrMalformedEnvelope = errors.New("malformed api envelope")

// ConnectionError means the request never produced a usable response: the
// network call failed, the context ended or the server answered with a
// non-success status.
type ConnectionError struct {
	URL string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("url: %s || error: %v", restyutil.RedactURL(e.URL), e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError is an error reported by the server inside the response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}
