package eveapi

import (
	"fmt"
	"pew/lib/xmltree"
	"time"
)

// TimeLayout is the layout of the envelope's currentTime and cachedUntil
// fields, always UTC.
const TimeLayout = "2006-01-02 15:04:05"

// Envelope is a decoded response document. Exactly one of Result and Failure
// is meaningful: Failure is set when the server reported an error.
type Envelope struct {
	CurrentTime string
	CachedUntil string

	Result  xmltree.Value
	Failure *APIError
}

// Err returns Failure as an error, or nil on success.
func (e Envelope) Err() error {
	if e.Failure != nil {
		return e.Failure
	}
	return nil
}

// CachedUntilTime parses CachedUntil. The client itself never caches.
func (e Envelope) CachedUntilTime() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, e.CachedUntil, time.UTC)
}

func (e Envelope) CurrentTimeTime() (time.Time, error) {
	return time.ParseInLocation(TimeLayout, e.CurrentTime, time.UTC)
}

// DecodeEnvelope decodes a response body into an Envelope. An error is only
// returned when the body can't be decoded or isn't an envelope, server
// reported errors end up in Envelope.Failure.
func DecodeEnvelope(body []byte) (Envelope, error) {
	root, err := xmltree.DecodeBytes(body)
	if err != nil {
		return Envelope{}, fmt.Errorf("decode response: %w", err)
	}
	node, ok := root.Node()
	if !ok {
		return Envelope{}, fmt.Errorf("%w: root element is a %s", ErrMalformedEnvelope, root.Kind())
	}

	env := Envelope{
		CurrentTime: fieldText(node, "currentTime"),
		CachedUntil: fieldText(node, "cachedUntil"),
	}

	if errValue, ok := node.Get("error"); ok {
		failure, err := decodeFailure(errValue)
		if err != nil {
			return Envelope{}, err
		}
		env.Failure = failure
		return env, nil
	}

	result, ok := node.Get("result")
	if !ok {
		return Envelope{}, fmt.Errorf("%w: neither result nor error present", ErrMalformedEnvelope)
	}
	env.Result = result
	return env, nil
}

// HandleResult returns the payload of a successful response, or the server
// reported error as an *APIError.
func HandleResult(body []byte) (xmltree.Value, error) {
	env, err := DecodeEnvelope(body)
	if err != nil {
		return xmltree.Value{}, err
	}
	if err := env.Err(); err != nil {
		return xmltree.Value{}, err
	}
	return env.Result, nil
}

func decodeFailure(v xmltree.Value) (*APIError, error) {
	node, ok := v.Node()
	if !ok {
		return nil, fmt.Errorf("%w: error element has no code", ErrMalformedEnvelope)
	}
	codeValue, ok := node.Get("code")
	if !ok {
		return nil, fmt.Errorf("%w: error element has no code", ErrMalformedEnvelope)
	}
	code, ok := codeValue.Int()
	if !ok {
		return nil, fmt.Errorf("%w: error code %q is not an integer", ErrMalformedEnvelope, codeValue.String())
	}

	message, _ := node.Text()
	return &APIError{Code: int(code), Message: message}, nil
}

func fieldText(node *xmltree.Node, name string) string {
	v, ok := node.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}
