package core

import (
	"errors"
	"fmt"
)

// Kind identifies the stage of a request that produced an error.
type Kind int

// Error kinds, in the order a request can fail.
const (
	// KindUnknown indicates an error not produced by this module.
	KindUnknown Kind = iota
	// KindQuerySerialization indicates a structured parameter could not be encoded.
	KindQuerySerialization
	// KindTransport indicates a connect, timeout or network failure.
	KindTransport
	// KindHeaderParse indicates a present telemetry header was not an unsigned 16-bit integer.
	KindHeaderParse
	// KindBodyParse indicates the body matched neither the success nor the error schema.
	KindBodyParse
	// KindRemote indicates the exchange answered with a structured error.
	KindRemote
)

// String returns the string representation of the error kind.
func (k Kind) String() string {
	return [...]string{
		"UNKNOWN",
		"QUERY_SERIALIZATION",
		"TRANSPORT",
		"HEADER_PARSE",
		"BODY_PARSE",
		"REMOTE",
	}[k]
}

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials is returned when a keyed or signed call has no API credentials.
	ErrNoCredentials = errors.New("no credentials configured")
)

// QuerySerializationError is returned when a structured query parameter cannot be
// encoded. It is always raised before any network I/O.
type QuerySerializationError struct {
	// Field is the offending member name, empty when the whole value was rejected.
	Field string
	// Reason describes why the value could not be encoded.
	Reason string
	// Err is the underlying encoder error, if any.
	Err error
}

func (e *QuerySerializationError) Error() string {
	msg := "serialize query"
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *QuerySerializationError) Unwrap() error { return e.Err }

// TransportError wraps a failure of the underlying HTTP client.
type TransportError struct {
	Method string
	// Path is the request path without the query string, which carries the signature.
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HeaderParseError is returned when a rate-limit telemetry header is present but
// does not hold an unsigned 16-bit integer. The response body is not inspected.
type HeaderParseError struct {
	Header string
	Value  string
	Err    error
}

func (e *HeaderParseError) Error() string {
	return fmt.Sprintf("parse header %s=%q: %v", e.Header, e.Value, e.Err)
}

func (e *HeaderParseError) Unwrap() error { return e.Err }

// BodyParseError is returned when the response body decodes as neither the
// success nor the error schema.
type BodyParseError struct {
	StatusCode int
	Body       []byte
	// SuccessErr is the diagnostic from the success schema attempt.
	SuccessErr error
	// ErrorErr is the diagnostic from the error schema attempt.
	ErrorErr error
}

func (e *BodyParseError) Error() string {
	return fmt.Sprintf("parse body (status %d): success schema: %v; error schema: %v",
		e.StatusCode, e.SuccessErr, e.ErrorErr)
}

func (e *BodyParseError) Unwrap() []error {
	var errs []error
	if e.SuccessErr != nil {
		errs = append(errs, e.SuccessErr)
	}
	if e.ErrorErr != nil {
		errs = append(errs, e.ErrorErr)
	}
	return errs
}

// Coded is implemented by error payloads carrying an exchange error code.
type Coded interface {
	ErrorCode() int64
	ErrorMessage() string
}

// RemoteError carries a structured error decoded from the response body together
// with the HTTP status and the rate-limit telemetry of that response.
// It is a normal outcome the caller is expected to handle.
type RemoteError[E any] struct {
	StatusCode int
	Telemetry  Telemetry
	Payload    E
}

func (e *RemoteError[E]) Error() string {
	if code, msg, ok := e.code(); ok {
		return fmt.Sprintf("remote error (%d/%d): %s", e.StatusCode, code, msg)
	}
	return fmt.Sprintf("remote error (%d)", e.StatusCode)
}

func (e *RemoteError[E]) code() (int64, string, bool) {
	if c, ok := any(e.Payload).(Coded); ok {
		return c.ErrorCode(), c.ErrorMessage(), true
	}
	if c, ok := any(&e.Payload).(Coded); ok {
		return c.ErrorCode(), c.ErrorMessage(), true
	}
	return 0, "", false
}

func (e *RemoteError[E]) remoteStatus() int { return e.StatusCode }

func (e *RemoteError[E]) remoteTelemetry() Telemetry { return e.Telemetry }

// remote lets callers inspect a RemoteError without knowing its payload type.
type remote interface {
	error
	code() (int64, string, bool)
	remoteStatus() int
	remoteTelemetry() Telemetry
}

// KindOf reports which stage produced err.
func KindOf(err error) Kind {
	var (
		qe *QuerySerializationError
		te *TransportError
		he *HeaderParseError
		be *BodyParseError
		re remote
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &re):
		return KindRemote
	case errors.As(err, &qe):
		return KindQuerySerialization
	case errors.As(err, &te):
		return KindTransport
	case errors.As(err, &he):
		return KindHeaderParse
	case errors.As(err, &be):
		return KindBodyParse
	default:
		return KindUnknown
	}
}

// IsRemote returns true if err carries a structured error from the exchange.
func IsRemote(err error) bool {
	var re remote
	return errors.As(err, &re)
}

// RemoteCode extracts the exchange error code and message from a RemoteError
// whose payload implements Coded.
func RemoteCode(err error) (int64, string, bool) {
	var re remote
	if !errors.As(err, &re) {
		return 0, "", false
	}
	return re.code()
}

// RemoteTelemetry returns the status and telemetry recorded with a RemoteError.
func RemoteTelemetry(err error) (int, Telemetry, bool) {
	var re remote
	if !errors.As(err, &re) {
		return 0, Telemetry{}, false
	}
	return re.remoteStatus(), re.remoteTelemetry(), true
}
