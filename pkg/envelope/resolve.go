package envelope

import (
	"net/http"

	"binancex/pkg/core"
)

// Response is a decoded success together with its status and telemetry.
type Response[S any] struct {
	StatusCode int
	Telemetry  core.Telemetry
	Payload    S
}

// Resolve classifies one HTTP response. Telemetry headers are parsed first and
// a malformed header fails before the body is read. A 2xx body is tried as S
// and then as E; any other status tries E first. A matching E is returned as
// *core.RemoteError[E]. A body matching neither fails with *core.BodyParseError.
func Resolve[S, E any](status int, header http.Header, body []byte) (*Response[S], error) {
	telemetry, err := ParseTelemetry(header)
	if err != nil {
		return nil, err
	}

	var (
		s                  *S
		e                  *E
		successErr, errErr error
	)
	if status >= 200 && status < 300 {
		if s, successErr = Decode[S](body); successErr != nil {
			e, errErr = Decode[E](body)
		}
	} else {
		if e, errErr = Decode[E](body); errErr != nil {
			s, successErr = Decode[S](body)
		}
	}

	switch {
	case s != nil:
		return &Response[S]{StatusCode: status, Telemetry: telemetry, Payload: *s}, nil
	case e != nil:
		return nil, &core.RemoteError[E]{StatusCode: status, Telemetry: telemetry, Payload: *e}
	default:
		return nil, &core.BodyParseError{
			StatusCode: status,
			Body:       body,
			SuccessErr: successErr,
			ErrorErr:   errErr,
		}
	}
}
