package envelope

import (
	"net/http"
	"strconv"

	"binancex/pkg/core"
)

// Rate-limit telemetry headers.
const (
	HeaderUsedWeight   = "x-mbx-used-weight"
	HeaderUsedWeight1m = "x-mbx-used-weight-1m"
	HeaderRetryAfter   = "retry-after"
)

// ParseTelemetry reads the rate-limit headers. An absent header leaves its
// field nil; a present header that is not a decimal uint16 fails with
// *core.HeaderParseError.
func ParseTelemetry(header http.Header) (core.Telemetry, error) {
	var (
		t   core.Telemetry
		err error
	)
	if t.UsedWeight, err = parseHeader(header, HeaderUsedWeight); err != nil {
		return core.Telemetry{}, err
	}
	if t.UsedWeight1m, err = parseHeader(header, HeaderUsedWeight1m); err != nil {
		return core.Telemetry{}, err
	}
	if t.RetryAfter, err = parseHeader(header, HeaderRetryAfter); err != nil {
		return core.Telemetry{}, err
	}
	return t, nil
}

func parseHeader(header http.Header, name string) (*uint16, error) {
	values := header.Values(name)
	if len(values) == 0 {
		return nil, nil
	}
	n, err := strconv.ParseUint(values[0], 10, 16)
	if err != nil {
		return nil, &core.HeaderParseError{Header: name, Value: values[0], Err: err}
	}
	v := uint16(n)
	return &v, nil
}
