package core

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Code int64
	Msg  string
}

func (p testPayload) ErrorCode() int64     { return p.Code }
func (p testPayload) ErrorMessage() string { return p.Msg }

type uncoded struct{}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "UNKNOWN"},
		{KindQuerySerialization, "QUERY_SERIALIZATION"},
		{KindTransport, "TRANSPORT"},
		{KindHeaderParse, "HEADER_PARSE"},
		{KindBodyParse, "BODY_PARSE"},
		{KindRemote, "REMOTE"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"foreign", cause, KindUnknown},
		{"query", &QuerySerializationError{Field: "price", Reason: "array"}, KindQuerySerialization},
		{"transport", &TransportError{Method: "GET", Path: "/api/v3/time", Err: cause}, KindTransport},
		{"header", &HeaderParseError{Header: "retry-after", Value: "abc", Err: cause}, KindHeaderParse},
		{"body", &BodyParseError{StatusCode: 200}, KindBodyParse},
		{"remote", &RemoteError[testPayload]{StatusCode: 400}, KindRemote},
		{"wrapped_remote", fmt.Errorf("depth: %w", &RemoteError[uncoded]{StatusCode: 500}), KindRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"query_field", &QuerySerializationError{Field: "price", Reason: "unsupported array"}, "serialize query field price: unsupported array"},
		{"query_wrapped", &QuerySerializationError{Reason: "fill parameters", Err: cause}, "serialize query: fill parameters: boom"},
		{"transport", &TransportError{Method: "GET", Path: "https://api.binance.com/api/v3/time", Err: cause}, "transport GET https://api.binance.com/api/v3/time: boom"},
		{"header", &HeaderParseError{Header: "retry-after", Value: "abc", Err: cause}, `parse header retry-after="abc": boom`},
		{"remote_coded", &RemoteError[testPayload]{StatusCode: 429, Payload: testPayload{Code: -1003, Msg: "Too much request weight used"}}, "remote error (429/-1003): Too much request weight used"},
		{"remote_uncoded", &RemoteError[uncoded]{StatusCode: 500}, "remote error (500)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	_, parseErr := strconv.ParseUint("abc", 10, 16)
	err := fmt.Errorf("resolve: %w", &HeaderParseError{Header: "retry-after", Value: "abc", Err: parseErr})
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	successErr := errors.New("success schema")
	errorErr := errors.New("error schema")
	bpe := &BodyParseError{StatusCode: 200, SuccessErr: successErr, ErrorErr: errorErr}
	assert.ErrorIs(t, bpe, successErr)
	assert.ErrorIs(t, bpe, errorErr)
	assert.Empty(t, (&BodyParseError{}).Unwrap())
}

func TestRemoteCodeAndTelemetry(t *testing.T) {
	weight := uint16(1200)
	retry := uint16(30)
	err := fmt.Errorf("account: %w", &RemoteError[testPayload]{
		StatusCode: 429,
		Telemetry:  Telemetry{UsedWeight1m: &weight, RetryAfter: &retry},
		Payload:    testPayload{Code: CodeTooManyRequests, Msg: "Too much request weight used"},
	})

	assert.True(t, IsRemote(err))
	code, msg, ok := RemoteCode(err)
	require.True(t, ok)
	assert.Equal(t, CodeTooManyRequests, code)
	assert.Equal(t, "Too much request weight used", msg)

	status, telemetry, ok := RemoteTelemetry(err)
	require.True(t, ok)
	assert.Equal(t, 429, status)
	assert.Equal(t, uint16(1200), *telemetry.UsedWeight1m)
	d, ok := telemetry.RetryAfterDuration()
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, d)

	_, _, ok = RemoteCode(&RemoteError[uncoded]{})
	assert.False(t, ok)
	_, _, ok = RemoteCode(errors.New("plain"))
	assert.False(t, ok)
	_, _, ok = RemoteTelemetry(nil)
	assert.False(t, ok)
	assert.False(t, IsRemote(ErrNoCredentials))
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeUnknown, "UNKNOWN"},
		{ErrorTypeRateLimit, "RATE_LIMIT"},
		{ErrorTypeAuthentication, "AUTHENTICATION"},
		{ErrorTypeTimestamp, "TIMESTAMP"},
		{ErrorTypeBadRequest, "BAD_REQUEST"},
		{ErrorTypeInvalidOrder, "INVALID_ORDER"},
		{ErrorTypeServerError, "SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		code int64
		want ErrorType
	}{
		{CodeTooManyRequests, ErrorTypeRateLimit},
		{CodeTooManyOrders, ErrorTypeRateLimit},
		{CodeUnauthorized, ErrorTypeAuthentication},
		{CodeInvalidSignature, ErrorTypeAuthentication},
		{CodeRejectedMBXKey, ErrorTypeAuthentication},
		{CodeInvalidTimestamp, ErrorTypeTimestamp},
		{CodeUnknown, ErrorTypeServerError},
		{CodeDisconnected, ErrorTypeServerError},
		{CodeMandatoryParamEmpty, ErrorTypeBadRequest},
		{CodeInvalidParameter, ErrorTypeBadRequest},
		{CodeNewOrderRejected, ErrorTypeInvalidOrder},
		{CodeNoSuchOrder, ErrorTypeInvalidOrder},
		{-4000, ErrorTypeUnknown},
		{0, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.code, 10), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCode(tt.code))
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	limited := &RemoteError[testPayload]{StatusCode: 429, Payload: testPayload{Code: CodeTooManyRequests}}
	auth := &RemoteError[testPayload]{StatusCode: 401, Payload: testPayload{Code: CodeRejectedMBXKey}}

	assert.True(t, IsRateLimitError(limited))
	assert.False(t, IsRateLimitError(auth))
	assert.False(t, IsRateLimitError(nil))

	assert.True(t, IsAuthenticationError(auth))
	assert.False(t, IsAuthenticationError(limited))
	assert.False(t, IsAuthenticationError(&TransportError{Err: errors.New("eof")}))
}
