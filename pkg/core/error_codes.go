package core

// ErrorType categorizes an exchange error code for programmatic handling.
type ErrorType int

// Error type constants categorize exchange error codes.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeRateLimit indicates request weight or order rate was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates invalid credentials or signature.
	ErrorTypeAuthentication
	// ErrorTypeTimestamp indicates the request fell outside recvWindow.
	ErrorTypeTimestamp
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeInvalidOrder indicates the order was rejected by exchange rules.
	ErrorTypeInvalidOrder
	// ErrorTypeServerError indicates a server-side failure.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"TIMESTAMP",
		"BAD_REQUEST",
		"INVALID_ORDER",
		"SERVER_ERROR",
	}[t]
}

// Binance error codes referenced by the client.
const (
	CodeUnknown             int64 = -1000
	CodeDisconnected        int64 = -1001
	CodeUnauthorized        int64 = -1002
	CodeTooManyRequests     int64 = -1003
	CodeTooManyOrders       int64 = -1015
	CodeInvalidTimestamp    int64 = -1021
	CodeInvalidSignature    int64 = -1022
	CodeIllegalChars        int64 = -1100
	CodeTooManyParameters   int64 = -1101
	CodeMandatoryParamEmpty int64 = -1102
	CodeUnknownParam        int64 = -1103
	CodeInvalidParameter    int64 = -1130
	CodeNewOrderRejected    int64 = -2010
	CodeCancelRejected      int64 = -2011
	CodeNoSuchOrder         int64 = -2013
	CodeRejectedMBXKey      int64 = -2015
)

// ClassifyCode maps a Binance error code to an ErrorType.
func ClassifyCode(code int64) ErrorType {
	switch code {
	case CodeTooManyRequests, CodeTooManyOrders:
		return ErrorTypeRateLimit
	case CodeUnauthorized, CodeInvalidSignature, CodeRejectedMBXKey:
		return ErrorTypeAuthentication
	case CodeInvalidTimestamp:
		return ErrorTypeTimestamp
	case CodeUnknown, CodeDisconnected:
		return ErrorTypeServerError
	}
	switch {
	case code <= -1100 && code > -1200:
		return ErrorTypeBadRequest
	case code <= -2000 && code > -3000:
		return ErrorTypeInvalidOrder
	}
	return ErrorTypeUnknown
}

// IsRateLimitError returns true if err is a remote error whose code signals an
// exceeded rate limit. The caller owns backoff, see Telemetry.RetryAfter.
func IsRateLimitError(err error) bool {
	code, _, ok := RemoteCode(err)
	return ok && ClassifyCode(code) == ErrorTypeRateLimit
}

// IsAuthenticationError returns true if err is a remote authentication failure.
// Authentication errors require credential validation and are not retryable.
func IsAuthenticationError(err error) bool {
	code, _, ok := RemoteCode(err)
	return ok && ClassifyCode(code) == ErrorTypeAuthentication
}
