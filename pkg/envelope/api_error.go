package envelope

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"binancex/pkg/core"
)

// APIError is the exchange's standard error body, {"code":-1121,"msg":"Invalid symbol."}.
// Both keys must be present for a body to match.
type APIError struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

var errMissingCode = errors.New("error body requires code and msg")

// UnmarshalJSON implements json.Unmarshaler.
func (e *APIError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code *int64  `json:"code"`
		Msg  *string `json:"msg"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Code == nil || raw.Msg == nil {
		return errMissingCode
	}
	e.Code, e.Msg = *raw.Code, *raw.Msg
	return nil
}

func (e APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Msg)
}

// ErrorCode implements core.Coded.
func (e APIError) ErrorCode() int64 { return e.Code }

// ErrorMessage implements core.Coded.
func (e APIError) ErrorMessage() string { return e.Msg }

// Type classifies the code.
func (e APIError) Type() core.ErrorType {
	return core.ClassifyCode(e.Code)
}
