package spot

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"binancex/pkg/envelope"
)

// CancelReplaceError is the error body of the cancel-replace endpoint. When
// the exchange processed either half of the request, Data reports each half
// separately: a cancel or new order response, or its own error.
type CancelReplaceError struct {
	Code int64              `json:"code"`
	Msg  string             `json:"msg"`
	Data *CancelReplaceData `json:"data,omitempty"`
}

// CancelReplaceData is the per-half outcome of a failed cancel-replace.
type CancelReplaceData struct {
	CancelResult     string                                                    `json:"cancelResult" validate:"required"`
	NewOrderResult   string                                                    `json:"newOrderResult" validate:"required"`
	CancelResponse   envelope.Envelope[CancelOrderResponse, envelope.APIError] `json:"cancelResponse"`
	NewOrderResponse envelope.Envelope[OrderAck, envelope.APIError]            `json:"newOrderResponse"`
}

var errCancelReplaceShape = errors.New("cancel-replace error requires code and msg")

// UnmarshalJSON implements json.Unmarshaler.
func (e *CancelReplaceError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code *int64             `json:"code"`
		Msg  *string            `json:"msg"`
		Data *CancelReplaceData `json:"data"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Code == nil || raw.Msg == nil {
		return errCancelReplaceShape
	}
	e.Code, e.Msg, e.Data = *raw.Code, *raw.Msg, raw.Data
	return nil
}

func (e CancelReplaceError) Error() string {
	return fmt.Sprintf("cancel-replace error %d: %s", e.Code, e.Msg)
}

// ErrorCode implements core.Coded.
func (e CancelReplaceError) ErrorCode() int64 { return e.Code }

// ErrorMessage implements core.Coded.
func (e CancelReplaceError) ErrorMessage() string { return e.Msg }
