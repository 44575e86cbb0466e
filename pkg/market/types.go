// Package market holds payloads shared by every product line.
package market

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// Empty is the {} body returned by ping style endpoints. It only matches an
// object with no members, so an error body is never mistaken for it.
type Empty struct{}

// Pong is the ping response.
type Pong = Empty

var errNotEmpty = errors.New("expected an empty object")

// UnmarshalJSON implements json.Unmarshaler.
func (e *Empty) UnmarshalJSON(data []byte) error {
	var members map[string]any
	if err := sonic.Unmarshal(data, &members); err != nil {
		return err
	}
	if members == nil || len(members) != 0 {
		return errNotEmpty
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (Empty) MarshalJSON() ([]byte, error) {
	return []byte("{}"), nil
}

// ServerTime is the server clock in epoch milliseconds.
type ServerTime struct {
	ServerTime int64 `json:"serverTime" validate:"required"`
}

// PriceLevel is one order book level, encoded as ["price","qty"].
type PriceLevel struct {
	Price    apd.Decimal
	Quantity apd.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := sonic.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("price level: expected 2 elements, got %d", len(pair))
	}
	if _, _, err := p.Price.SetString(pair[0]); err != nil {
		return fmt.Errorf("price level price %q: %w", pair[0], err)
	}
	if _, _, err := p.Quantity.SetString(pair[1]); err != nil {
		return fmt.Errorf("price level quantity %q: %w", pair[1], err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p PriceLevel) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([2]string{p.Price.Text('f'), p.Quantity.Text('f')})
}

// RateLimitType names what a rate limit counts.
type RateLimitType string

// Rate limit types.
const (
	RateLimitRequestWeight RateLimitType = "REQUEST_WEIGHT"
	RateLimitOrders        RateLimitType = "ORDERS"
	RateLimitRawRequests   RateLimitType = "RAW_REQUESTS"
)

// RateLimitInterval is the unit of a rate limit window.
type RateLimitInterval string

// Rate limit intervals.
const (
	IntervalSecond RateLimitInterval = "SECOND"
	IntervalMinute RateLimitInterval = "MINUTE"
	IntervalDay    RateLimitInterval = "DAY"
)

// RateLimit describes one limit window, e.g. 1200 REQUEST_WEIGHT per 1 MINUTE.
type RateLimit struct {
	RateLimitType RateLimitType     `json:"rateLimitType" validate:"required"`
	Interval      RateLimitInterval `json:"interval" validate:"required"`
	IntervalNum   uint32            `json:"intervalNum"`
	Limit         uint32            `json:"limit"`
	Count         uint32            `json:"count,omitempty"`
}
