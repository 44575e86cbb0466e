package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	req := NewRequest("GET", "https://api.binance.com/api/v3/ticker/price?symbol=BTCUSDT")

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://api.binance.com/api/v3/ticker/price?symbol=BTCUSDT", req.URL)
	assert.NotNil(t, req.Headers)
	assert.Empty(t, req.Headers)
}

func TestRequest_SetHeader(t *testing.T) {
	req := NewRequest("GET", "https://api.binance.com/api/v3/account")
	result := req.SetHeader(HeaderAPIKey, "key")

	assert.Equal(t, req, result)
	assert.Equal(t, "key", req.Headers[HeaderAPIKey])

	var empty Request
	empty.SetHeader("X-Test", "1")
	assert.Equal(t, "1", empty.Headers["X-Test"])
}

func TestRequest_Path(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"no_query", "https://api.binance.com/api/v3/time", "https://api.binance.com/api/v3/time"},
		{"signed", "https://api.binance.com/api/v3/account?timestamp=1&signature=abc", "https://api.binance.com/api/v3/account"},
		{"empty_query", "https://api.binance.com/api/v3/time?", "https://api.binance.com/api/v3/time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRequest("GET", tt.url).Path())
			assert.Equal(t, tt.want, StripQuery(tt.url))
		})
	}
}
