// Package spot implements the spot REST endpoints.
//
// Every method returns the decoded payload with the response's rate-limit
// telemetry, or an error. Structured exchange errors arrive as
// *core.RemoteError[envelope.APIError]; cancel-replace uses
// *core.RemoteError[CancelReplaceError].
//
// Example usage:
//
//	s, err := spot.New(core.DefaultConfig(spot.Host))
//	resp, err := s.Depth(ctx, "BTCUSDT", spot.DepthLimit100)
package spot

import (
	"binancex/pkg/client"
	"binancex/pkg/core"
)

// Hosts of the spot API.
const (
	Host        = core.HostSpot
	TestnetHost = core.HostSpotTestnet
)

// Endpoint paths.
const (
	PathPing             = "/api/v3/ping"
	PathTime             = "/api/v3/time"
	PathDepth            = "/api/v3/depth"
	PathTrades           = "/api/v3/trades"
	PathHistoricalTrades = "/api/v3/historicalTrades"
	PathAggTrades        = "/api/v3/aggTrades"
	PathKlines           = "/api/v3/klines"
	PathUIKlines         = "/api/v3/uiKlines"
	PathAvgPrice         = "/api/v3/avgPrice"
	PathTicker24h        = "/api/v3/ticker/24hr"
	PathTickerPrice      = "/api/v3/ticker/price"
	PathBookTicker       = "/api/v3/ticker/bookTicker"

	PathOrderTest      = "/api/v3/order/test"
	PathOrder          = "/api/v3/order"
	PathOpenOrders     = "/api/v3/openOrders"
	PathCancelReplace  = "/api/v3/order/cancelReplace"
	PathAllOrders      = "/api/v3/allOrders"
	PathAccount        = "/api/v3/account"
	PathMyTrades       = "/api/v3/myTrades"
	PathRateLimitOrder = "/api/v3/rateLimit/order"
)

// Spot is the spot API client.
type Spot struct {
	auth *client.Authority
}

// New creates a Spot client. An empty config.Host defaults to Host;
// config itself is not modified.
func New(config *core.Config, opts ...client.Option) (*Spot, error) {
	if config != nil && config.Host == "" {
		local := *config
		local.Host = Host
		config = &local
	}
	auth, err := client.New(config, opts...)
	if err != nil {
		return nil, err
	}
	return &Spot{auth: auth}, nil
}

// NewWithAuthority wraps an existing authority.
func NewWithAuthority(auth *client.Authority) *Spot {
	return &Spot{auth: auth}
}

// Authority returns the underlying request authority.
func (s *Spot) Authority() *client.Authority {
	return s.auth
}

// Close releases the underlying HTTP resources.
func (s *Spot) Close() error {
	return s.auth.Close()
}
