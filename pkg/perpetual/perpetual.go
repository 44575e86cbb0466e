// Package perpetual implements the USDⓈ-M perpetual futures REST endpoints.
package perpetual

import (
	"context"

	"binancex/pkg/client"
	"binancex/pkg/core"
	"binancex/pkg/envelope"
	"binancex/pkg/futures"
	"binancex/pkg/market"
	"binancex/pkg/query"
)

// Hosts of the perpetual futures API.
const (
	Host        = core.HostPerpetual
	TestnetHost = core.HostFuturesTestnet
)

// Endpoint paths.
const (
	PathPing  = "/fapi/v1/ping"
	PathTime  = "/fapi/v1/time"
	PathDepth = "/fapi/v1/depth"
)

// DepthLimit is the closed set of futures depth limits.
type DepthLimit = futures.DepthLimit

// OrderBook is a depth snapshot.
type OrderBook struct {
	LastUpdateID    uint64              `json:"lastUpdateId" validate:"required"`
	EventTime       int64               `json:"E" validate:"required"`
	TransactionTime int64               `json:"T" validate:"required"`
	Bids            []market.PriceLevel `json:"bids"`
	Asks            []market.PriceLevel `json:"asks"`
}

type apiError = envelope.APIError

// Perpetual is the perpetual futures API client.
type Perpetual struct {
	auth *client.Authority
}

// New creates a Perpetual client. An empty config.Host defaults to Host;
// config itself is not modified.
func New(config *core.Config, opts ...client.Option) (*Perpetual, error) {
	if config != nil && config.Host == "" {
		local := *config
		local.Host = Host
		config = &local
	}
	auth, err := client.New(config, opts...)
	if err != nil {
		return nil, err
	}
	return &Perpetual{auth: auth}, nil
}

// NewWithAuthority wraps an existing authority.
func NewWithAuthority(auth *client.Authority) *Perpetual {
	return &Perpetual{auth: auth}
}

// Authority returns the request authority shared by every endpoint.
func (p *Perpetual) Authority() *client.Authority {
	return p.auth
}

// Close releases the underlying HTTP resources.
func (p *Perpetual) Close() error {
	return p.auth.Close()
}

// Ping tests connectivity. Weight 1.
func (p *Perpetual) Ping(ctx context.Context) (*envelope.Response[market.Pong], error) {
	return client.Get[market.Pong, apiError](ctx, p.auth, PathPing, nil)
}

// ServerTime returns the server clock. Weight 1.
func (p *Perpetual) ServerTime(ctx context.Context) (*envelope.Response[market.ServerTime], error) {
	return client.Get[market.ServerTime, apiError](ctx, p.auth, PathTime, nil)
}

// Depth returns an order book snapshot. Its weight is limit.Weight().
func (p *Perpetual) Depth(ctx context.Context, symbol string, limit DepthLimit) (*envelope.Response[OrderBook], error) {
	if err := limit.Check(); err != nil {
		return nil, err
	}
	return client.Get[OrderBook, apiError](ctx, p.auth, PathDepth, func(q *query.Builder) {
		q.AddString("symbol", symbol).AddUint("limit", uint64(limit))
	})
}
