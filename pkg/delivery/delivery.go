// Package delivery implements the COIN-M delivery futures REST endpoints.
package delivery

import (
	"context"

	"binancex/pkg/client"
	"binancex/pkg/core"
	"binancex/pkg/envelope"
	"binancex/pkg/futures"
	"binancex/pkg/market"
	"binancex/pkg/query"
)

// Host of the delivery futures API.
const Host = core.HostDelivery

// Endpoint paths.
const (
	PathPing  = "/dapi/v1/ping"
	PathTime  = "/dapi/v1/time"
	PathDepth = "/dapi/v1/depth"
)

// DepthLimit is the closed set of futures depth limits.
type DepthLimit = futures.DepthLimit

// OrderBook is a depth snapshot. Symbols look like BTCUSD_PERP or
// BTCUSD_240628 and Pair is the underlying, e.g. BTCUSD.
type OrderBook struct {
	LastUpdateID    uint64              `json:"lastUpdateId" validate:"required"`
	EventTime       int64               `json:"E" validate:"required"`
	TransactionTime int64               `json:"T" validate:"required"`
	Symbol          string              `json:"symbol" validate:"required"`
	Pair            string              `json:"pair" validate:"required"`
	Bids            []market.PriceLevel `json:"bids"`
	Asks            []market.PriceLevel `json:"asks"`
}

// Delivery is the delivery futures API client.
type Delivery struct {
	auth *client.Authority
}

// New creates a Delivery client. An empty config.Host defaults to Host;
// config itself is not modified.
func New(config *core.Config, opts ...client.Option) (*Delivery, error) {
	if config != nil && config.Host == "" {
		local := *config
		local.Host = Host
		config = &local
	}
	auth, err := client.New(config, opts...)
	if err != nil {
		return nil, err
	}
	return &Delivery{auth: auth}, nil
}

// NewWithAuthority wraps an existing authority.
func NewWithAuthority(auth *client.Authority) *Delivery {
	return &Delivery{auth: auth}
}

// Authority returns the request authority shared by every endpoint.
func (d *Delivery) Authority() *client.Authority {
	return d.auth
}

// Close releases the underlying HTTP resources.
func (d *Delivery) Close() error {
	return d.auth.Close()
}

// Ping tests connectivity. Weight 1.
func (d *Delivery) Ping(ctx context.Context) (*envelope.Response[market.Pong], error) {
	return client.Get[market.Pong, envelope.APIError](ctx, d.auth, PathPing, nil)
}

// ServerTime returns the server clock. Weight 1.
func (d *Delivery) ServerTime(ctx context.Context) (*envelope.Response[market.ServerTime], error) {
	return client.Get[market.ServerTime, envelope.APIError](ctx, d.auth, PathTime, nil)
}

// Depth returns an order book snapshot. Its weight is limit.Weight().
func (d *Delivery) Depth(ctx context.Context, symbol string, limit DepthLimit) (*envelope.Response[OrderBook], error) {
	if err := limit.Check(); err != nil {
		return nil, err
	}
	return client.Get[OrderBook, envelope.APIError](ctx, d.auth, PathDepth, func(q *query.Builder) {
		q.AddString("symbol", symbol).AddUint("limit", uint64(limit))
	})
}
