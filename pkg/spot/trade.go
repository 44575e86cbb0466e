package spot

import (
	"context"

	"github.com/google/uuid"

	"binancex/pkg/client"
	"binancex/pkg/envelope"
	"binancex/pkg/market"
	"binancex/pkg/query"
)

// NewClientOrderID returns a random client order id. It fits the exchange's
// 36 character limit.
func NewClientOrderID() string {
	return uuid.NewString()
}

// validatable is implemented by request structs checked before sending.
type validatable interface {
	Validate() error
}

// objectParams validates v and appends its fields in declaration order.
func objectParams(v validatable) client.SignedFillFunc {
	return func(q *query.Builder) error {
		if err := v.Validate(); err != nil {
			return err
		}
		return q.AddObject(v)
	}
}

// TestNewOrder validates an order without sending it to the matching engine. Weight 1.
func (s *Spot) TestNewOrder(ctx context.Context, req *NewOrderRequest) (*envelope.Response[market.Empty], error) {
	return client.PostSigned[market.Empty, apiError](ctx, s.auth, PathOrderTest, objectParams(req))
}

// NewOrder places an order. Weight 1.
func (s *Spot) NewOrder(ctx context.Context, req *NewOrderRequest) (*envelope.Response[OrderResponse], error) {
	return client.PostSigned[OrderResponse, apiError](ctx, s.auth, PathOrder, objectParams(req))
}

// CancelOrder cancels an active order. Weight 1.
func (s *Spot) CancelOrder(ctx context.Context, req *CancelOrderRequest) (*envelope.Response[CancelOrderResponse], error) {
	return client.DeleteSigned[CancelOrderResponse, apiError](ctx, s.auth, PathOrder, objectParams(req))
}

// CancelAllOrders cancels every active order on symbol, OCO legs included. Weight 1.
func (s *Spot) CancelAllOrders(ctx context.Context, symbol string) (*envelope.Response[[]CancelOrderResponse], error) {
	return client.DeleteSigned[[]CancelOrderResponse, apiError](ctx, s.auth, PathOpenOrders, signedSymbol(symbol))
}

// OrderInfo returns an order's status. Weight 4.
func (s *Spot) OrderInfo(ctx context.Context, req *OrderQuery) (*envelope.Response[OrderInfo], error) {
	return client.GetSigned[OrderInfo, apiError](ctx, s.auth, PathOrder, objectParams(req))
}

// CancelReplace cancels an order and places a new one on the same symbol.
// Failures carry a CancelReplaceError reporting each half. Weight 1.
func (s *Spot) CancelReplace(ctx context.Context, req *CancelReplaceRequest) (*envelope.Response[CancelReplaceResponse], error) {
	return client.PostSigned[CancelReplaceResponse, CancelReplaceError](ctx, s.auth, PathCancelReplace, objectParams(req))
}

// OpenOrders returns the open orders on symbol. Weight 6.
func (s *Spot) OpenOrders(ctx context.Context, symbol string) (*envelope.Response[[]OrderInfo], error) {
	return client.GetSigned[[]OrderInfo, apiError](ctx, s.auth, PathOpenOrders, signedSymbol(symbol))
}

// AllOpenOrders returns the open orders on every symbol. Weight 80.
func (s *Spot) AllOpenOrders(ctx context.Context) (*envelope.Response[[]OrderInfo], error) {
	return client.GetSigned[[]OrderInfo, apiError](ctx, s.auth, PathOpenOrders, nil)
}

// AllOrders returns active, canceled and filled orders. Weight 20.
func (s *Spot) AllOrders(ctx context.Context, req *AllOrdersRequest) (*envelope.Response[[]OrderInfo], error) {
	return client.GetSigned[[]OrderInfo, apiError](ctx, s.auth, PathAllOrders, objectParams(req))
}

// AccountInfo returns balances and permissions. Weight 20.
func (s *Spot) AccountInfo(ctx context.Context) (*envelope.Response[AccountInfo], error) {
	return client.GetSigned[AccountInfo, apiError](ctx, s.auth, PathAccount, nil)
}

// MyTrades returns the account's trades on a symbol. Weight 20.
func (s *Spot) MyTrades(ctx context.Context, req *AccountTradesRequest) (*envelope.Response[[]AccountTrade], error) {
	return client.GetSigned[[]AccountTrade, apiError](ctx, s.auth, PathMyTrades, objectParams(req))
}

// OrderRateLimit returns the account's current order counts. Weight 40.
func (s *Spot) OrderRateLimit(ctx context.Context) (*envelope.Response[[]OrderRateLimit], error) {
	return client.GetSigned[[]OrderRateLimit, apiError](ctx, s.auth, PathRateLimitOrder, nil)
}

func signedSymbol(symbol string) client.SignedFillFunc {
	return func(q *query.Builder) error {
		q.AddString("symbol", symbol)
		return nil
	}
}
