package spot

import (
	"context"

	"github.com/bytedance/sonic/encoder"

	"binancex/pkg/client"
	"binancex/pkg/envelope"
	"binancex/pkg/market"
	"binancex/pkg/query"
)

type apiError = envelope.APIError

// Ping tests connectivity. Weight 1.
func (s *Spot) Ping(ctx context.Context) (*envelope.Response[market.Pong], error) {
	return client.Get[market.Pong, apiError](ctx, s.auth, PathPing, nil)
}

// ServerTime returns the server clock. Weight 1.
func (s *Spot) ServerTime(ctx context.Context) (*envelope.Response[market.ServerTime], error) {
	return client.Get[market.ServerTime, apiError](ctx, s.auth, PathTime, nil)
}

// Depth returns an order book snapshot. Its weight is limit.Weight().
func (s *Spot) Depth(ctx context.Context, symbol string, limit DepthLimit) (*envelope.Response[OrderBook], error) {
	return client.Get[OrderBook, apiError](ctx, s.auth, PathDepth, func(q *query.Builder) {
		q.AddString("symbol", symbol).AddUint("limit", uint64(limit))
	})
}

// RecentTrades returns the latest trades. A zero limit uses the exchange default. Weight 1.
func (s *Spot) RecentTrades(ctx context.Context, symbol string, limit uint16) (*envelope.Response[[]Trade], error) {
	return client.Get[[]Trade, apiError](ctx, s.auth, PathTrades, func(q *query.Builder) {
		q.AddString("symbol", symbol)
		addLimit(q, limit)
	})
}

// HistoricalTradesRequest selects older trades. FromID zero means most recent.
type HistoricalTradesRequest struct {
	Symbol string
	FromID uint64
	Limit  uint16
}

// HistoricalTrades returns older trades. It requires an API key. Weight 5.
func (s *Spot) HistoricalTrades(ctx context.Context, req HistoricalTradesRequest) (*envelope.Response[[]Trade], error) {
	return client.GetKeyed[[]Trade, apiError](ctx, s.auth, PathHistoricalTrades, func(q *query.Builder) {
		q.AddString("symbol", req.Symbol)
		if req.FromID != 0 {
			q.AddUint("fromId", req.FromID)
		}
		addLimit(q, req.Limit)
	})
}

// AggTradesRequest selects aggregate trades. Zero values are not sent.
type AggTradesRequest struct {
	Symbol    string
	FromID    uint64
	StartTime int64
	EndTime   int64
	Limit     uint16
}

// AggTrades returns aggregate trades. Weight 1.
func (s *Spot) AggTrades(ctx context.Context, req AggTradesRequest) (*envelope.Response[[]AggregateTrade], error) {
	return client.Get[[]AggregateTrade, apiError](ctx, s.auth, PathAggTrades, func(q *query.Builder) {
		q.AddString("symbol", req.Symbol)
		if req.FromID != 0 {
			q.AddUint("fromId", req.FromID)
		}
		addTimeRange(q, req.StartTime, req.EndTime)
		addLimit(q, req.Limit)
	})
}

// KlinesRequest selects candlesticks. Without a time range the most recent are returned.
type KlinesRequest struct {
	Symbol    string
	Interval  KlineInterval
	StartTime int64
	EndTime   int64
	Limit     uint16
}

func (r KlinesRequest) appendTo(q *query.Builder) {
	q.AddString("symbol", r.Symbol).AddString("interval", string(r.Interval))
	addTimeRange(q, r.StartTime, r.EndTime)
	addLimit(q, r.Limit)
}

// Klines returns candlesticks. Weight 2.
func (s *Spot) Klines(ctx context.Context, req KlinesRequest) (*envelope.Response[[]Kline], error) {
	return client.Get[[]Kline, apiError](ctx, s.auth, PathKlines, req.appendTo)
}

// UIKlines returns candlesticks adjusted for chart presentation. Weight 2.
func (s *Spot) UIKlines(ctx context.Context, req KlinesRequest) (*envelope.Response[[]Kline], error) {
	return client.Get[[]Kline, apiError](ctx, s.auth, PathUIKlines, req.appendTo)
}

// AvgPrice returns the current average price. Weight 2.
func (s *Spot) AvgPrice(ctx context.Context, symbol string) (*envelope.Response[AveragePrice], error) {
	return client.Get[AveragePrice, apiError](ctx, s.auth, PathAvgPrice, symbolParam(symbol))
}

// Ticker24hFull returns FULL 24 hour statistics for one symbol.
func (s *Spot) Ticker24hFull(ctx context.Context, symbol string) (*envelope.Response[TickerStatsFull], error) {
	return client.Get[TickerStatsFull, apiError](ctx, s.auth, PathTicker24h, func(q *query.Builder) {
		q.AddString("symbol", symbol).AddString("type", "FULL")
	})
}

// Ticker24hMini returns MINI 24 hour statistics for one symbol.
func (s *Spot) Ticker24hMini(ctx context.Context, symbol string) (*envelope.Response[TickerStatsMini], error) {
	return client.Get[TickerStatsMini, apiError](ctx, s.auth, PathTicker24h, func(q *query.Builder) {
		q.AddString("symbol", symbol).AddString("type", "MINI")
	})
}

// Tickers24hFull returns FULL statistics for symbols, or for every symbol when
// symbols is empty. The all-symbols call is heavy.
func (s *Spot) Tickers24hFull(ctx context.Context, symbols []string) (*envelope.Response[[]TickerStatsFull], error) {
	return client.Get[[]TickerStatsFull, apiError](ctx, s.auth, PathTicker24h, func(q *query.Builder) {
		q.AddString("type", "FULL")
		addSymbols(q, symbols)
	})
}

// Tickers24hMini returns MINI statistics for symbols, or for every symbol when
// symbols is empty.
func (s *Spot) Tickers24hMini(ctx context.Context, symbols []string) (*envelope.Response[[]TickerStatsMini], error) {
	return client.Get[[]TickerStatsMini, apiError](ctx, s.auth, PathTicker24h, func(q *query.Builder) {
		q.AddString("type", "MINI")
		addSymbols(q, symbols)
	})
}

// TickerPrice returns the latest price of one symbol. Weight 2.
func (s *Spot) TickerPrice(ctx context.Context, symbol string) (*envelope.Response[SymbolPrice], error) {
	return client.Get[SymbolPrice, apiError](ctx, s.auth, PathTickerPrice, symbolParam(symbol))
}

// TickerPrices returns latest prices for symbols, or every symbol when empty.
func (s *Spot) TickerPrices(ctx context.Context, symbols []string) (*envelope.Response[[]SymbolPrice], error) {
	return client.Get[[]SymbolPrice, apiError](ctx, s.auth, PathTickerPrice, func(q *query.Builder) {
		addSymbols(q, symbols)
	})
}

// BookTicker returns the best bid and ask of one symbol. Weight 2.
func (s *Spot) BookTicker(ctx context.Context, symbol string) (*envelope.Response[BookTicker], error) {
	return client.Get[BookTicker, apiError](ctx, s.auth, PathBookTicker, symbolParam(symbol))
}

// BookTickers returns best bids and asks for symbols, or every symbol when empty.
func (s *Spot) BookTickers(ctx context.Context, symbols []string) (*envelope.Response[[]BookTicker], error) {
	return client.Get[[]BookTicker, apiError](ctx, s.auth, PathBookTicker, func(q *query.Builder) {
		addSymbols(q, symbols)
	})
}

func symbolParam(symbol string) client.FillFunc {
	return func(q *query.Builder) {
		q.AddString("symbol", symbol)
	}
}

func addLimit(q *query.Builder, limit uint16) {
	if limit != 0 {
		q.AddUint("limit", uint64(limit))
	}
}

func addTimeRange(q *query.Builder, start, end int64) {
	if start != 0 {
		q.AddInt("startTime", start)
	}
	if end != 0 {
		q.AddInt("endTime", end)
	}
}

// addSymbols appends symbols as the JSON array the exchange expects, e.g.
// ["BTCUSDT","ETHUSDT"]. Nothing is appended for an empty list.
func addSymbols(q *query.Builder, symbols []string) {
	if len(symbols) == 0 {
		return
	}
	buf := make([]byte, 0, 2+len(symbols)*12)
	buf = append(buf, '[')
	for i, sym := range symbols {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, encoder.Quote(sym)...)
	}
	buf = append(buf, ']')
	q.AddString("symbols", string(buf))
}
