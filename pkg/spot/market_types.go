package spot

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	"github.com/cockroachdb/apd/v3"

	"binancex/pkg/market"
)

// OrderBook is a depth snapshot.
type OrderBook struct {
	LastUpdateID uint64              `json:"lastUpdateId" validate:"required"`
	Bids         []market.PriceLevel `json:"bids"`
	Asks         []market.PriceLevel `json:"asks"`
}

// Trade is a public trade.
type Trade struct {
	ID           uint64      `json:"id" validate:"required"`
	Price        apd.Decimal `json:"price"`
	Qty          apd.Decimal `json:"qty"`
	QuoteQty     apd.Decimal `json:"quoteQty"`
	Time         int64       `json:"time" validate:"required"`
	IsBuyerMaker bool        `json:"isBuyerMaker"`
	IsBestMatch  bool        `json:"isBestMatch"`
}

// AggregateTrade groups fills of one taker order at one price.
type AggregateTrade struct {
	AggregateTradeID uint64      `json:"a"`
	Price            apd.Decimal `json:"p"`
	Qty              apd.Decimal `json:"q"`
	FirstTradeID     uint64      `json:"f"`
	LastTradeID      uint64      `json:"l"`
	Timestamp        int64       `json:"T" validate:"required"`
	IsBuyerMaker     bool        `json:"m"`
	IsBestMatch      bool        `json:"M"`
}

// Kline is one candlestick. The exchange encodes it as a positional array.
type Kline struct {
	OpenTime                 int64
	Open                     apd.Decimal
	High                     apd.Decimal
	Low                      apd.Decimal
	Close                    apd.Decimal
	Volume                   apd.Decimal
	CloseTime                int64
	QuoteAssetVolume         apd.Decimal
	NumberOfTrades           int64
	TakerBuyBaseAssetVolume  apd.Decimal
	TakerBuyQuoteAssetVolume apd.Decimal
}

const klineFields = 11

// UnmarshalJSON implements json.Unmarshaler.
func (k *Kline) UnmarshalJSON(data []byte) error {
	root, err := sonic.Get(data)
	if err != nil {
		return err
	}
	if root.TypeSafe() != ast.V_ARRAY {
		return fmt.Errorf("kline: expected array")
	}
	if err := root.LoadAll(); err != nil {
		return err
	}
	n, err := root.Len()
	if err != nil {
		return err
	}
	if n < klineFields {
		return fmt.Errorf("kline: expected at least %d elements, got %d", klineFields, n)
	}

	ints := []struct {
		idx int
		dst *int64
	}{{0, &k.OpenTime}, {6, &k.CloseTime}, {8, &k.NumberOfTrades}}
	for _, f := range ints {
		if *f.dst, err = root.Index(f.idx).Int64(); err != nil {
			return fmt.Errorf("kline[%d]: %w", f.idx, err)
		}
	}

	decimals := []struct {
		idx int
		dst *apd.Decimal
	}{
		{1, &k.Open}, {2, &k.High}, {3, &k.Low}, {4, &k.Close}, {5, &k.Volume},
		{7, &k.QuoteAssetVolume}, {9, &k.TakerBuyBaseAssetVolume}, {10, &k.TakerBuyQuoteAssetVolume},
	}
	for _, f := range decimals {
		s, err := root.Index(f.idx).String()
		if err != nil {
			return fmt.Errorf("kline[%d]: %w", f.idx, err)
		}
		if _, _, err := f.dst.SetString(s); err != nil {
			return fmt.Errorf("kline[%d] %q: %w", f.idx, s, err)
		}
	}
	return nil
}

// AveragePrice is the average price over the last Mins minutes.
type AveragePrice struct {
	Mins      uint64      `json:"mins" validate:"required"`
	Price     apd.Decimal `json:"price"`
	CloseTime int64       `json:"closeTime,omitempty"`
}

// TickerStatsFull is the FULL 24 hour rolling window statistics.
type TickerStatsFull struct {
	Symbol             string      `json:"symbol" validate:"required"`
	PriceChange        apd.Decimal `json:"priceChange"`
	PriceChangePercent apd.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   apd.Decimal `json:"weightedAvgPrice"`
	PrevClosePrice     apd.Decimal `json:"prevClosePrice"`
	LastPrice          apd.Decimal `json:"lastPrice"`
	LastQty            apd.Decimal `json:"lastQty"`
	BidPrice           apd.Decimal `json:"bidPrice"`
	BidQty             apd.Decimal `json:"bidQty"`
	AskPrice           apd.Decimal `json:"askPrice"`
	AskQty             apd.Decimal `json:"askQty"`
	OpenPrice          apd.Decimal `json:"openPrice"`
	HighPrice          apd.Decimal `json:"highPrice"`
	LowPrice           apd.Decimal `json:"lowPrice"`
	Volume             apd.Decimal `json:"volume"`
	QuoteVolume        apd.Decimal `json:"quoteVolume"`
	OpenTime           int64       `json:"openTime"`
	CloseTime          int64       `json:"closeTime"`
	FirstID            int64       `json:"firstId"`
	LastID             int64       `json:"lastId"`
	Count              uint64      `json:"count"`
}

// TickerStatsMini is the MINI 24 hour rolling window statistics.
type TickerStatsMini struct {
	Symbol      string      `json:"symbol" validate:"required"`
	OpenPrice   apd.Decimal `json:"openPrice"`
	HighPrice   apd.Decimal `json:"highPrice"`
	LowPrice    apd.Decimal `json:"lowPrice"`
	LastPrice   apd.Decimal `json:"lastPrice"`
	Volume      apd.Decimal `json:"volume"`
	QuoteVolume apd.Decimal `json:"quoteVolume"`
	OpenTime    int64       `json:"openTime"`
	CloseTime   int64       `json:"closeTime"`
	FirstID     int64       `json:"firstId"`
	LastID      int64       `json:"lastId"`
	Count       uint64      `json:"count"`
}

// SymbolPrice is the latest price of a symbol.
type SymbolPrice struct {
	Symbol string      `json:"symbol" validate:"required"`
	Price  apd.Decimal `json:"price"`
}

// BookTicker is the best bid and ask of a symbol.
type BookTicker struct {
	Symbol   string      `json:"symbol" validate:"required"`
	BidPrice apd.Decimal `json:"bidPrice"`
	BidQty   apd.Decimal `json:"bidQty"`
	AskPrice apd.Decimal `json:"askPrice"`
	AskQty   apd.Decimal `json:"askQty"`
}
