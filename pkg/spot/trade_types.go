package spot

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"

	"binancex/pkg/market"
	"binancex/pkg/query"
)

// OrderSide is BUY or SELL.
type OrderSide string

// Order sides.
const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType is the spot order type.
type OrderType string

// Order types.
const (
	OrderTypeLimit           OrderType = "LIMIT"
	OrderTypeMarket          OrderType = "MARKET"
	OrderTypeStopLoss        OrderType = "STOP_LOSS"
	OrderTypeStopLossLimit   OrderType = "STOP_LOSS_LIMIT"
	OrderTypeTakeProfit      OrderType = "TAKE_PROFIT"
	OrderTypeTakeProfitLimit OrderType = "TAKE_PROFIT_LIMIT"
	OrderTypeLimitMaker      OrderType = "LIMIT_MAKER"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusPendingCancel   OrderStatus = "PENDING_CANCEL"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
)

// TimeInForce controls how long an order stays active.
type TimeInForce string

// Time in force values.
const (
	GTC TimeInForce = "GTC"
	IOC TimeInForce = "IOC"
	FOK TimeInForce = "FOK"
)

// OrderResponseType selects how much the order endpoint returns.
type OrderResponseType string

// Order response types.
const (
	ResponseAck    OrderResponseType = "ACK"
	ResponseResult OrderResponseType = "RESULT"
	ResponseFull   OrderResponseType = "FULL"
)

// CancelReplaceMode decides whether a failed cancel still places the new order.
type CancelReplaceMode string

// Cancel-replace modes.
const (
	StopOnFailure CancelReplaceMode = "STOP_ON_FAILURE"
	AllowFailure  CancelReplaceMode = "ALLOW_FAILURE"
)

var validate = validator.New()

// OrderParams are the order fields shared by new order and cancel-replace.
// Which fields are required depends on Type.
type OrderParams struct {
	Type             OrderType         `json:"type" validate:"required,oneof=LIMIT MARKET STOP_LOSS STOP_LOSS_LIMIT TAKE_PROFIT TAKE_PROFIT_LIMIT LIMIT_MAKER"`
	TimeInForce      TimeInForce       `json:"timeInForce,omitempty" validate:"omitempty,oneof=GTC IOC FOK"`
	Quantity         *query.Decimal    `json:"quantity,omitempty"`
	QuoteOrderQty    *query.Decimal    `json:"quoteOrderQty,omitempty"`
	Price            *query.Decimal    `json:"price,omitempty"`
	StopPrice        *query.Decimal    `json:"stopPrice,omitempty"`
	TrailingDelta    uint64            `json:"trailingDelta,omitempty"`
	IcebergQty       *query.Decimal    `json:"icebergQty,omitempty"`
	NewClientOrderID string            `json:"newClientOrderId,omitempty"`
	StrategyID       uint32            `json:"strategyId,omitempty"`
	StrategyType     uint32            `json:"strategyType,omitempty" validate:"omitempty,min=1000000"`
	NewOrderRespType OrderResponseType `json:"newOrderRespType,omitempty" validate:"omitempty,oneof=ACK RESULT FULL"`
}

func (p *OrderParams) check() error {
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	switch p.Type {
	case OrderTypeLimit:
		need(p.TimeInForce != "", "timeInForce")
		need(p.Quantity != nil, "quantity")
		need(p.Price != nil, "price")
	case OrderTypeMarket:
		need(p.Quantity != nil || p.QuoteOrderQty != nil, "quantity or quoteOrderQty")
	case OrderTypeStopLoss, OrderTypeTakeProfit:
		need(p.Quantity != nil, "quantity")
		need(p.StopPrice != nil || p.TrailingDelta != 0, "stopPrice or trailingDelta")
	case OrderTypeStopLossLimit, OrderTypeTakeProfitLimit:
		need(p.TimeInForce != "", "timeInForce")
		need(p.Quantity != nil, "quantity")
		need(p.Price != nil, "price")
		need(p.StopPrice != nil || p.TrailingDelta != 0, "stopPrice or trailingDelta")
	case OrderTypeLimitMaker:
		need(p.Quantity != nil, "quantity")
		need(p.Price != nil, "price")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s order requires %v", p.Type, missing)
	}
	return nil
}

// NewOrderRequest places an order. Parameters are sent in field order.
type NewOrderRequest struct {
	Symbol string    `json:"symbol" validate:"required"`
	Side   OrderSide `json:"side" validate:"required,oneof=BUY SELL"`
	OrderParams
}

// Validate checks the request before it is sent.
func (r *NewOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	return r.check()
}

// CancelOrderRequest cancels one order. OrderID takes precedence over
// OrigClientOrderID when both are set.
type CancelOrderRequest struct {
	Symbol            string `json:"symbol" validate:"required"`
	OrderID           uint64 `json:"orderId,omitempty"`
	OrigClientOrderID string `json:"origClientOrderId,omitempty"`
	NewClientOrderID  string `json:"newClientOrderId,omitempty"`
}

var errOrderIdentity = errors.New("orderId or origClientOrderId is required")

// Validate checks the request before it is sent.
func (r *CancelOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.OrderID == 0 && r.OrigClientOrderID == "" {
		return errOrderIdentity
	}
	return nil
}

// OrderQuery identifies one order for lookup.
type OrderQuery struct {
	Symbol            string `json:"symbol" validate:"required"`
	OrderID           uint64 `json:"orderId,omitempty"`
	OrigClientOrderID string `json:"origClientOrderId,omitempty"`
}

// Validate checks the query before it is sent.
func (q *OrderQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return err
	}
	if q.OrderID == 0 && q.OrigClientOrderID == "" {
		return errOrderIdentity
	}
	return nil
}

// CancelReplaceRequest cancels an order and places a new one on the same symbol.
type CancelReplaceRequest struct {
	Symbol                  string            `json:"symbol" validate:"required"`
	Side                    OrderSide         `json:"side" validate:"required,oneof=BUY SELL"`
	CancelReplaceMode       CancelReplaceMode `json:"cancelReplaceMode" validate:"required,oneof=STOP_ON_FAILURE ALLOW_FAILURE"`
	CancelNewClientOrderID  string            `json:"cancelNewClientOrderId,omitempty"`
	CancelOrigClientOrderID string            `json:"cancelOrigClientOrderId,omitempty"`
	CancelOrderID           uint64            `json:"cancelOrderId,omitempty"`
	OrderParams
}

// Validate checks the request before it is sent.
func (r *CancelReplaceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.CancelOrderID == 0 && r.CancelOrigClientOrderID == "" {
		return errors.New("cancelOrderId or cancelOrigClientOrderId is required")
	}
	return r.check()
}

// AllOrdersRequest lists orders of a symbol, most recent first unless OrderID is set.
type AllOrdersRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	OrderID   uint64 `json:"orderId,omitempty"`
	StartTime int64  `json:"startTime,omitempty"`
	EndTime   int64  `json:"endTime,omitempty"`
	Limit     uint16 `json:"limit,omitempty" validate:"omitempty,max=1000"`
}

// Validate checks the request before it is sent.
func (r *AllOrdersRequest) Validate() error {
	return validate.Struct(r)
}

// AccountTradesRequest lists the account's trades on a symbol. The window
// between StartTime and EndTime cannot exceed 24 hours.
type AccountTradesRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	OrderID   uint64 `json:"orderId,omitempty"`
	StartTime int64  `json:"startTime,omitempty"`
	EndTime   int64  `json:"endTime,omitempty"`
	FromID    uint64 `json:"fromId,omitempty"`
	Limit     uint16 `json:"limit,omitempty" validate:"omitempty,max=1000"`
}

var errTradeWindow = errors.New("startTime to endTime window exceeds 24 hours")

// Validate checks the request before it is sent.
func (r *AccountTradesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.StartTime != 0 && r.EndTime != 0 && r.EndTime-r.StartTime > 24*60*60*1000 {
		return errTradeWindow
	}
	return nil
}

// Fill is one execution of a FULL order response.
type Fill struct {
	Price           apd.Decimal `json:"price"`
	Qty             apd.Decimal `json:"qty"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
	TradeID         uint64      `json:"tradeId"`
}

// OrderAck is the ACK order response.
type OrderAck struct {
	Symbol        string `json:"symbol" validate:"required"`
	OrderID       uint64 `json:"orderId" validate:"required"`
	OrderListID   int64  `json:"orderListId"`
	ClientOrderID string `json:"clientOrderId" validate:"required"`
	TransactTime  int64  `json:"transactTime" validate:"required"`
}

// OrderResponse is the new order response. RESULT responses fill the order
// state fields and FULL responses also carry Fills; ACK leaves both empty.
type OrderResponse struct {
	OrderAck
	Price               *apd.Decimal `json:"price,omitempty"`
	OrigQty             *apd.Decimal `json:"origQty,omitempty"`
	ExecutedQty         *apd.Decimal `json:"executedQty,omitempty"`
	CummulativeQuoteQty *apd.Decimal `json:"cummulativeQuoteQty,omitempty"`
	Status              OrderStatus  `json:"status,omitempty"`
	TimeInForce         TimeInForce  `json:"timeInForce,omitempty"`
	Type                OrderType    `json:"type,omitempty"`
	Side                OrderSide    `json:"side,omitempty"`
	StrategyID          uint32       `json:"strategyId,omitempty"`
	StrategyType        uint32       `json:"strategyType,omitempty"`
	Fills               []Fill       `json:"fills,omitempty"`
}

// CancelOrderResponse is the state of a canceled order.
type CancelOrderResponse struct {
	Symbol              string      `json:"symbol" validate:"required"`
	OrigClientOrderID   string      `json:"origClientOrderId"`
	OrderID             uint64      `json:"orderId" validate:"required"`
	OrderListID         int64       `json:"orderListId"`
	ClientOrderID       string      `json:"clientOrderId"`
	Price               apd.Decimal `json:"price"`
	OrigQty             apd.Decimal `json:"origQty"`
	ExecutedQty         apd.Decimal `json:"executedQty"`
	CummulativeQuoteQty apd.Decimal `json:"cummulativeQuoteQty"`
	Status              OrderStatus `json:"status" validate:"required"`
	TimeInForce         TimeInForce `json:"timeInForce"`
	Type                OrderType   `json:"type"`
	Side                OrderSide   `json:"side"`
}

// CancelReplaceResponse reports both halves of a successful cancel-replace.
type CancelReplaceResponse struct {
	CancelResult     string              `json:"cancelResult" validate:"required"`
	NewOrderResult   string              `json:"newOrderResult" validate:"required"`
	CancelResponse   CancelOrderResponse `json:"cancelResponse"`
	NewOrderResponse OrderResponse       `json:"newOrderResponse"`
}

// OrderInfo is the state of an order.
type OrderInfo struct {
	Symbol              string      `json:"symbol" validate:"required"`
	OrderID             uint64      `json:"orderId" validate:"required"`
	OrderListID         int64       `json:"orderListId"`
	ClientOrderID       string      `json:"clientOrderId"`
	Price               apd.Decimal `json:"price"`
	OrigQty             apd.Decimal `json:"origQty"`
	ExecutedQty         apd.Decimal `json:"executedQty"`
	CummulativeQuoteQty apd.Decimal `json:"cummulativeQuoteQty"`
	Status              OrderStatus `json:"status" validate:"required"`
	TimeInForce         TimeInForce `json:"timeInForce"`
	Type                OrderType   `json:"type"`
	Side                OrderSide   `json:"side"`
	StopPrice           apd.Decimal `json:"stopPrice"`
	IcebergQty          apd.Decimal `json:"icebergQty"`
	Time                int64       `json:"time"`
	UpdateTime          int64       `json:"updateTime"`
	IsWorking           bool        `json:"isWorking"`
	OrigQuoteOrderQty   apd.Decimal `json:"origQuoteOrderQty"`
}

// Balance is the free and locked amount of one asset.
type Balance struct {
	Asset  string      `json:"asset"`
	Free   apd.Decimal `json:"free"`
	Locked apd.Decimal `json:"locked"`
}

// AccountInfo is the account's commissions, permissions and balances.
type AccountInfo struct {
	MakerCommission  uint64    `json:"makerCommission"`
	TakerCommission  uint64    `json:"takerCommission"`
	BuyerCommission  uint64    `json:"buyerCommission"`
	SellerCommission uint64    `json:"sellerCommission"`
	CanTrade         bool      `json:"canTrade"`
	CanWithdraw      bool      `json:"canWithdraw"`
	CanDeposit       bool      `json:"canDeposit"`
	Brokered         bool      `json:"brokered"`
	UpdateTime       int64     `json:"updateTime" validate:"required"`
	AccountType      string    `json:"accountType" validate:"required"`
	Balances         []Balance `json:"balances"`
	Permissions      []string  `json:"permissions"`
}

// AccountTrade is one of the account's fills.
type AccountTrade struct {
	Symbol          string      `json:"symbol" validate:"required"`
	ID              uint64      `json:"id" validate:"required"`
	OrderID         uint64      `json:"orderId"`
	OrderListID     int64       `json:"orderListId"`
	Price           apd.Decimal `json:"price"`
	Qty             apd.Decimal `json:"qty"`
	QuoteQty        apd.Decimal `json:"quoteQty"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
	Time            int64       `json:"time"`
	IsBuyer         bool        `json:"isBuyer"`
	IsMaker         bool        `json:"isMaker"`
	IsBestMatch     bool        `json:"isBestMatch"`
}

// OrderRateLimit is the account's current order count for one window.
type OrderRateLimit = market.RateLimit
