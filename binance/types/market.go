package types

import (
	"github.com/shopspring/decimal"
)

// PriceQuote is the current price of one symbol from the full ticker list.
type PriceQuote struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// ServerTime is the exchange clock response from v1/time.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// Trade is one executed fill for the caller's account.
type Trade struct {
	ID              int64           `json:"id"`
	Symbol          string          `json:"symbol,omitempty"`
	OrderID         int64           `json:"orderId"`
	Price           decimal.Decimal `json:"price"`
	Qty             decimal.Decimal `json:"qty"`
	Commission      decimal.Decimal `json:"commission"`
	CommissionAsset string          `json:"commissionAsset"`
	Time            int64           `json:"time"`
	IsBuyer         bool            `json:"isBuyer"`
	IsMaker         bool            `json:"isMaker"`
	IsBestMatch     bool            `json:"isBestMatch"`
}

// Side maps the isBuyer flag onto a trade direction.
func (t *Trade) Side() Side {
	if t.IsBuyer {
		return SideBuy
	}
	return SideSell
}

// Order is a placed or queried order.
type Order struct {
	Symbol        string          `json:"symbol"`
	OrderID       int64           `json:"orderId"`
	ClientOrderID string          `json:"clientOrderId"`
	TransactTime  int64           `json:"transactTime,omitempty"`
	Time          int64           `json:"time,omitempty"`
	Price         decimal.Decimal `json:"price"`
	OrigQty       decimal.Decimal `json:"origQty"`
	ExecutedQty   decimal.Decimal `json:"executedQty"`
	Status        OrderStatus     `json:"status"`
	TimeInForce   TimeInForce     `json:"timeInForce"`
	Type          OrderType       `json:"type"`
	Side          Side            `json:"side"`
	IsWorking     bool            `json:"isWorking,omitempty"`
}
