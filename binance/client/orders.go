package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swingbot/goswing/binance/types"
)

// orderEndpoint honors the process-wide test mode: the validate-only
// endpoint checks parameters without executing the trade.
func (c *Client) orderEndpoint() string {
	if c.testMode {
		return EndpointOrderTest
	}
	return EndpointOrder
}

// newClientOrderID tags each placed order so fills can be traced back to
// this process in the exchange's trade history.
func newClientOrderID() string {
	return "gsw-" + uuid.NewString()
}

// PlaceOrder submits an order of any supported type. Signed POST.
func (c *Client) PlaceOrder(
	ctx context.Context,
	symbol string,
	side types.Side,
	orderType types.OrderType,
	timeInForce types.TimeInForce,
	quantity decimal.Decimal,
	price decimal.Decimal,
) (*types.Order, error) {
	params := NewParams().
		Add("symbol", symbol).
		Add("side", string(side)).
		Add("type", string(orderType)).
		Add("timeInForce", string(timeInForce)).
		Add("quantity", quantity.String()).
		Add("price", price.String()).
		Add("newClientOrderId", newClientOrderID())

	return c.submitOrder(ctx, params)
}

// PlaceMarketOrder submits a market order, which needs neither price nor
// timeInForce. Signed POST.
func (c *Client) PlaceMarketOrder(
	ctx context.Context,
	symbol string,
	side types.Side,
	quantity decimal.Decimal,
) (*types.Order, error) {
	params := NewParams().
		Add("symbol", symbol).
		Add("side", string(side)).
		Add("type", string(types.OrderTypeMarket)).
		Add("quantity", quantity.String()).
		Add("newClientOrderId", newClientOrderID())

	return c.submitOrder(ctx, params)
}

func (c *Client) submitOrder(ctx context.Context, params *Params) (*types.Order, error) {
	body, err := c.http.Do(ctx, http.MethodPost, c.orderEndpoint(), params, AuthSigned)
	if err != nil {
		return nil, err
	}
	var order types.Order
	if err := decode(body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
