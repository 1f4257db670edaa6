package client

import (
	"context"
	"net/http"

	"github.com/swingbot/goswing/binance/types"
)

// AccountInformation fetches the full account state, including every
// asset balance. Signed call.
func (c *Client) AccountInformation(ctx context.Context) (*types.AccountSnapshot, error) {
	body, err := c.http.Do(ctx, http.MethodGet, EndpointAccount, nil, AuthSigned)
	if err != nil {
		return nil, err
	}
	var snap types.AccountSnapshot
	if err := decode(body, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// OpenOrders returns the account's open orders for one symbol. Signed call.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]types.Order, error) {
	params := NewParams().Add("symbol", symbol)
	body, err := c.http.Do(ctx, http.MethodGet, EndpointOpenOrders, params, AuthSigned)
	if err != nil {
		return nil, err
	}
	var orders []types.Order
	if err := decode(body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// MyTrades returns the account's fills for one symbol, oldest to newest
// as the exchange reports them. Signed call.
func (c *Client) MyTrades(ctx context.Context, symbol string) ([]types.Trade, error) {
	params := NewParams().Add("symbol", symbol)
	body, err := c.http.Do(ctx, http.MethodGet, EndpointMyTrades, params, AuthSigned)
	if err != nil {
		return nil, err
	}
	var trades []types.Trade
	if err := decode(body, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// LastTrade returns the most recent fill for the symbol, or nil when the
// account has no trade history there. Absence is a successful outcome,
// distinct from any fetch or parse failure.
func (c *Client) LastTrade(ctx context.Context, symbol string) (*types.Trade, error) {
	trades, err := c.MyTrades(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, nil
	}
	last := trades[len(trades)-1]
	return &last, nil
}
