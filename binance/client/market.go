package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/swingbot/goswing/binance/types"
)

// Ping tests REST connectivity. It reports true iff the exchange answered
// with the literal empty-object body.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	body, err := c.http.Do(ctx, http.MethodGet, EndpointPing, nil, AuthNone)
	if err != nil {
		return false, err
	}
	return string(body) == "{}", nil
}

// ServerTime returns the exchange clock as epoch milliseconds.
func (c *Client) ServerTime(ctx context.Context) (int64, error) {
	body, err := c.http.Do(ctx, http.MethodGet, EndpointTime, nil, AuthNone)
	if err != nil {
		return 0, err
	}
	var st types.ServerTime
	if err := decode(body, &st); err != nil {
		return 0, err
	}
	return st.ServerTime, nil
}

// AllPrices fetches the current price of every listed symbol.
func (c *Client) AllPrices(ctx context.Context) ([]types.PriceQuote, error) {
	body, err := c.http.Do(ctx, http.MethodGet, EndpointAllPrices, nil, AuthNone)
	if err != nil {
		return nil, err
	}
	var quotes []types.PriceQuote
	if err := decode(body, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// PriceOf returns the quote for one symbol. The exchange has no
// single-symbol price endpoint here, so the full list is fetched and
// filtered; an absent symbol is an UnknownSymbolError, never a zero price.
func (c *Client) PriceOf(ctx context.Context, symbol string) (types.PriceQuote, error) {
	quotes, err := c.AllPrices(ctx)
	if err != nil {
		return types.PriceQuote{}, err
	}
	for _, q := range quotes {
		if q.Symbol == symbol {
			if q.Price.Sign() <= 0 {
				return types.PriceQuote{}, &ResponseParseError{
					Body: fmt.Sprintf("%s=%s", q.Symbol, q.Price),
					Err:  fmt.Errorf("non-positive price for %s", symbol),
				}
			}
			return q, nil
		}
	}
	return types.PriceQuote{}, &UnknownSymbolError{Symbol: symbol}
}
