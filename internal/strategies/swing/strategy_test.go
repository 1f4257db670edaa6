package swing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingbot/goswing/binance/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fakeGateway scripts one cycle's worth of exchange responses.
type fakeGateway struct {
	snapshot    *types.AccountSnapshot
	snapshotErr error
	lastTrade   *types.Trade
	lastErr     error
	price       decimal.Decimal
	priceErr    error

	placed     []placedOrder
	placeErr   error
	placedFill *types.Trade // reported by LastTrade after an order goes through
	tradeCalls int
}

type placedOrder struct {
	symbol   string
	side     types.Side
	quantity decimal.Decimal
}

func (f *fakeGateway) AccountInformation(context.Context) (*types.AccountSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

func (f *fakeGateway) LastTrade(context.Context, string) (*types.Trade, error) {
	f.tradeCalls++
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	if len(f.placed) > 0 && f.placedFill != nil {
		return f.placedFill, nil
	}
	return f.lastTrade, nil
}

func (f *fakeGateway) PriceOf(context.Context, string) (types.PriceQuote, error) {
	if f.priceErr != nil {
		return types.PriceQuote{}, f.priceErr
	}
	return types.PriceQuote{Symbol: "BTCETH", Price: f.price}, nil
}

func (f *fakeGateway) PlaceMarketOrder(_ context.Context, symbol string, side types.Side, quantity decimal.Decimal) (*types.Order, error) {
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	f.placed = append(f.placed, placedOrder{symbol: symbol, side: side, quantity: quantity})
	return &types.Order{
		Symbol:  symbol,
		OrderID: int64(len(f.placed)),
		Side:    side,
		Type:    types.OrderTypeMarket,
		OrigQty: quantity,
		Status:  types.OrderStatusFilled,
	}, nil
}

func defaultSnapshot() *types.AccountSnapshot {
	return &types.AccountSnapshot{Balances: []types.AccountBalance{
		{Asset: "BTC", Free: dec("0.5")},
		{Asset: "ETH", Free: dec("10")},
	}}
}

func trade(price string, isBuyer bool) *types.Trade {
	return &types.Trade{ID: 1, Price: dec(price), Qty: dec("0.01"), IsBuyer: isBuyer}
}

func newStrategy(gw Gateway) *Strategy {
	return New(Config{
		BaseAsset:        "BTC",
		QuoteAsset:       "ETH",
		QuantityPerTrade: dec("0.01"),
		ThresholdPercent: dec("2"),
	}, gw)
}

func TestCycleSellAfterBuyOnRise(t *testing.T) {
	// Last trade was a BUY at 100, price rose to 103: change is +2.91%,
	// above the 2% threshold, so the bot sells.
	gw := &fakeGateway{
		snapshot:   defaultSnapshot(),
		lastTrade:  trade("100", true),
		price:      dec("103"),
		placedFill: trade("103", false),
	}

	outcome, err := newStrategy(gw).RunCycle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, outcome.Order)
	require.Len(t, gw.placed, 1)
	assert.Equal(t, types.SideSell, gw.placed[0].side)
	assert.Equal(t, "BTCETH", gw.placed[0].symbol)
	assert.True(t, gw.placed[0].quantity.Equal(dec("0.01")))
	assert.Equal(t, "2.91", outcome.ChangePercent.Round(2).String())
}

func TestCycleBuyAfterSellOnDrop(t *testing.T) {
	// Last trade was a SELL at 100, price dropped to 97: change is
	// -3.09%, below -2%, so the bot buys back in.
	gw := &fakeGateway{
		snapshot:   defaultSnapshot(),
		lastTrade:  trade("100", false),
		price:      dec("97"),
		placedFill: trade("97", true),
	}

	outcome, err := newStrategy(gw).RunCycle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, outcome.Order)
	require.Len(t, gw.placed, 1)
	assert.Equal(t, types.SideBuy, gw.placed[0].side)
	assert.Equal(t, "-3.09", outcome.ChangePercent.Round(2).String())
}

func TestCycleNoOrderInsideThreshold(t *testing.T) {
	// +0.5% after a BUY is inside the 2% threshold: no order, and that
	// is a successful cycle.
	gw := &fakeGateway{
		snapshot:  defaultSnapshot(),
		lastTrade: trade("100", true),
		price:     dec("100.5"),
	}

	outcome, err := newStrategy(gw).RunCycle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, outcome.Order)
	assert.Empty(t, gw.placed)
}

func TestCycleFreshAccountBuys(t *testing.T) {
	// No prior trade: SELL bias with last price 0 makes the synthetic
	// change 100%, so a fresh account enters with a BUY.
	gw := &fakeGateway{
		snapshot:   defaultSnapshot(),
		lastTrade:  nil,
		price:      dec("50"),
		placedFill: trade("50", true),
	}

	outcome, err := newStrategy(gw).RunCycle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, outcome.Order)
	assert.Equal(t, types.SideBuy, outcome.Order.Side)
	assert.Equal(t, types.SideSell, outcome.LastTradeSide)
	assert.True(t, outcome.LastTradePrice.IsZero())
	assert.True(t, outcome.ChangePercent.Equal(dec("100")))
}

func TestCycleFreshAccountHoldsAboveHundredThreshold(t *testing.T) {
	// The synthetic change is exactly 100%, so a threshold beyond 100
	// keeps even a fresh account out of the market.
	gw := &fakeGateway{
		snapshot:  defaultSnapshot(),
		lastTrade: nil,
		price:     dec("50"),
	}
	s := New(Config{
		BaseAsset:        "BTC",
		QuoteAsset:       "ETH",
		QuantityPerTrade: dec("0.01"),
		ThresholdPercent: dec("150"),
	}, gw)

	outcome, err := s.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, outcome.Order)
}

func TestCycleAbortsOnExchangeError(t *testing.T) {
	gw := &fakeGateway{
		snapshot:  defaultSnapshot(),
		lastTrade: trade("100", true),
		priceErr:  errTeapot{},
	}

	_, err := newStrategy(gw).RunCycle(context.Background())
	require.Error(t, err)
	assert.Empty(t, gw.placed, "a failed fetch must not place an order")
}

type errTeapot struct{}

func (errTeapot) Error() string { return `exchange returned HTTP 418: {"code":-1003,"msg":"Too many requests"}` }

func TestCycleAbortsOnMissingBalance(t *testing.T) {
	gw := &fakeGateway{
		snapshot: &types.AccountSnapshot{Balances: []types.AccountBalance{
			{Asset: "BTC", Free: dec("0.5")},
			// ETH missing: configuration/data error, not a signal.
		}},
		lastTrade: trade("100", true),
		price:     dec("103"),
	}

	_, err := newStrategy(gw).RunCycle(context.Background())
	var missing *types.MissingBalanceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ETH", missing.Asset)
	assert.Empty(t, gw.placed)
}

func TestCycleRefetchesHistoryForReport(t *testing.T) {
	gw := &fakeGateway{
		snapshot:  defaultSnapshot(),
		lastTrade: trade("100", true),
		price:     dec("100.5"),
	}

	_, err := newStrategy(gw).RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, gw.tradeCalls, "decision fetch plus reporting re-fetch")
}

func TestDecideTotality(t *testing.T) {
	threshold := dec("2")
	cases := []struct {
		name     string
		lastSide types.Side
		change   string
		want     types.Side
		act      bool
	}{
		{"buy then big rise sells", types.SideBuy, "2.91", types.SideSell, true},
		{"buy then small rise holds", types.SideBuy, "0.5", "", false},
		{"buy then exact threshold holds", types.SideBuy, "2", "", false},
		{"buy then drop holds", types.SideBuy, "-5", "", false},
		{"sell then big drop buys", types.SideSell, "-3.09", types.SideBuy, true},
		{"sell then small drop holds", types.SideSell, "-0.5", "", false},
		{"sell then exact negative threshold holds", types.SideSell, "-2", "", false},
		{"sell then rise holds", types.SideSell, "5", "", false},
		{"sell then rise holds even when large", types.SideSell, "100", "", false},
		{"zero change holds either way", types.SideBuy, "0", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			side, act := decide(tc.lastSide, dec(tc.change), threshold)
			assert.Equal(t, tc.act, act)
			assert.Equal(t, tc.want, side)
		})
	}
}

func TestPriceChangePercent(t *testing.T) {
	assert.Equal(t, "100", priceChangePercent(dec("50"), dec("0")).String())
	assert.True(t, priceChangePercent(dec("103"), dec("100")).Sub(dec("2.9126")).Abs().LessThan(dec("0.001")))
	assert.True(t, priceChangePercent(dec("97"), dec("100")).Add(dec("3.0928")).Abs().LessThan(dec("0.001")))
}

func TestConfigValidate(t *testing.T) {
	valid := Config{BaseAsset: "BTC", QuoteAsset: "ETH", QuantityPerTrade: dec("0.01"), ThresholdPercent: dec("2")}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "BTCETH", valid.Symbol())

	for name, mutate := range map[string]func(*Config){
		"empty base":     func(c *Config) { c.BaseAsset = "" },
		"same assets":    func(c *Config) { c.QuoteAsset = "BTC" },
		"zero quantity":  func(c *Config) { c.QuantityPerTrade = decimal.Zero },
		"zero threshold": func(c *Config) { c.ThresholdPercent = decimal.Zero },
	} {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
