// Package swing implements the alternating-direction swing strategy: the
// next order is always the opposite of the last executed trade, and only
// fires once price has moved favorably by the configured percentage since
// that trade.
package swing

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/swingbot/goswing/binance/types"
)

// ID is the strategy identifier, used as the log field.
const ID = "swing"

var hundred = decimal.NewFromInt(100)

// Gateway is the slice of the exchange client one decision cycle needs.
type Gateway interface {
	AccountInformation(ctx context.Context) (*types.AccountSnapshot, error)
	LastTrade(ctx context.Context, symbol string) (*types.Trade, error)
	PriceOf(ctx context.Context, symbol string) (types.PriceQuote, error)
	PlaceMarketOrder(ctx context.Context, symbol string, side types.Side, quantity decimal.Decimal) (*types.Order, error)
}

// Strategy runs one decision cycle per invocation. It holds no state
// across cycles; everything is re-derived from the exchange each time.
type Strategy struct {
	Config

	gateway Gateway
	log     *logrus.Entry
}

func New(cfg Config, gateway Gateway) *Strategy {
	return &Strategy{
		Config:  cfg,
		gateway: gateway,
		log:     logrus.WithField("strategy", ID),
	}
}

// Outcome is what one cycle decided and did.
type Outcome struct {
	// Order is nil when no trade was made.
	Order *types.Order

	LastTradeSide  types.Side
	LastTradePrice decimal.Decimal
	CurrentPrice   decimal.Decimal
	ChangePercent  decimal.Decimal
}

// RunCycle performs one full decision cycle. Any fetch failure aborts the
// cycle without placing an order; the next scheduled cycle retries on its
// own.
func (s *Strategy) RunCycle(ctx context.Context) (*Outcome, error) {
	symbol := s.Symbol()

	snap, err := s.gateway.AccountInformation(ctx)
	if err != nil {
		return nil, err
	}
	base, err := snap.Balance(s.BaseAsset)
	if err != nil {
		return nil, err
	}
	quote, err := snap.Balance(s.QuoteAsset)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("balances: %s free %s, %s free %s", base.Asset, base.Free, quote.Asset, quote.Free)

	// No prior trade means the implicit last action was a SELL with price
	// zero, biasing a fresh account toward its first BUY.
	lastSide := types.SideSell
	lastPrice := decimal.Zero

	lastTrade, err := s.gateway.LastTrade(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if lastTrade != nil {
		lastSide = lastTrade.Side()
		lastPrice = lastTrade.Price
	}

	priceQuote, err := s.gateway.PriceOf(ctx, symbol)
	if err != nil {
		return nil, err
	}
	currentPrice := priceQuote.Price

	changePct := priceChangePercent(currentPrice, lastPrice)
	s.log.Infof("current price is %s, price change is %s%%", currentPrice, changePct)

	outcome := &Outcome{
		LastTradeSide:  lastSide,
		LastTradePrice: lastPrice,
		CurrentPrice:   currentPrice,
		ChangePercent:  changePct,
	}

	// With no entry price the change is a synthetic +100%. A fresh
	// account should still take its first BUY, so the synthetic move
	// counts as a favorable drop; it only fails to trigger when the
	// threshold exceeds 100.
	decisionPct := changePct
	if lastTrade == nil {
		decisionPct = changePct.Neg()
	}

	if side, act := decide(lastSide, decisionPct, s.ThresholdPercent); act {
		order, err := s.gateway.PlaceMarketOrder(ctx, symbol, side, s.QuantityPerTrade)
		if err != nil {
			return nil, err
		}
		outcome.Order = order
		s.log.Infof("order placed: %s %s %s at %s", order.Side, s.QuantityPerTrade, symbol, currentPrice)
	}

	s.report(ctx, symbol, outcome)
	return outcome, nil
}

// priceChangePercent is 100 * (current - last) / current. current is
// validated positive by the gateway before it gets here.
func priceChangePercent(current, last decimal.Decimal) decimal.Decimal {
	return hundred.Mul(current.Sub(last)).Div(current)
}

// decide applies the alternating rule: after a BUY, sell once price rose
// past the threshold; after a SELL, buy once it dropped past it. The rule
// is total — every input lands in exactly one of the three outcomes.
func decide(lastSide types.Side, changePct, threshold decimal.Decimal) (types.Side, bool) {
	switch {
	case lastSide == types.SideBuy && changePct.GreaterThan(threshold):
		return types.SideSell, true
	case lastSide == types.SideSell && changePct.LessThan(threshold.Neg()):
		return types.SideBuy, true
	default:
		return "", false
	}
}

// report re-fetches the trade history to log the realized outcome. This is
// reporting only: the decision is already made, so a failure here is
// logged and otherwise ignored.
func (s *Strategy) report(ctx context.Context, symbol string, outcome *Outcome) {
	trade, err := s.gateway.LastTrade(ctx, symbol)
	if err != nil {
		s.log.Warnf("fetch trade history for report: %v", err)
		return
	}

	if outcome.Order == nil {
		s.log.Info("no trade was made")
		if trade == nil {
			return
		}
		if trade.IsBuyer {
			s.log.Infof("%s of %s was previously bought for %s", trade.Qty, s.BaseAsset, trade.Price)
		} else {
			s.log.Infof("%s of %s was previously sold for %s", trade.Qty, s.BaseAsset, trade.Price)
		}
		return
	}

	if trade == nil {
		// Test mode validates without executing, so no fill appears.
		return
	}
	if outcome.Order.Side == types.SideBuy {
		s.log.Infof("%s of %s was bought for %s", trade.Qty, s.BaseAsset, trade.Price)
	} else {
		s.log.Infof("%s of %s was sold for %s", trade.Qty, s.BaseAsset, trade.Price)
	}
}
