package swing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config is the swing strategy configuration: the pair to trade, a fixed
// quantity per order, and the favorable price move that triggers one.
type Config struct {
	// BaseAsset is the asset being accumulated (C1); QuoteAsset is what
	// it trades against (C2). The pair symbol is their concatenation.
	BaseAsset  string `yaml:"baseAsset" json:"baseAsset"`
	QuoteAsset string `yaml:"quoteAsset" json:"quoteAsset"`

	// QuantityPerTrade is the fixed size of every market order.
	QuantityPerTrade decimal.Decimal `yaml:"quantityPerTrade" json:"quantityPerTrade"`

	// ThresholdPercent is the minimum favorable move, in percent of the
	// current price, relative to the last trade's price.
	ThresholdPercent decimal.Decimal `yaml:"thresholdPercent" json:"thresholdPercent"`
}

// Symbol returns the concatenated pair ticker, e.g. "BTCETH".
func (c *Config) Symbol() string {
	return c.BaseAsset + c.QuoteAsset
}

func (c *Config) Validate() error {
	if c.BaseAsset == "" || c.QuoteAsset == "" {
		return fmt.Errorf("baseAsset and quoteAsset are required")
	}
	if c.BaseAsset == c.QuoteAsset {
		return fmt.Errorf("baseAsset and quoteAsset must differ")
	}
	if c.QuantityPerTrade.Sign() <= 0 {
		return fmt.Errorf("quantityPerTrade must be positive")
	}
	if c.ThresholdPercent.Sign() <= 0 {
		return fmt.Errorf("thresholdPercent must be positive")
	}
	return nil
}
