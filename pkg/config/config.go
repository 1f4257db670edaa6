// Package config loads the bot configuration from a YAML file with
// environment overrides for secrets. Configuration is read once at startup
// and passed down by value; nothing re-reads it at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/swingbot/goswing/pkg/logger"
)

// Environment variable names that override file values. Keys and the
// secret should come from the environment so they stay out of config
// files checked into version control.
const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
	EnvTestMode  = "GOSWING_TEST_MODE"
)

// Config is the full bot configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Trade TradeConfig `yaml:"trade"`
	Log   LogConfig   `yaml:"log"`
}

// APIConfig configures the exchange client.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"`
	Key     string `yaml:"key"`
	Secret  string `yaml:"secret"`
	// RecvWindowMs, when positive, bounds how stale a signed request may
	// be when the server processes it.
	RecvWindowMs int64 `yaml:"recvWindowMs"`
	// TestMode routes order placement to the validate-only endpoint.
	TestMode bool `yaml:"testMode"`
}

// TradeConfig configures the decision engine and scheduler.
type TradeConfig struct {
	// BaseAsset and QuoteAsset compose the trading pair, e.g. BTC + ETH
	// trade as symbol BTCETH.
	BaseAsset  string `yaml:"baseAsset"`
	QuoteAsset string `yaml:"quoteAsset"`

	QuantityPerTrade decimal.Decimal `yaml:"quantityPerTrade"`
	ThresholdPercent decimal.Decimal `yaml:"thresholdPercent"`

	PollIntervalMinutes int `yaml:"pollIntervalMinutes"`
}

// LogConfig mirrors logger.Config in the YAML file.
type LogConfig struct {
	Level      string `yaml:"level"`
	OutputFile string `yaml:"outputFile"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// ToLoggerConfig converts the YAML shape into the logger package's own.
func (l LogConfig) ToLoggerConfig() logger.Config {
	return logger.Config{
		Level:      l.Level,
		OutputFile: l.OutputFile,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// Load reads the YAML file at path, applies .env plus process environment
// overrides, fills defaults, and validates.
func Load(path string) (*Config, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.API.Key = v
	}
	if v := os.Getenv(EnvAPISecret); v != "" {
		c.API.Secret = v
	}
	if v := os.Getenv(EnvTestMode); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.API.TestMode = b
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Trade.PollIntervalMinutes <= 0 {
		c.Trade.PollIntervalMinutes = 5
	}
}

// Validate rejects configurations the bot cannot trade with.
func (c *Config) Validate() error {
	if c.API.Key == "" || c.API.Secret == "" {
		return fmt.Errorf("api key and secret are required (set %s/%s or api.key/api.secret)", EnvAPIKey, EnvAPISecret)
	}
	if c.Trade.BaseAsset == "" || c.Trade.QuoteAsset == "" {
		return fmt.Errorf("trade.baseAsset and trade.quoteAsset are required")
	}
	if c.Trade.BaseAsset == c.Trade.QuoteAsset {
		return fmt.Errorf("trade.baseAsset and trade.quoteAsset must differ")
	}
	if c.Trade.QuantityPerTrade.Sign() <= 0 {
		return fmt.Errorf("trade.quantityPerTrade must be positive")
	}
	if c.Trade.ThresholdPercent.Sign() <= 0 {
		return fmt.Errorf("trade.thresholdPercent must be positive")
	}
	return nil
}
