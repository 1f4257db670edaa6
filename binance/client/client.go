// Package client is the typed gateway to the exchange REST API: one
// method per operation, layered over a signing HTTP transport.
package client

import (
	"encoding/json"

	"github.com/swingbot/goswing/binance/types"
)

// Config carries everything the gateway needs at construction. Credentials
// are loaded once at process start and held read-only for its lifetime.
type Config struct {
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string

	Credentials types.Credentials

	// RecvWindowMs, when positive, is sent on signed requests so the
	// server rejects calls processed too long after signing.
	RecvWindowMs int64

	// TestMode redirects order placement to the validate-only endpoint
	// that checks parameters without executing.
	TestMode bool
}

// Client implements the exchange gateway.
type Client struct {
	http     *HTTPClient
	testMode bool
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		http:     NewHTTPClient(base, cfg.Credentials, cfg.RecvWindowMs),
		testMode: cfg.TestMode,
	}
}

// decode unmarshals a 2xx body, wrapping schema mismatches so the raw
// body stays available. A parse failure is never conflated with absence.
func decode(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &ResponseParseError{Body: string(body), Err: err}
	}
	return nil
}
