package client

import "fmt"

// TransportError means no response was received at all: DNS failure,
// connection reset, or the per-request timeout expiring.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExchangeHTTPError is a non-2xx response. Body carries the raw exchange
// payload, which contains machine-readable error codes and must be
// surfaced verbatim, never swallowed.
type ExchangeHTTPError struct {
	Status int
	Body   string
}

func (e *ExchangeHTTPError) Error() string {
	return fmt.Sprintf("exchange returned HTTP %d: %s", e.Status, e.Body)
}

// ResponseParseError is a 2xx response whose body did not decode into the
// documented schema. The raw body is kept for diagnostics.
type ResponseParseError struct {
	Body string
	Err  error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("parse response: %v (body: %s)", e.Err, e.Body)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }

// UnknownSymbolError means the requested symbol was absent from the full
// price list. A lookup never falls back to a zero price.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("no symbol %s exists in the price list", e.Symbol)
}
