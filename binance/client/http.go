package client

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/swingbot/goswing/binance/signing"
	"github.com/swingbot/goswing/binance/types"
)

// requestTimeout bounds every request. Exceeding it is a transport
// failure, not a retry trigger; the next cycle retries on its own.
const requestTimeout = 5000 * time.Millisecond

// apiKeyHeader carries the public key. Its presence, together with the
// signature, is how the exchange tells signed endpoints (header +
// signature) from keyed-but-unsigned ones (header only) from public ones.
const apiKeyHeader = "X-MBX-APIKEY"

// AuthLevel selects how a request is authenticated.
type AuthLevel int

const (
	// AuthNone sends neither key nor signature.
	AuthNone AuthLevel = iota
	// AuthKeyed sends the API key header without a signature.
	AuthKeyed
	// AuthSigned sends the API key header and appends timestamp plus
	// signature as the final two query parameters.
	AuthSigned
)

// HTTPClient produces and transmits one request per call. It is stateless
// across calls and safe for concurrent use; every signed request is bound
// to its own signing-time timestamp and never reused.
type HTTPClient struct {
	rest       *resty.Client
	baseURL    string
	creds      types.Credentials
	recvWindow int64

	// now is the signing clock; tests substitute it for fixed timestamps.
	now func() time.Time
}

// NewHTTPClient builds a client for the given base URL. recvWindowMs <= 0
// leaves the recvWindow parameter off signed requests.
func NewHTTPClient(baseURL string, creds types.Credentials, recvWindowMs int64) *HTTPClient {
	rest := resty.New().
		SetTimeout(requestTimeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "goswing")

	return &HTTPClient{
		rest:       rest,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		recvWindow: recvWindowMs,
		now:        time.Now,
	}
}

// Do sends one request and returns the raw response body.
//
// For AuthSigned the query string is serialized in the exact order the
// parameters were added, recvWindow (if configured) and timestamp are
// appended, the HMAC signature is computed over that exact string, and
// signature goes last. The URL is assembled by hand because a url.Values
// round trip would re-sort keys and invalidate the signature.
func (c *HTTPClient) Do(ctx context.Context, method, endpoint string, params *Params, auth AuthLevel) ([]byte, error) {
	if params == nil {
		params = NewParams()
	}

	if auth == AuthSigned {
		if c.recvWindow > 0 {
			params.Add("recvWindow", strconv.FormatInt(c.recvWindow, 10))
		}
		params.Add("timestamp", strconv.FormatInt(c.now().UTC().UnixMilli(), 10))
	}

	query := params.Encode()
	if auth == AuthSigned {
		query += "&signature=" + signing.Sign(c.creds.SecretKey, query)
	}

	reqURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if query != "" {
		reqURL += "?" + query
	}

	req := c.rest.R().SetContext(ctx)
	if auth != AuthNone {
		req.SetHeader(apiKeyHeader, c.creds.APIKey)
	}

	resp, err := req.Execute(method, reqURL)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrapf(err, "%s %s", method, endpoint)}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &ExchangeHTTPError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	return resp.Body(), nil
}
