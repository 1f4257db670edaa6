package client

// REST endpoint paths, relative to the /api/ base path.
const (
	// Public
	EndpointPing      = "v1/ping"
	EndpointTime      = "v1/time"
	EndpointAllPrices = "v1/ticker/allPrices"

	// Signed
	EndpointAccount    = "v3/account"
	EndpointOpenOrders = "v3/openOrders"
	EndpointMyTrades   = "v3/myTrades"
	EndpointOrder      = "v3/order"
	EndpointOrderTest  = "v3/order/test"
)

// DefaultBaseURL is the production REST base path.
const DefaultBaseURL = "https://www.binance.com/api/"
