package market

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API. This type maps directly to the chart endpoint's response format,
// containing nested structures for metadata, timestamps, and price indicators.
//
// Price arrays use pointers because Yahoo emits JSON null for days where an
// instrument has a timestamp but no trade data; those gaps must survive
// parsing so downstream aggregation can skip them instead of reading zeroes.
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level payload of a chart response. Result typically
// contains a single element; Error carries an optional API error message.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result is one instrument's chart data: metadata, Unix timestamps, and
// index-aligned price indicator arrays.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta carries instrument metadata from the chart response.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	ExchangeName       string  `json:"exchangeName"`
	FullExchangeName   string  `json:"fullExchangeName"`
	LongName           string  `json:"longName"`
	Shortname          string  `json:"shortName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// IndicatorsContainer wraps the quote arrays of a chart result.
type IndicatorsContainer struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the parallel OHLCV arrays, index-aligned with the result's
// Timestamp array.
type Quote struct {
	Open   []*float64 `json:"open"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
}

// PriceChart represents a parsed and structured price chart. This is the
// application's internal representation after parsing the raw Response:
// instrument metadata plus a time-series of daily price points with proper
// time.Time dates, with null trading days already filtered out.
type PriceChart struct {
	Currency           string       `json:"currency"`
	Symbol             string       `json:"symbol"`
	ExchangeName       string       `json:"exchangeName"`
	FullExchangeName   string       `json:"fullExchangeName"`
	LongName           string       `json:"longName"`
	Shortname          string       `json:"shortName"`
	RegularMarketPrice float64      `json:"regularMarketPrice"`
	Indicators         []Indicators `json:"indicators"`
}

// Indicators represents a single trading day's OHLCV data.
//
// Fields:
//   - Date: Trading date (midnight UTC)
//   - PriceOpen: Opening price for the day
//   - PriceClose: Closing price for the day
//   - PriceHigh: Highest price during the day
//   - PriceLow: Lowest price during the day
//   - Volume: Number of shares traded during the day
type Indicators struct {
	Date       time.Time
	PriceOpen  float64
	PriceClose float64
	Volume     int64
	PriceHigh  float64
	PriceLow   float64
}
