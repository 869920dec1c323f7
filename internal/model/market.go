package model

import "time"

// Candle represents a single day's OHLCV data for an instrument.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// MonthlyCandle represents one calendar month's aggregated OHLCV data.
//
// Month carries the month identity as a date string (e.g. "2025-10-31");
// the first seven characters form the "YYYY-MM" key used by the performance
// axis. When Month is empty, Date is used as a fallback identity. Open and
// Close are pointers because a month may be present in a feed without a
// usable open or close; missing means unknown, never zero.
type MonthlyCandle struct {
	Month  string    `json:"month,omitempty"`
	Date   time.Time `json:"date,omitzero"`
	Open   *float64  `json:"open"`
	High   *float64  `json:"high"`
	Low    *float64  `json:"low"`
	Close  *float64  `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceMapEntry holds the market data for one instrument as delivered by the
// market price provider. The core never mutates entries.
type PriceMapEntry struct {
	RawTicker string `json:"rawTicker"`
	Currency  string `json:"currency"`
	// LastPrice is the last traded price; nil when the price is unknown.
	LastPrice *float64 `json:"lastPrice"`
	// Daily is the daily OHLCV series in ascending date order. Today's-gain
	// calculation needs at least the two most recent entries.
	Daily []Candle `json:"daily"`
	// Monthly is the monthly OHLCV series in ascending month order.
	Monthly []MonthlyCandle `json:"monthly"`
}

// PriceMap maps ticker keys to market data. A key may appear in multiple
// suffix variants (e.g. "TCS" and "TCS.NS") pointing at the same data.
// An absent ticker means "price unknown", not zero.
type PriceMap map[string]PriceMapEntry
