package testutil

import (
	"context"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// MockPriceProvider is a service.PriceProvider that returns canned data.
// It records the ticker sets it was asked for, so tests can assert what the
// service requested.
type MockPriceProvider struct {
	Prices model.PriceMap
	Err    error

	// Requests holds one entry per PriceMap call.
	Requests [][]string
}

// NewMockPriceProvider creates a mock provider serving the given price map.
func NewMockPriceProvider(prices model.PriceMap) *MockPriceProvider {
	if prices == nil {
		prices = model.PriceMap{}
	}
	return &MockPriceProvider{Prices: prices}
}

// PriceMap returns the canned price map or error.
func (m *MockPriceProvider) PriceMap(_ context.Context, tickers []string) (model.PriceMap, error) {
	m.Requests = append(m.Requests, tickers)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Prices, nil
}

// PriceEntry builds a PriceMapEntry with a last price, a two-day daily series
// ending at that price, and a two-month monthly series anchored at prevClose.
// That is enough market data for today's-gain and growth-index calculations.
func PriceEntry(lastPrice, prevClose float64) model.PriceMapEntry {
	price := lastPrice
	return model.PriceMapEntry{
		Currency:  "INR",
		LastPrice: &price,
		Daily: []model.Candle{
			{Close: prevClose},
			{Close: lastPrice},
		},
		Monthly: []model.MonthlyCandle{
			{Month: "2026-07", Open: Float(prevClose), Close: Float(prevClose)},
			{Month: "2026-08", Open: Float(prevClose), Close: Float(lastPrice)},
		},
	}
}

// Float returns a pointer to v, for optional price fields.
func Float(v float64) *float64 { return &v }
