package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthly(t *testing.T) {
	t.Run("aggregates one month of candles", func(t *testing.T) {
		indicators := []Indicators{
			{Date: day(2026, 8, 3), PriceOpen: 100, PriceHigh: 105, PriceLow: 99, PriceClose: 104, Volume: 10},
			{Date: day(2026, 8, 4), PriceOpen: 104, PriceHigh: 110, PriceLow: 103, PriceClose: 108, Volume: 20},
			{Date: day(2026, 8, 5), PriceOpen: 108, PriceHigh: 109, PriceLow: 101, PriceClose: 102, Volume: 30},
		}

		monthly := AggregateMonthly(indicators, MonthlyWindow)
		require.Len(t, monthly, 1)

		m := monthly[0]
		assert.Equal(t, "2026-08", m.Month)
		assert.Equal(t, day(2026, 8, 1), m.Date)
		require.NotNil(t, m.Open)
		assert.Equal(t, 100.0, *m.Open)
		require.NotNil(t, m.High)
		assert.Equal(t, 110.0, *m.High)
		require.NotNil(t, m.Low)
		assert.Equal(t, 99.0, *m.Low)
		require.NotNil(t, m.Close)
		assert.Equal(t, 102.0, *m.Close)
		assert.Equal(t, int64(60), m.Volume)
	})

	t.Run("keeps trailing window in ascending order", func(t *testing.T) {
		var indicators []Indicators
		// One candle per month, January through August.
		for m := time.January; m <= time.August; m++ {
			v := float64(100 + int(m))
			indicators = append(indicators, Indicators{
				Date: day(2026, m, 15), PriceOpen: v, PriceHigh: v, PriceLow: v, PriceClose: v, Volume: 1,
			})
		}

		monthly := AggregateMonthly(indicators, MonthlyWindow)
		require.Len(t, monthly, MonthlyWindow)
		assert.Equal(t, "2026-03", monthly[0].Month)
		assert.Equal(t, "2026-08", monthly[5].Month)
	})

	t.Run("spans a year boundary", func(t *testing.T) {
		indicators := []Indicators{
			{Date: day(2025, 12, 30), PriceOpen: 90, PriceClose: 91},
			{Date: day(2026, 1, 2), PriceOpen: 92, PriceClose: 93},
		}

		monthly := AggregateMonthly(indicators, MonthlyWindow)
		require.Len(t, monthly, 2)
		assert.Equal(t, "2025-12", monthly[0].Month)
		assert.Equal(t, "2026-01", monthly[1].Month)
	})

	t.Run("zero open means unknown open", func(t *testing.T) {
		indicators := []Indicators{
			{Date: day(2026, 8, 3), PriceOpen: 0, PriceClose: 104},
			{Date: day(2026, 8, 4), PriceOpen: 104, PriceClose: 108},
		}

		monthly := AggregateMonthly(indicators, MonthlyWindow)
		require.Len(t, monthly, 1)
		require.NotNil(t, monthly[0].Open)
		assert.Equal(t, 104.0, *monthly[0].Open)
	})

	t.Run("month with no usable open gets nil open", func(t *testing.T) {
		indicators := []Indicators{
			{Date: day(2026, 8, 3), PriceClose: 104},
		}

		monthly := AggregateMonthly(indicators, MonthlyWindow)
		require.Len(t, monthly, 1)
		assert.Nil(t, monthly[0].Open)
		require.NotNil(t, monthly[0].Close)
		assert.Equal(t, 104.0, *monthly[0].Close)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, AggregateMonthly(nil, MonthlyWindow))
	})
}
