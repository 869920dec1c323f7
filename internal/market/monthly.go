package market

import (
	"sort"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// MonthlyWindow is the number of trailing calendar months kept in an
// aggregated monthly series.
const MonthlyWindow = 6

// AggregateMonthly rolls a daily indicator series up into calendar-month
// candles and returns the trailing window in ascending month order.
//
// Per month: open is the first trading day's open, high is the maximum high,
// low is the minimum low, close is the last trading day's close, and volume
// is the sum. Zero-valued opens, highs, and lows (null in the upstream feed)
// are skipped rather than aggregated; a month whose every day lacks an open
// gets a nil open.
func AggregateMonthly(indicators []Indicators, window int) []model.MonthlyCandle {
	if window <= 0 || len(indicators) == 0 {
		return nil
	}

	buckets := make(map[string]*model.MonthlyCandle)
	order := make([]string, 0)

	for _, ind := range indicators {
		key := ind.Date.UTC().Format("2006-01")
		mc, ok := buckets[key]
		if !ok {
			d := ind.Date.UTC()
			mc = &model.MonthlyCandle{
				Month: key,
				Date:  time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC),
			}
			buckets[key] = mc
			order = append(order, key)
		}

		if mc.Open == nil && ind.PriceOpen > 0 {
			open := ind.PriceOpen
			mc.Open = &open
		}
		if ind.PriceHigh > 0 && (mc.High == nil || ind.PriceHigh > *mc.High) {
			high := ind.PriceHigh
			mc.High = &high
		}
		if ind.PriceLow > 0 && (mc.Low == nil || ind.PriceLow < *mc.Low) {
			low := ind.PriceLow
			mc.Low = &low
		}
		closePrice := ind.PriceClose
		mc.Close = &closePrice
		mc.Volume += ind.Volume
	}

	sort.Strings(order)
	if len(order) > window {
		order = order[len(order)-window:]
	}

	monthly := make([]model.MonthlyCandle, 0, len(order))
	for _, key := range order {
		monthly = append(monthly, *buckets[key])
	}
	return monthly
}
