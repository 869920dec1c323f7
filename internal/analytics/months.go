package analytics

import (
	"sort"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// DefaultMonthsCount is the trailing window of the performance axis.
const DefaultMonthsCount = 6

// niftyVariants are the price-map keys tried, in order, for the Nifty
// reference instrument that anchors the common month axis.
var niftyVariants = []string{"^NSEI", "^NSEI.NS", "NSEI"}

// MonthAxis extracts the trailing monthsCount calendar months from a
// reference instrument's monthly series, as "YYYY-MM" keys shared by all
// growth series.
//
// The Nifty index is preferred as the reference; failing that, the first
// price-map entry (in sorted key order, for determinism) with a non-empty
// monthly series is used. If no reference exists the axis is empty and
// performance computation yields no data. Months whose identity cannot be
// parsed are dropped from the axis.
func MonthAxis(prices model.PriceMap, monthsCount int) []string {
	if monthsCount <= 0 {
		monthsCount = DefaultMonthsCount
	}

	var source []model.MonthlyCandle
	for _, key := range niftyVariants {
		if entry, ok := prices[key]; ok && len(entry.Monthly) > 0 {
			source = entry.Monthly
			break
		}
	}
	if source == nil {
		keys := make([]string, 0, len(prices))
		for k := range prices {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if len(prices[k].Monthly) > 0 {
				source = prices[k].Monthly
				break
			}
		}
	}
	if source == nil {
		return nil
	}

	if len(source) > monthsCount {
		source = source[len(source)-monthsCount:]
	}

	months := make([]string, 0, len(source))
	for _, mc := range source {
		if key, ok := monthKey(mc); ok {
			months = append(months, key)
		}
	}
	return months
}

// monthKey normalizes a monthly candle's identity to "YYYY-MM", taking the
// explicit month string first and the date field as fallback.
func monthKey(mc model.MonthlyCandle) (string, bool) {
	if len(mc.Month) >= 7 {
		key := mc.Month[:7]
		if _, err := time.Parse("2006-01", key); err == nil {
			return key, true
		}
	}
	if !mc.Date.IsZero() {
		return mc.Date.UTC().Format("2006-01"), true
	}
	return "", false
}
