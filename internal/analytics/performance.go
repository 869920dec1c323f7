package analytics

import (
	"sort"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// Series names of the performance comparison.
const (
	SeriesPortfolio = "Portfolio"
	SeriesNifty     = "Nifty"
	SeriesSensex    = "Sensex"
)

// Benchmark index tickers.
const (
	TickerNifty  = "^NSEI"
	TickerSensex = "^BSESN"
)

// monthlyQuote is one instrument-month of the lookup: open and close may be
// independently unknown.
type monthlyQuote struct {
	open  *float64
	close *float64
}

// monthlyLookup maps normalized ticker -> "YYYY-MM" -> quote.
type monthlyLookup map[string]map[string]monthlyQuote

// buildMonthlyLookup indexes every price-map entry's monthly series by
// normalized ticker and month key. Raw keys are visited in sorted order so
// suffix variants that collide after normalization resolve deterministically.
func buildMonthlyLookup(prices model.PriceMap) monthlyLookup {
	keys := make([]string, 0, len(prices))
	for k := range prices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lookup := make(monthlyLookup)
	for _, rawKey := range keys {
		entry := prices[rawKey]
		if len(entry.Monthly) == 0 {
			continue
		}
		norm := NormalizeTicker(rawKey)
		byMonth := make(map[string]monthlyQuote, len(entry.Monthly))
		for _, mc := range entry.Monthly {
			key, ok := monthKey(mc)
			if !ok {
				continue
			}
			byMonth[key] = monthlyQuote{open: mc.Open, close: mc.Close}
		}
		lookup[norm] = byMonth
	}
	return lookup
}

// ComputePerformance builds the month-by-month comparative growth index for
// the portfolio and both benchmarks over a common trailing month axis.
//
// Each value is a cumulative index anchored to the axis's first month, not a
// month-over-month delta: growthPct = round(close/anchor*100, 2), where the
// anchor is the instrument's open in the first axis month. A missing anchor
// nulls the whole series; a missing intermediate close nulls only that month,
// since the anchor never changes.
//
// The portfolio anchor is the sum of shares times each holding's first-month
// open. If any holding's anchor open is unresolved, or the anchor sums to
// zero, the entire portfolio series is null (same fail-closed policy as the
// summary's current value). A month where any holding's close is missing is
// null for that month only.
//
// An empty axis yields an empty result, not an error.
func ComputePerformance(holdings []model.Holding, prices model.PriceMap) []model.GrowthSeries {
	months := MonthAxis(prices, DefaultMonthsCount)
	if len(months) == 0 {
		return []model.GrowthSeries{}
	}

	lookup := buildMonthlyLookup(prices)

	return []model.GrowthSeries{
		{Name: SeriesPortfolio, Series: portfolioSeries(holdings, lookup, months)},
		{Name: SeriesNifty, Series: instrumentSeries(lookup, TickerNifty, months)},
		{Name: SeriesSensex, Series: instrumentSeries(lookup, TickerSensex, months)},
	}
}

// instrumentSeries computes the growth index of a single instrument.
func instrumentSeries(lookup monthlyLookup, ticker string, months []string) []model.GrowthPoint {
	series := make([]model.GrowthPoint, 0, len(months))
	byMonth, ok := lookup[NormalizeTicker(ticker)]
	if !ok {
		return nullSeries(months)
	}

	anchor := byMonth[months[0]].open
	if anchor == nil {
		return nullSeries(months)
	}

	for _, m := range months {
		quote, ok := byMonth[m]
		if !ok || quote.close == nil {
			series = append(series, model.GrowthPoint{Month: m})
			continue
		}
		series = append(series, model.GrowthPoint{
			Month:     m,
			GrowthPct: ptr(round2(*quote.close / *anchor * 100)),
		})
	}
	return series
}

// portfolioSeries computes the growth index of the whole portfolio, with the
// anchor summed over all holdings in the first axis month.
func portfolioSeries(holdings []model.Holding, lookup monthlyLookup, months []string) []model.GrowthPoint {
	var anchor float64
	for _, h := range holdings {
		byMonth, ok := lookup[NormalizeTicker(h.Ticker)]
		if !ok {
			return nullSeries(months)
		}
		open := byMonth[months[0]].open
		if open == nil {
			return nullSeries(months)
		}
		anchor += h.Shares * *open
	}
	if anchor == 0 {
		return nullSeries(months)
	}

	series := make([]model.GrowthPoint, 0, len(months))
	for _, m := range months {
		var monthValue float64
		missing := false
		for _, h := range holdings {
			quote := lookup[NormalizeTicker(h.Ticker)][m]
			if quote.close == nil {
				missing = true
				break
			}
			monthValue += h.Shares * *quote.close
		}
		if missing {
			series = append(series, model.GrowthPoint{Month: m})
			continue
		}
		series = append(series, model.GrowthPoint{
			Month:     m,
			GrowthPct: ptr(round2(monthValue / anchor * 100)),
		})
	}
	return series
}

func nullSeries(months []string) []model.GrowthPoint {
	series := make([]model.GrowthPoint, len(months))
	for i, m := range months {
		series[i] = model.GrowthPoint{Month: m}
	}
	return series
}
