package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// RoundingPrecision rounds percentages to two decimal places.
const RoundingPrecision = 100

func round2(v float64) float64 {
	return math.Round(v*RoundingPrecision) / RoundingPrecision
}

func ptr(v float64) *float64 { return &v }

// IsMarketOpen reports whether the market trades on the given day.
// Saturday and Sunday are closed; no holiday calendar is applied.
func IsMarketOpen(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// resolveEntry finds a holding's price-map entry by trying the exact
// uppercase ticker first, then the suffix-stripped form.
func resolveEntry(prices model.PriceMap, ticker string) (model.PriceMapEntry, bool) {
	if entry, ok := prices[strings.ToUpper(ticker)]; ok {
		return entry, true
	}
	if entry, ok := prices[NormalizeTicker(ticker)]; ok {
		return entry, true
	}
	return model.PriceMapEntry{}, false
}

// ValueHoldings joins each holding with its matching price-map entry and
// derives the per-holding valuation figures.
//
// Invested is always computed. MarketPrice, Value, Gain and GainPct are nil
// when the price cannot be resolved; GainPct additionally requires a
// positive invested amount (guards divide-by-zero). TodayGain/TodayGainPct
// need at least two daily candles and an open market on asOf: the previous
// close is the second-to-last daily entry's close.
//
// Missing data never causes an error; absence is represented as nil.
func ValueHoldings(holdings []model.Holding, prices model.PriceMap, asOf time.Time) []model.ValuatedHolding {
	valuated := make([]model.ValuatedHolding, len(holdings))
	marketOpen := IsMarketOpen(asOf)

	for i, h := range holdings {
		entry, found := resolveEntry(prices, h.Ticker)

		var marketPrice *float64
		if found && entry.LastPrice != nil {
			marketPrice = ptr(*entry.LastPrice)
		}

		invested := h.Shares * h.PurchasePrice

		var value, gain, gainPct *float64
		if marketPrice != nil {
			value = ptr(h.Shares * *marketPrice)
			gain = ptr(*value - invested)
			if invested > 0 {
				gainPct = ptr(*gain / invested * 100)
			}
		}

		var todayGain, todayGainPct *float64
		if marketOpen && marketPrice != nil && len(entry.Daily) > 1 {
			prevClose := entry.Daily[len(entry.Daily)-2].Close
			if prevClose > 0 {
				todayGain = ptr((*marketPrice - prevClose) * h.Shares)
				todayGainPct = ptr((*marketPrice - prevClose) / prevClose * 100)
			}
		}

		valuated[i] = model.ValuatedHolding{
			HoldingID:     h.ID,
			Ticker:        strings.ToUpper(h.Ticker),
			Exchange:      h.Exchange,
			Shares:        h.Shares,
			PurchasePrice: h.PurchasePrice,
			PurchaseDate:  h.PurchaseDate,
			Sector:        h.Sector,
			MarketPrice:   marketPrice,
			Invested:      invested,
			Value:         value,
			Gain:          gain,
			GainPct:       gainPct,
			TodayGain:     todayGain,
			TodayGainPct:  todayGainPct,
		}
	}

	return valuated
}
