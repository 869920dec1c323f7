package analytics

import (
	"sort"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// sectorUnknown buckets holdings that carry no sector.
const sectorUnknown = "Unknown"

// Summarize reduces the valuated holdings into portfolio totals, sector
// buckets, and today's aggregate gain.
//
// TotalInvested sums unconditionally. CurrentValue fails closed: it is nil
// if any holding's value is unresolved, so the portfolio total is either
// fully known or explicitly unknown. Sector sums fail open instead,
// accumulating whatever is resolvable so allocation charts stay best-effort;
// sector percentages are derived only when CurrentValue is a known positive
// number.
//
// Today's aggregate is computed only on open market days. The previous-day
// portfolio value is reconstructed per holding by inverting the percentage
// formula, marketPrice / (1 + todayGainPct/100), skipping holdings without
// a today percentage.
func Summarize(valuated []model.ValuatedHolding, asOf time.Time) model.PortfolioSummary {
	var totalInvested float64
	missingPrices := false
	var valueSum float64

	for _, vh := range valuated {
		totalInvested += vh.Invested
		if vh.Value == nil {
			missingPrices = true
		} else {
			valueSum += *vh.Value
		}
	}

	var currentValue, totalGain, totalGainPct *float64
	if !missingPrices {
		currentValue = ptr(valueSum)
		totalGain = ptr(valueSum - totalInvested)
		if totalInvested > 0 {
			totalGainPct = ptr(*totalGain / totalInvested * 100)
		}
	}

	summary := model.PortfolioSummary{
		TotalInvested: totalInvested,
		CurrentValue:  currentValue,
		TotalGain:     totalGain,
		TotalGainPct:  totalGainPct,
		Sectors:       sectorBuckets(valuated, currentValue),
	}

	if IsMarketOpen(asOf) {
		summary.TodayGain, summary.TodayGainPct = todayAggregate(valuated)
	}

	return summary
}

// sectorBuckets groups holdings by sector (nil maps to "Unknown") and sums
// invested and value per bucket. Buckets are returned in ascending sector
// name order so the output is deterministic.
func sectorBuckets(valuated []model.ValuatedHolding, currentValue *float64) []model.SectorAllocation {
	type bucket struct {
		invested float64
		value    float64
	}
	buckets := make(map[string]*bucket)
	for _, vh := range valuated {
		sector := sectorUnknown
		if vh.Sector != nil && *vh.Sector != "" {
			sector = *vh.Sector
		}
		b, ok := buckets[sector]
		if !ok {
			b = &bucket{}
			buckets[sector] = b
		}
		b.invested += vh.Invested
		if vh.Value != nil {
			b.value += *vh.Value
		}
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	sectors := make([]model.SectorAllocation, 0, len(names))
	for _, name := range names {
		b := buckets[name]
		var pct *float64
		if currentValue != nil && *currentValue > 0 {
			pct = ptr(b.value / *currentValue * 100)
		}
		sectors = append(sectors, model.SectorAllocation{
			Sector:   name,
			Invested: b.invested,
			Value:    b.value,
			Pct:      pct,
		})
	}
	return sectors
}

// todayAggregate sums today's gain over holdings where it is known and
// derives the portfolio's today percentage against the reconstructed
// previous-close portfolio value.
func todayAggregate(valuated []model.ValuatedHolding) (todayGain, todayGainPct float64) {
	var prevPortfolioValue float64
	for _, vh := range valuated {
		if vh.TodayGain == nil {
			continue
		}
		todayGain += *vh.TodayGain
		if vh.MarketPrice != nil && vh.TodayGainPct != nil {
			prevClose := *vh.MarketPrice / (1 + *vh.TodayGainPct/100)
			prevPortfolioValue += prevClose * vh.Shares
		}
	}
	if prevPortfolioValue > 0 {
		todayGainPct = todayGain / prevPortfolioValue * 100
	}
	return todayGain, todayGainPct
}
