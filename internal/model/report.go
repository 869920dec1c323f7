package model

import "time"

// ValuatedHolding is a Holding joined with its matching price-map entry.
//
// Invested is always computable from the holding itself. Every other derived
// field is a pointer: nil means the value could not be resolved (missing
// market price, zero invested amount, insufficient daily history, or a
// closed market), never zero.
type ValuatedHolding struct {
	HoldingID     string     `json:"id"`
	Ticker        string     `json:"ticker"`
	Exchange      string     `json:"exchange"`
	Shares        float64    `json:"shares"`
	PurchasePrice float64    `json:"purchasePrice"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	Sector        *string    `json:"sector"`
	MarketPrice   *float64   `json:"marketPrice"`
	Invested      float64    `json:"invested"`
	Value         *float64   `json:"value"`
	Gain          *float64   `json:"gain"`
	GainPct       *float64   `json:"gainPct"`
	TodayGain     *float64   `json:"todayGain"`
	TodayGainPct  *float64   `json:"todayGainPct"`
}

// SectorAllocation is one sector bucket of the portfolio.
//
// Invested and Value are best-effort partial sums (holdings without a
// resolved price contribute only to Invested). Pct is derived from the
// portfolio's CurrentValue and is nil whenever that total is unknown.
type SectorAllocation struct {
	Sector   string   `json:"sector"`
	Invested float64  `json:"invested"`
	Value    float64  `json:"value"`
	Pct      *float64 `json:"pct"`
}

// PortfolioSummary aggregates the valuated holdings of a portfolio.
//
// TotalInvested is always computable. CurrentValue is nil if ANY holding has
// an unresolved price: the portfolio total is either fully known or
// explicitly unknown, never a silent partial sum. TodayGain/TodayGainPct are
// zero on closed market days.
type PortfolioSummary struct {
	TotalInvested float64            `json:"totalInvested"`
	CurrentValue  *float64           `json:"currentValue"`
	TotalGain     *float64           `json:"totalGain"`
	TotalGainPct  *float64           `json:"totalGainPct"`
	TodayGain     float64            `json:"todayGain"`
	TodayGainPct  float64            `json:"todayGainPct"`
	Sectors       []SectorAllocation `json:"sectors"`
}

// GrowthPoint is one month of a comparative growth index. GrowthPct is the
// instrument's close expressed against the series anchor (100 = unchanged);
// nil when the month's data is missing.
type GrowthPoint struct {
	Month     string   `json:"month"`
	GrowthPct *float64 `json:"growthPct"`
}

// GrowthSeries is a named growth index over a common month axis.
type GrowthSeries struct {
	Name   string        `json:"name"`
	Series []GrowthPoint `json:"series"`
}

// DashboardReport is the full analytics report for one portfolio.
type DashboardReport struct {
	Holdings      []ValuatedHolding `json:"holdings"`
	Summary       PortfolioSummary  `json:"summary"`
	Performance   []GrowthSeries    `json:"performance"`
	TopPerformers []ValuatedHolding `json:"topPerformers"`
	Correlation   [][]float64       `json:"correlation"`
}
