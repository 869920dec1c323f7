package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// ComputeReport runs the full analytics pipeline over a holdings list and a
// price map: per-holding valuation, portfolio summary, the three-way growth
// comparison, top-performer ranking, and the growth correlation matrix.
//
// The function is pure: identical inputs (including asOf) produce identical
// output, and missing market data degrades to explicit unknowns rather than
// errors. Malformed holdings, by contrast, are a contract violation by the
// caller and reject the whole call.
func ComputeReport(holdings []model.Holding, prices model.PriceMap, asOf time.Time) (model.DashboardReport, error) {
	for i, h := range holdings {
		if err := checkHolding(h); err != nil {
			return model.DashboardReport{}, fmt.Errorf("holding %d: %w", i, err)
		}
	}

	valuated := ValueHoldings(holdings, prices, asOf)
	performance := ComputePerformance(holdings, prices)

	return model.DashboardReport{
		Holdings:      valuated,
		Summary:       Summarize(valuated, asOf),
		Performance:   performance,
		TopPerformers: TopPerformers(valuated, DefaultTopCount),
		Correlation:   CorrelationMatrix(performance),
	}, nil
}

// checkHolding rejects holdings that violate the input contract: callers
// are expected to have validated these before reaching the engine.
func checkHolding(h model.Holding) error {
	if strings.TrimSpace(h.Ticker) == "" {
		return fmt.Errorf("empty ticker")
	}
	if h.Shares <= 0 || math.IsNaN(h.Shares) || math.IsInf(h.Shares, 0) {
		return fmt.Errorf("invalid share count %v for %s", h.Shares, h.Ticker)
	}
	if h.PurchasePrice < 0 || math.IsNaN(h.PurchasePrice) || math.IsInf(h.PurchasePrice, 0) {
		return fmt.Errorf("invalid purchase price %v for %s", h.PurchasePrice, h.Ticker)
	}
	return nil
}
