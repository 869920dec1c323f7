package analytics

import (
	"sort"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// DefaultTopCount is how many holdings the top-performer ranking keeps.
const DefaultTopCount = 5

// TopPerformers filters the valuated holdings to those with a known
// percentage gain, sorts descending by it, and truncates to n. Holdings
// with an unresolved gainPct are excluded even if fewer than n remain.
// Ties keep input order (stable sort), so the ranking is deterministic.
func TopPerformers(valuated []model.ValuatedHolding, n int) []model.ValuatedHolding {
	if n <= 0 {
		n = DefaultTopCount
	}

	ranked := make([]model.ValuatedHolding, 0, len(valuated))
	for _, vh := range valuated {
		if vh.GainPct != nil {
			ranked = append(ranked, vh)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].GainPct > *ranked[j].GainPct
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
