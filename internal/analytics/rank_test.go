package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

func valuatedWithGainPct(ticker string, gainPct *float64) model.ValuatedHolding {
	return model.ValuatedHolding{Ticker: ticker, GainPct: gainPct}
}

func TestTopPerformersRanking(t *testing.T) {
	input := []model.ValuatedHolding{
		valuatedWithGainPct("A", f(5)),
		valuatedWithGainPct("B", f(25)),
		valuatedWithGainPct("C", f(-3)),
		valuatedWithGainPct("D", f(40)),
		valuatedWithGainPct("E", f(12)),
		valuatedWithGainPct("F", f(8)),
		valuatedWithGainPct("G", f(31)),
	}

	top := TopPerformers(input, 5)
	require.Len(t, top, 5)

	got := make([]string, len(top))
	for i, vh := range top {
		got[i] = vh.Ticker
	}
	assert.Equal(t, []string{"D", "G", "B", "E", "F"}, got)
}

func TestTopPerformersExcludesUnknownGain(t *testing.T) {
	input := []model.ValuatedHolding{
		valuatedWithGainPct("A", f(5)),
		valuatedWithGainPct("B", nil),
		valuatedWithGainPct("C", f(-3)),
		valuatedWithGainPct("D", nil),
		valuatedWithGainPct("E", f(12)),
	}

	// Unknown gains are excluded even though fewer than five remain.
	top := TopPerformers(input, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "E", top[0].Ticker)
	assert.Equal(t, "A", top[1].Ticker)
	assert.Equal(t, "C", top[2].Ticker)
}

func TestTopPerformersTieBreakKeepsInputOrder(t *testing.T) {
	input := []model.ValuatedHolding{
		valuatedWithGainPct("FIRST", f(10)),
		valuatedWithGainPct("SECOND", f(10)),
		valuatedWithGainPct("THIRD", f(10)),
	}

	top := TopPerformers(input, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "FIRST", top[0].Ticker)
	assert.Equal(t, "SECOND", top[1].Ticker)
	assert.Equal(t, "THIRD", top[2].Ticker)
}

func TestTopPerformersDefaultCount(t *testing.T) {
	input := make([]model.ValuatedHolding, 8)
	for i := range input {
		input[i] = valuatedWithGainPct("T", f(float64(i)))
	}
	assert.Len(t, TopPerformers(input, 0), DefaultTopCount)
}
