package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYahooSymbol(t *testing.T) {
	tests := []struct {
		name   string
		ticker string
		want   string
	}{
		{"bare ticker defaults to NSE", "TCS", "TCS.NS"},
		{"lowercase is uppercased", "infy", "INFY.NS"},
		{"existing NSE suffix passes through", "INFY.NS", "INFY.NS"},
		{"BSE suffix passes through", "500325.BO", "500325.BO"},
		{"index symbol passes through", "^NSEI", "^NSEI"},
		{"surrounding whitespace trimmed", "  hdfcbank ", "HDFCBANK.NS"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YahooSymbol(tt.ticker))
		})
	}
}

func TestMapKeys(t *testing.T) {
	t.Run("base symbol plus requested variants", func(t *testing.T) {
		keys := mapKeys("TCS.NS", []string{"TCS", "TCS.NS"})
		assert.Equal(t, []string{"TCS", "TCS.NS"}, keys)
	})

	t.Run("index symbol keeps caret", func(t *testing.T) {
		keys := mapKeys("^NSEI", nil)
		assert.Equal(t, []string{"^NSEI"}, keys)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		keys := mapKeys("INFY.NS", []string{"INFY", "infy", "INFY"})
		assert.Equal(t, []string{"INFY"}, keys)
	})
}
