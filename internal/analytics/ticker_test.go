package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain lowercase", "tcs", "TCS"},
		{"plain uppercase", "TCS", "TCS"},
		{"NS suffix", "TCS.NS", "TCS"},
		{"NSE suffix", "TCS.NSE", "TCS"},
		{"BSE suffix", "RELIANCE.BSE", "RELIANCE"},
		{"lowercase suffix", "infy.ns", "INFY"},
		{"mixed case suffix", "Infy.Nse", "INFY"},
		{"index ticker untouched", "^NSEI", "^NSEI"},
		{"empty passes through", "", ""},
		{"suffix only strips once", "TCS.NS.NS", "TCS.NS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTicker(tt.input))
		})
	}
}

func TestNormalizeTickerRoundTrip(t *testing.T) {
	// All suffix conventions of the same instrument collapse to one key.
	assert.Equal(t, NormalizeTicker("TCS.NSE"), NormalizeTicker("TCS.NS"))
	assert.Equal(t, NormalizeTicker("TCS.NS"), NormalizeTicker("tcs"))
	assert.Equal(t, "TCS", NormalizeTicker("tcs"))
}
