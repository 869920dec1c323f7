// Package analytics contains the portfolio valuation and
// performance-attribution engine: pure, deterministic transforms over a
// holdings list and an already-fetched price map. Nothing in this package
// performs I/O or holds state; all call sites share these implementations
// so the formulas exist exactly once.
package analytics

import "strings"

// exchange suffixes recognized on ticker keys, longest first.
var tickerSuffixes = []string{".NSE", ".BSE", ".NS"}

// NormalizeTicker canonicalizes a ticker: uppercase with any trailing
// exchange suffix (.NSE, .NS, .BSE, case-insensitive) stripped. The empty
// string passes through unchanged. Both holdings and price-map keys are
// normalized through here so lookups succeed regardless of which suffix
// convention the provider used.
func NormalizeTicker(ticker string) string {
	if ticker == "" {
		return ticker
	}
	t := strings.ToUpper(ticker)
	for _, suffix := range tickerSuffixes {
		if strings.HasSuffix(t, suffix) {
			return strings.TrimSuffix(t, suffix)
		}
	}
	return t
}
