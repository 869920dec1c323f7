package market

import "strings"

// Benchmark index symbols always included in a price map so the dashboard can
// plot comparative growth even for portfolios that hold neither index.
const (
	SymbolNifty  = "^NSEI"
	SymbolSensex = "^BSESN"
)

// YahooSymbol maps a stored ticker to the Yahoo Finance symbol to query.
// Index symbols ("^NSEI") and tickers that already carry an exchange suffix
// ("INFY.NS", "500325.BO") pass through unchanged; bare equity tickers default
// to the NSE feed by appending ".NS".
func YahooSymbol(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return t
	}
	if strings.HasPrefix(t, "^") || strings.Contains(t, ".") {
		return t
	}
	return t + ".NS"
}

// mapKeys returns the price-map keys an entry should be registered under: the
// stripped uppercase base symbol plus every requested variant that resolved to
// this Yahoo symbol. Registering both lets lookups succeed whether the caller
// stored "TCS" or "TCS.NS".
func mapKeys(yahooSymbol string, requested []string) []string {
	keys := make([]string, 0, len(requested)+1)
	seen := make(map[string]bool)

	add := func(k string) {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" || seen[k] {
			return
		}
		seen[k] = true
		keys = append(keys, k)
	}

	add(baseSymbol(yahooSymbol))
	for _, r := range requested {
		add(r)
	}
	return keys
}

// baseSymbol strips a trailing Yahoo exchange suffix (".NS", ".BO") from a
// symbol. Index symbols keep their caret prefix.
func baseSymbol(symbol string) string {
	s := strings.ToUpper(symbol)
	for _, suffix := range []string{".NS", ".BO"} {
		if strings.HasSuffix(s, suffix) {
			return strings.TrimSuffix(s, suffix)
		}
	}
	return s
}
