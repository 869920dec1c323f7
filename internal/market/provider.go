// Package market assembles live price data for the dashboard. It wraps a
// Yahoo Finance chart client with NSE/BSE symbol mapping, concurrent
// fetching, monthly aggregation, and a short-lived quote cache.
package market

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// chartRange and chartInterval are the fixed query parameters for price-map
// fetches: six months of daily candles covers both the latest close and the
// trailing six-month performance window.
const (
	chartRange    = "6mo"
	chartInterval = "1d"

	// fetchConcurrency bounds parallel upstream requests per price-map build.
	fetchConcurrency = 5
)

// Provider assembles price maps for sets of portfolio tickers. It always
// includes the Nifty 50 and Sensex benchmark indices, fetches all symbols
// concurrently, and caches assembled maps for a short TTL.
//
// A Provider is safe for concurrent use.
type Provider struct {
	client *FinanceClient
	cache  *priceCache
	log    *logrus.Logger
}

// NewProvider creates a price-map provider on top of a Yahoo Finance client.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewProvider(client *FinanceClient, ttl time.Duration, log *logrus.Logger) *Provider {
	return &Provider{
		client: client,
		cache:  newPriceCache(ttl),
		log:    log,
	}
}

// PriceMap builds the price map for a set of stored tickers. Benchmark
// indices are always added to the request. Each distinct Yahoo symbol is
// fetched once; an entry is registered under its stripped base symbol plus
// every requested variant that mapped to it, so lookups succeed whether the
// holding stored "TCS" or "TCS.NS".
//
// Per-symbol failures are logged and skipped: a partial map is always more
// useful to the dashboard than no map, and the analytics core treats absent
// tickers as "price unknown". PriceMap only returns an error when the
// context is cancelled.
func (p *Provider) PriceMap(ctx context.Context, tickers []string) (model.PriceMap, error) {
	symbols, requested := p.resolveSymbols(tickers)

	cacheKey := strings.Join(symbols, ",")
	if cached, ok := p.cache.get(cacheKey); ok {
		return cached, nil
	}

	charts := make([]*PriceChart, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, symbol := range symbols {
		g.Go(func() error {
			chart, err := p.fetchChart(gctx, symbol)
			if err != nil {
				p.log.WithError(err).WithField("symbol", symbol).Warn("failed to fetch market data")
				return nil
			}
			charts[i] = chart
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prices := make(model.PriceMap)
	for i, symbol := range symbols {
		if charts[i] == nil {
			continue
		}
		entry := buildEntry(symbol, charts[i])
		for _, key := range mapKeys(symbol, requested[symbol]) {
			prices[key] = entry
		}
	}

	p.cache.put(cacheKey, prices)
	return prices, nil
}

// resolveSymbols maps stored tickers to the distinct Yahoo symbols to fetch,
// always adding the benchmark indices. The returned symbol list is sorted so
// that fetch order, merge order, and cache keys are deterministic. requested
// records which stored ticker spellings resolved to each symbol.
func (p *Provider) resolveSymbols(tickers []string) ([]string, map[string][]string) {
	requested := make(map[string][]string)

	for _, t := range tickers {
		symbol := YahooSymbol(t)
		if symbol == "" {
			continue
		}
		requested[symbol] = append(requested[symbol], strings.ToUpper(strings.TrimSpace(t)))
	}
	for _, benchmark := range []string{SymbolNifty, SymbolSensex} {
		if _, ok := requested[benchmark]; !ok {
			requested[benchmark] = nil
		}
	}

	symbols := make([]string, 0, len(requested))
	for symbol := range requested {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols, requested
}

func (p *Provider) fetchChart(ctx context.Context, symbol string) (*PriceChart, error) {
	response, err := p.client.QueryChart(ctx, symbol, chartRange, chartInterval)
	if err != nil {
		return nil, err
	}
	chart, err := p.client.ParseChart(response)
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// buildEntry converts a parsed chart into a price-map entry: the full daily
// series, a trailing monthly aggregation, and the last close as the current
// price.
func buildEntry(symbol string, chart *PriceChart) model.PriceMapEntry {
	daily := make([]model.Candle, len(chart.Indicators))
	for i, ind := range chart.Indicators {
		daily[i] = model.Candle{
			Date:   ind.Date,
			Open:   ind.PriceOpen,
			High:   ind.PriceHigh,
			Low:    ind.PriceLow,
			Close:  ind.PriceClose,
			Volume: ind.Volume,
		}
	}

	entry := model.PriceMapEntry{
		RawTicker: symbol,
		Currency:  chart.Currency,
		Daily:     daily,
		Monthly:   AggregateMonthly(chart.Indicators, MonthlyWindow),
	}
	if n := len(daily); n > 0 {
		last := daily[n-1].Close
		entry.LastPrice = &last
	}
	return entry
}
