// Package refresh keeps the market price cache warm. A cron schedule
// periodically rebuilds the price map for every held ticker so dashboard
// requests inside the cache TTL are served without waiting on the upstream
// API.
package refresh

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/niveshfolio/portfolio-backend/internal/repository"
	"github.com/niveshfolio/portfolio-backend/internal/service"
)

// refreshTimeout bounds a single warm-up pass.
const refreshTimeout = 30 * time.Second

// Refresher periodically pre-fetches market data for all held tickers.
type Refresher struct {
	cron        *cron.Cron
	holdingRepo *repository.HoldingRepository
	prices      service.PriceProvider
	log         *logrus.Logger
}

// New creates a Refresher over the holding repository and price provider.
func New(holdingRepo *repository.HoldingRepository, prices service.PriceProvider, log *logrus.Logger) *Refresher {
	return &Refresher{
		cron:        cron.New(),
		holdingRepo: holdingRepo,
		prices:      prices,
		log:         log,
	}
}

// Start registers the refresh job on the given cron schedule (e.g.
// "@every 5m") and starts the scheduler. An immediate warm-up pass runs
// before the first tick so the cache is populated at boot.
func (r *Refresher) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.refresh); err != nil {
		return err
	}
	go r.refresh()
	r.cron.Start()
	r.log.WithField("schedule", schedule).Info("price refresh scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running refresh pass to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	holdings, err := r.holdingRepo.GetHoldings()
	if err != nil {
		r.log.WithError(err).Warn("price refresh skipped, failed to load holdings")
		return
	}

	tickers := service.FetchTickers(holdings)

	start := time.Now()
	if _, err := r.prices.PriceMap(ctx, tickers); err != nil {
		r.log.WithError(err).Warn("price refresh failed")
		return
	}

	r.log.WithFields(logrus.Fields{
		"tickers":  len(tickers),
		"duration": time.Since(start).String(),
	}).Debug("price cache refreshed")
}
