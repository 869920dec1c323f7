package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/niveshfolio/portfolio-backend/internal/analytics"
	"github.com/niveshfolio/portfolio-backend/internal/model"
	"github.com/niveshfolio/portfolio-backend/internal/repository"
)

// PriceProvider supplies market data for a set of stored tickers. The
// production implementation is market.Provider; tests substitute a mock.
type PriceProvider interface {
	PriceMap(ctx context.Context, tickers []string) (model.PriceMap, error)
}

// PortfolioService handles holding management and dashboard computation.
// It coordinates the holding repository with the market price provider and
// hands the combined data to the analytics core.
type PortfolioService struct {
	holdingRepo *repository.HoldingRepository
	prices      PriceProvider
	log         *logrus.Logger

	// now is swappable so dashboard tests can pin the valuation instant.
	now func() time.Time
}

// NewPortfolioService creates a new PortfolioService with the provided
// repository and price provider dependencies.
func NewPortfolioService(holdingRepo *repository.HoldingRepository, prices PriceProvider, log *logrus.Logger) *PortfolioService {
	return &PortfolioService{
		holdingRepo: holdingRepo,
		prices:      prices,
		log:         log,
		now:         time.Now,
	}
}

// GetHoldings retrieves all holdings in the portfolio.
func (s *PortfolioService) GetHoldings() ([]model.Holding, error) {
	return s.holdingRepo.GetHoldings()
}

// GetHolding retrieves a single holding by ID.
func (s *PortfolioService) GetHolding(holdingID string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(holdingID)
}

// CreateHolding stores a new holding after canonicalizing its ticker. The
// ticker is uppercased and stripped of exchange suffixes so the same position
// cannot be entered twice under different spellings, and a missing exchange
// defaults to NSE.
func (s *PortfolioService) CreateHolding(ctx context.Context, h model.Holding) (model.Holding, error) {
	canonicalize(&h)
	return s.holdingRepo.CreateHolding(ctx, h)
}

// UpdateHolding replaces the mutable fields of an existing holding, applying
// the same ticker canonicalization as CreateHolding.
func (s *PortfolioService) UpdateHolding(ctx context.Context, h model.Holding) (model.Holding, error) {
	canonicalize(&h)
	return s.holdingRepo.UpdateHolding(ctx, h)
}

// DeleteHolding removes a holding by ID.
func (s *PortfolioService) DeleteHolding(ctx context.Context, holdingID string) error {
	return s.holdingRepo.DeleteHolding(ctx, holdingID)
}

// GetDashboard computes the full dashboard report for the portfolio: valued
// holdings, summary with sector allocation, six-month comparative growth
// against the Nifty 50 and Sensex, top performers, and the correlation
// matrix.
//
// A price provider failure degrades rather than fails the dashboard: the
// report is computed against an empty price map, which marks every derived
// value as unknown while keeping invested amounts intact.
func (s *PortfolioService) GetDashboard(ctx context.Context) (model.DashboardReport, error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return model.DashboardReport{}, err
	}

	prices, err := s.prices.PriceMap(ctx, FetchTickers(holdings))
	if err != nil {
		s.log.WithError(err).Warn("price provider unavailable, computing dashboard without market data")
		prices = model.PriceMap{}
	}

	return analytics.ComputeReport(holdings, prices, s.now().UTC())
}

// canonicalize normalizes a holding before it is stored: uppercase ticker
// without exchange suffix, default exchange applied.
func canonicalize(h *model.Holding) {
	h.Ticker = analytics.NormalizeTicker(h.Ticker)
	if h.Exchange == "" {
		h.Exchange = model.DefaultExchange
	}
}

// FetchTickers maps stored holdings to the ticker spellings handed to the
// price provider. BSE holdings carry an explicit ".BO" suffix so the provider
// queries the Bombay feed instead of defaulting to NSE; the provider still
// registers the entry under the bare ticker, which is what valuation looks
// up. The refresher uses the same mapping so its warm-up passes hit the same
// cache key as dashboard requests.
func FetchTickers(holdings []model.Holding) []string {
	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if h.Exchange == "BSE" {
			tickers = append(tickers, h.Ticker+".BO")
			continue
		}
		tickers = append(tickers, h.Ticker)
	}
	return tickers
}
