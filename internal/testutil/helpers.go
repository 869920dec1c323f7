package testutil

import (
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/niveshfolio/portfolio-backend/internal/repository"
	"github.com/niveshfolio/portfolio-backend/internal/service"
)

// MakeID generates a fresh UUID string.
func MakeID() string {
	return uuid.New().String()
}

// MakeTicker generates a unique ticker with the given prefix, e.g. "TST4821".
// Randomization keeps parallel builds from colliding on the unique
// (ticker, exchange) constraint.
func MakeTicker(prefix string) string {
	return fmt.Sprintf("%s%04d", prefix, rand.Intn(10000))
}

// NewTestLogger returns a logger that discards output, keeping test runs quiet.
func NewTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewTestSystemService wires a SystemService over the test database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// NewTestPortfolioService wires a PortfolioService over the test database and
// the given price provider. Use NewMockPriceProvider for deterministic market
// data.
func NewTestPortfolioService(t *testing.T, db *sql.DB, prices service.PriceProvider) *service.PortfolioService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewPortfolioService(
		holdingRepo,
		prices,
		NewTestLogger(),
	)
}
