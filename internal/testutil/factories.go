package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithTicker("TCS").
//	    WithShares(5).
//	    WithSector("IT").
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	Ticker        string
	Exchange      string
	Shares        float64
	PurchasePrice float64
	PurchaseDate  *time.Time
	Sector        *string
	Notes         *string
}

// NewHolding creates a HoldingBuilder with sensible defaults. The ticker is
// randomized so multiple builds in one test do not trip the unique
// (ticker, exchange) constraint.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:            MakeID(),
		Ticker:        MakeTicker("TST"),
		Exchange:      model.DefaultExchange,
		Shares:        10,
		PurchasePrice: 100,
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithTicker sets a custom ticker.
func (b *HoldingBuilder) WithTicker(ticker string) *HoldingBuilder {
	b.Ticker = ticker
	return b
}

// WithExchange sets a custom exchange.
func (b *HoldingBuilder) WithExchange(exchange string) *HoldingBuilder {
	b.Exchange = exchange
	return b
}

// WithShares sets a custom share count.
func (b *HoldingBuilder) WithShares(shares float64) *HoldingBuilder {
	b.Shares = shares
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.PurchasePrice = price
	return b
}

// WithPurchaseDate sets a purchase date.
func (b *HoldingBuilder) WithPurchaseDate(date time.Time) *HoldingBuilder {
	b.PurchaseDate = &date
	return b
}

// WithSector sets a sector.
func (b *HoldingBuilder) WithSector(sector string) *HoldingBuilder {
	b.Sector = &sector
	return b
}

// WithNotes sets notes.
func (b *HoldingBuilder) WithNotes(notes string) *HoldingBuilder {
	b.Notes = &notes
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (id, ticker, exchange, shares, purchase_price, purchase_date, sector, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var purchaseDate any
	if b.PurchaseDate != nil {
		purchaseDate = b.PurchaseDate.UTC().Format("2006-01-02")
	}

	_, err := db.Exec(query, b.ID, b.Ticker, b.Exchange, b.Shares, b.PurchasePrice, purchaseDate, b.Sector, b.Notes)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:            b.ID,
		Ticker:        b.Ticker,
		Exchange:      b.Exchange,
		Shares:        b.Shares,
		PurchasePrice: b.PurchasePrice,
		PurchaseDate:  b.PurchaseDate,
		Sector:        b.Sector,
		Notes:         b.Notes,
	}
}
