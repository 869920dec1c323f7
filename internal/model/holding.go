package model

import "time"

// Holding represents one owned stock position.
//
// Ticker is stored in canonical form: uppercase, without an exchange suffix.
// The (Ticker, Exchange) pair is unique within the portfolio; duplicate
// submissions are rejected at the repository layer, never merged.
type Holding struct {
	ID            string     `json:"id"`
	Ticker        string     `json:"ticker"`
	Exchange      string     `json:"exchange"` // "NSE" or "BSE", defaults to "NSE"
	Shares        float64    `json:"shares"`
	PurchasePrice float64    `json:"purchasePrice"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	Sector        *string    `json:"sector"`
	Notes         *string    `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// DefaultExchange is applied when a holding is created without an exchange.
const DefaultExchange = "NSE"
