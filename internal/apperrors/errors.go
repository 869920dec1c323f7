package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateHolding indicates that a holding with the same ticker and
	// exchange already exists in the portfolio. Duplicate submissions are
	// rejected, never merged.
	ErrDuplicateHolding = errors.New("holding with this ticker and exchange already exists")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidTicker indicates that a ticker is empty or malformed.
	ErrInvalidTicker = errors.New("ticker is required")

	// ErrInvalidShares indicates that a share count is zero, negative, or not finite.
	ErrInvalidShares = errors.New("shares must be a positive number")

	// ErrInvalidPurchasePrice indicates that a purchase price is negative or not finite.
	ErrInvalidPurchasePrice = errors.New("purchase price cannot be negative")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveHoldings = errors.New("failed to retrieve holdings")
	ErrFailedToGetDashboard     = errors.New("failed to compute dashboard report")
	ErrFailedToGetVersionInfo   = errors.New("failed to get version information")
	ErrFailedToFetchPrices      = errors.New("failed to fetch market prices")
)
