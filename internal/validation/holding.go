package validation

import (
	"strings"

	"github.com/niveshfolio/portfolio-backend/internal/api/request"
)

// ValidateCreateHolding validates the body of a holding creation request.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	return validateTicker(req.Ticker)
}

// ValidateUpdateHolding validates the body of a holding replacement request.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	return validateTicker(req.Ticker)
}

// validateTicker rejects tickers that are blank after trimming; tag-based
// required only catches the empty string.
func validateTicker(ticker string) error {
	if strings.TrimSpace(ticker) == "" {
		return &Error{Fields: map[string]string{"ticker": "is required"}}
	}
	return nil
}
