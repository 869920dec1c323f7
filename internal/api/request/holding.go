// Package request defines the JSON request bodies accepted by the API,
// with validation tags consumed by the validation package.
package request

// CreateHoldingRequest is the body of POST /api/holdings.
//
// Ticker accepts any spelling ("tcs", "TCS.NS"); the service canonicalizes
// it before storage. Exchange defaults to NSE when omitted.
type CreateHoldingRequest struct {
	Ticker        string  `json:"ticker" validate:"required,max=20"`
	Exchange      string  `json:"exchange" validate:"omitempty,oneof=NSE BSE"`
	Shares        float64 `json:"shares" validate:"required,gt=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	PurchaseDate  *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Sector        *string `json:"sector" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

// UpdateHoldingRequest is the body of PUT /api/holdings/{uuid}. It carries a
// full replacement of the holding's mutable fields.
type UpdateHoldingRequest struct {
	Ticker        string  `json:"ticker" validate:"required,max=20"`
	Exchange      string  `json:"exchange" validate:"omitempty,oneof=NSE BSE"`
	Shares        float64 `json:"shares" validate:"required,gt=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	PurchaseDate  *string `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Sector        *string `json:"sector" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}
