package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/niveshfolio/portfolio-backend/internal/api/request"
	"github.com/niveshfolio/portfolio-backend/internal/api/response"
	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/model"
	"github.com/niveshfolio/portfolio-backend/internal/service"
	"github.com/niveshfolio/portfolio-backend/internal/validation"
)

// HoldingHandler handles HTTP requests for holding endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type HoldingHandler struct {
	portfolioService *service.PortfolioService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(portfolioService *service.PortfolioService) *HoldingHandler {
	return &HoldingHandler{
		portfolioService: portfolioService,
	}
}

// Holdings handles GET requests to retrieve all holdings.
//
// Endpoint: GET /api/holdings
// Response: 200 OK with array of holdings
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.portfolioService.GetHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// GetHolding handles GET requests to retrieve a single holding by ID.
//
// Endpoint: GET /api/holdings/{uuid}
// Response: 200 OK with the holding
// Error: 400 Bad Request if the holding ID is invalid (validated by middleware)
// Error: 404 Not Found if no holding has that ID
func (h *HoldingHandler) GetHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	holding, err := h.portfolioService.GetHolding(holdingID)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// CreateHolding handles POST requests to add a new holding.
//
// Endpoint: POST /api/holdings
// Response: 201 Created with the stored holding
// Error: 400 Bad Request if the body fails validation
// Error: 409 Conflict if the (ticker, exchange) pair already exists
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	holding, err := holdingFromRequest(req.Ticker, req.Exchange, req.Shares, req.PurchasePrice, req.PurchaseDate, req.Sector, req.Notes)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid purchase date", err.Error())
		return
	}

	created, err := h.portfolioService.CreateHolding(r.Context(), holding)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	response.RespondJSON(w, http.StatusCreated, created)
}

// UpdateHolding handles PUT requests to replace an existing holding.
//
// Endpoint: PUT /api/holdings/{uuid}
// Response: 200 OK with the updated holding
// Error: 400 Bad Request if the body fails validation
// Error: 404 Not Found if no holding has that ID
// Error: 409 Conflict if the new (ticker, exchange) pair collides
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	var req request.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	holding, err := holdingFromRequest(req.Ticker, req.Exchange, req.Shares, req.PurchasePrice, req.PurchaseDate, req.Sector, req.Notes)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid purchase date", err.Error())
		return
	}
	holding.ID = holdingID

	updated, err := h.portfolioService.UpdateHolding(r.Context(), holding)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	response.RespondJSON(w, http.StatusOK, updated)
}

// DeleteHolding handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the holding ID is invalid (validated by middleware)
// Error: 404 Not Found if no holding has that ID
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.portfolioService.DeleteHolding(r.Context(), holdingID); err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToRetrieveHoldings)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// holdingFromRequest converts validated request fields to a model holding.
func holdingFromRequest(ticker, exchange string, shares, purchasePrice float64, purchaseDate, sector, notes *string) (model.Holding, error) {
	h := model.Holding{
		Ticker:        ticker,
		Exchange:      exchange,
		Shares:        shares,
		PurchasePrice: purchasePrice,
		Sector:        sector,
		Notes:         notes,
	}

	if purchaseDate != nil && *purchaseDate != "" {
		t, err := time.Parse("2006-01-02", *purchaseDate)
		if err != nil {
			return model.Holding{}, err
		}
		t = t.UTC()
		h.PurchaseDate = &t
	}

	return h, nil
}
