package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niveshfolio/portfolio-backend/internal/api/request"
	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/model"
	"github.com/niveshfolio/portfolio-backend/internal/testutil"
)

func setupHoldingHandler(t *testing.T) (*HoldingHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestPortfolioService(t, db, testutil.NewMockPriceProvider(nil))
	return NewHoldingHandler(svc), db
}

func TestHoldingHandler_Holdings(t *testing.T) {
	t.Run("returns empty array for empty portfolio", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.Holdings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holdings []model.Holding
		testutil.DecodeJSON(t, w, &holdings)

		if len(holdings) != 0 {
			t.Errorf("Expected 0 holdings, got %d", len(holdings))
		}
	})

	t.Run("returns stored holdings", func(t *testing.T) {
		handler, db := setupHoldingHandler(t)

		testutil.NewHolding().WithTicker("TCS").Build(t, db)
		testutil.NewHolding().WithTicker("INFY").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.Holdings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holdings []model.Holding
		testutil.DecodeJSON(t, w, &holdings)

		if len(holdings) != 2 {
			t.Errorf("Expected 2 holdings, got %d", len(holdings))
		}
	})
}

func TestHoldingHandler_GetHolding(t *testing.T) {
	t.Run("returns holding by ID", func(t *testing.T) {
		handler, db := setupHoldingHandler(t)

		created := testutil.NewHolding().WithTicker("TCS").WithSector("IT").Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/holdings/"+created.ID,
			map[string]string{"uuid": created.ID},
		)
		w := httptest.NewRecorder()

		handler.GetHolding(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holding model.Holding
		testutil.DecodeJSON(t, w, &holding)

		if holding.Ticker != "TCS" {
			t.Errorf("Expected ticker TCS, got %s", holding.Ticker)
		}
	})

	t.Run("returns 404 for unknown ID", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/holdings/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.GetHolding(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}

		var response map[string]string
		testutil.DecodeJSON(t, w, &response)

		if response["error"] != apperrors.ErrHoldingNotFound.Error() {
			t.Errorf("Expected '%s' error, got '%s'", apperrors.ErrHoldingNotFound.Error(), response["error"])
		}
	})
}

func TestHoldingHandler_CreateHolding(t *testing.T) {
	t.Run("creates holding and returns 201", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		sector := "IT"
		body := request.CreateHoldingRequest{
			Ticker:        "tcs.ns",
			Shares:        10,
			PurchasePrice: 3500,
			Sector:        &sector,
		}

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/holdings", nil, body)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var holding model.Holding
		testutil.DecodeJSON(t, w, &holding)

		if holding.ID == "" {
			t.Error("Expected generated ID")
		}
		if holding.Ticker != "TCS" {
			t.Errorf("Expected canonical ticker TCS, got %s", holding.Ticker)
		}
		if holding.Exchange != model.DefaultExchange {
			t.Errorf("Expected default exchange, got %s", holding.Exchange)
		}
	})

	t.Run("rejects invalid body with 400", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		body := request.CreateHoldingRequest{
			Ticker: "TCS",
			Shares: -5,
		}

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/holdings", nil, body)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/holdings", nil)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects duplicate with 409", func(t *testing.T) {
		handler, db := setupHoldingHandler(t)

		testutil.NewHolding().WithTicker("TCS").WithExchange("NSE").Build(t, db)

		body := request.CreateHoldingRequest{
			Ticker:        "TCS",
			Shares:        5,
			PurchasePrice: 3600,
		}

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/holdings", nil, body)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("rejects bad purchase date with 400", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		badDate := "14-03-2025"
		body := request.CreateHoldingRequest{
			Ticker:        "TCS",
			Shares:        5,
			PurchasePrice: 3600,
			PurchaseDate:  &badDate,
		}

		req := testutil.NewRequestWithBody(http.MethodPost, "/api/holdings", nil, body)
		w := httptest.NewRecorder()

		handler.CreateHolding(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestHoldingHandler_UpdateHolding(t *testing.T) {
	t.Run("replaces holding fields", func(t *testing.T) {
		handler, db := setupHoldingHandler(t)

		created := testutil.NewHolding().WithTicker("ITC").WithShares(10).Build(t, db)

		body := request.UpdateHoldingRequest{
			Ticker:        "ITC",
			Shares:        25,
			PurchasePrice: 455,
		}

		req := testutil.NewRequestWithBody(
			http.MethodPut,
			"/api/holdings/"+created.ID,
			map[string]string{"uuid": created.ID},
			body,
		)
		w := httptest.NewRecorder()

		handler.UpdateHolding(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var holding model.Holding
		testutil.DecodeJSON(t, w, &holding)

		if holding.Shares != 25 {
			t.Errorf("Expected 25 shares, got %v", holding.Shares)
		}
	})

	t.Run("returns 404 for unknown ID", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		id := testutil.MakeID()
		body := request.UpdateHoldingRequest{
			Ticker:        "TCS",
			Shares:        5,
			PurchasePrice: 3600,
		}

		req := testutil.NewRequestWithBody(
			http.MethodPut,
			"/api/holdings/"+id,
			map[string]string{"uuid": id},
			body,
		)
		w := httptest.NewRecorder()

		handler.UpdateHolding(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestHoldingHandler_DeleteHolding(t *testing.T) {
	t.Run("deletes holding and returns 204", func(t *testing.T) {
		handler, db := setupHoldingHandler(t)

		created := testutil.NewHolding().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/holdings/"+created.ID,
			map[string]string{"uuid": created.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteHolding(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown ID", func(t *testing.T) {
		handler, _ := setupHoldingHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/holdings/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteHolding(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
