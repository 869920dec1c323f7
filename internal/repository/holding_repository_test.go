package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/model"
	"github.com/niveshfolio/portfolio-backend/internal/repository"
	"github.com/niveshfolio/portfolio-backend/internal/testutil"
)

func TestGetHoldings(t *testing.T) {
	t.Run("empty portfolio returns empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		holdings, err := repo.GetHoldings()
		if err != nil {
			t.Fatalf("GetHoldings failed: %v", err)
		}
		if holdings == nil {
			t.Error("Expected empty slice, got nil")
		}
		if len(holdings) != 0 {
			t.Errorf("Expected 0 holdings, got %d", len(holdings))
		}
	})

	t.Run("returns all holdings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		testutil.NewHolding().WithTicker("TCS").WithSector("IT").Build(t, db)
		testutil.NewHolding().WithTicker("INFY").Build(t, db)

		holdings, err := repo.GetHoldings()
		if err != nil {
			t.Fatalf("GetHoldings failed: %v", err)
		}
		if len(holdings) != 2 {
			t.Fatalf("Expected 2 holdings, got %d", len(holdings))
		}
	})
}

func TestGetHoldingOnID(t *testing.T) {
	t.Run("retrieves holding by ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
		created := testutil.NewHolding().
			WithTicker("HDFCBANK").
			WithShares(12).
			WithPurchasePrice(1450.5).
			WithPurchaseDate(date).
			WithSector("Banking").
			WithNotes("long term").
			Build(t, db)

		holding, err := repo.GetHoldingOnID(created.ID)
		if err != nil {
			t.Fatalf("GetHoldingOnID failed: %v", err)
		}

		if holding.Ticker != "HDFCBANK" {
			t.Errorf("Expected ticker HDFCBANK, got %s", holding.Ticker)
		}
		if holding.Exchange != model.DefaultExchange {
			t.Errorf("Expected exchange %s, got %s", model.DefaultExchange, holding.Exchange)
		}
		if holding.Shares != 12 {
			t.Errorf("Expected 12 shares, got %v", holding.Shares)
		}
		if holding.PurchasePrice != 1450.5 {
			t.Errorf("Expected purchase price 1450.5, got %v", holding.PurchasePrice)
		}
		if holding.PurchaseDate == nil || !holding.PurchaseDate.Equal(date) {
			t.Errorf("Expected purchase date %v, got %v", date, holding.PurchaseDate)
		}
		if holding.Sector == nil || *holding.Sector != "Banking" {
			t.Errorf("Expected sector Banking, got %v", holding.Sector)
		}
		if holding.Notes == nil || *holding.Notes != "long term" {
			t.Errorf("Expected notes, got %v", holding.Notes)
		}
		if holding.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set")
		}
	})

	t.Run("optional fields stay nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		created := testutil.NewHolding().Build(t, db)

		holding, err := repo.GetHoldingOnID(created.ID)
		if err != nil {
			t.Fatalf("GetHoldingOnID failed: %v", err)
		}
		if holding.PurchaseDate != nil {
			t.Errorf("Expected nil purchase date, got %v", holding.PurchaseDate)
		}
		if holding.Sector != nil {
			t.Errorf("Expected nil sector, got %v", holding.Sector)
		}
		if holding.Notes != nil {
			t.Errorf("Expected nil notes, got %v", holding.Notes)
		}
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		_, err := repo.GetHoldingOnID(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

func TestCreateHolding(t *testing.T) {
	t.Run("creates and returns holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		sector := "IT"
		created, err := repo.CreateHolding(context.Background(), model.Holding{
			Ticker:        "WIPRO",
			Exchange:      "NSE",
			Shares:        25,
			PurchasePrice: 410,
			Sector:        &sector,
		})
		if err != nil {
			t.Fatalf("CreateHolding failed: %v", err)
		}

		if created.ID == "" {
			t.Error("Expected generated ID")
		}
		if created.Ticker != "WIPRO" {
			t.Errorf("Expected ticker WIPRO, got %s", created.Ticker)
		}
		if created.CreatedAt.IsZero() {
			t.Error("Expected created_at to be set")
		}
	})

	t.Run("duplicate ticker and exchange is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		testutil.NewHolding().WithTicker("TCS").WithExchange("NSE").Build(t, db)

		_, err := repo.CreateHolding(context.Background(), model.Holding{
			Ticker:        "TCS",
			Exchange:      "NSE",
			Shares:        1,
			PurchasePrice: 100,
		})
		if !errors.Is(err, apperrors.ErrDuplicateHolding) {
			t.Errorf("Expected ErrDuplicateHolding, got %v", err)
		}
	})

	t.Run("same ticker on other exchange is allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		testutil.NewHolding().WithTicker("TCS").WithExchange("NSE").Build(t, db)

		_, err := repo.CreateHolding(context.Background(), model.Holding{
			Ticker:        "TCS",
			Exchange:      "BSE",
			Shares:        1,
			PurchasePrice: 100,
		})
		if err != nil {
			t.Fatalf("CreateHolding failed: %v", err)
		}
	})
}

func TestUpdateHolding(t *testing.T) {
	t.Run("updates mutable fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		created := testutil.NewHolding().WithTicker("ITC").WithShares(10).Build(t, db)

		created.Shares = 40
		created.PurchasePrice = 455.25
		sector := "FMCG"
		created.Sector = &sector

		updated, err := repo.UpdateHolding(context.Background(), created)
		if err != nil {
			t.Fatalf("UpdateHolding failed: %v", err)
		}

		if updated.Shares != 40 {
			t.Errorf("Expected 40 shares, got %v", updated.Shares)
		}
		if updated.PurchasePrice != 455.25 {
			t.Errorf("Expected purchase price 455.25, got %v", updated.PurchasePrice)
		}
		if updated.Sector == nil || *updated.Sector != "FMCG" {
			t.Errorf("Expected sector FMCG, got %v", updated.Sector)
		}
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		_, err := repo.UpdateHolding(context.Background(), model.Holding{
			ID:            testutil.MakeID(),
			Ticker:        "TCS",
			Exchange:      "NSE",
			Shares:        1,
			PurchasePrice: 100,
		})
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})

	t.Run("collision with another holding is rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		testutil.NewHolding().WithTicker("TCS").WithExchange("NSE").Build(t, db)
		other := testutil.NewHolding().WithTicker("INFY").WithExchange("NSE").Build(t, db)

		other.Ticker = "TCS"
		_, err := repo.UpdateHolding(context.Background(), other)
		if !errors.Is(err, apperrors.ErrDuplicateHolding) {
			t.Errorf("Expected ErrDuplicateHolding, got %v", err)
		}
	})
}

func TestDeleteHolding(t *testing.T) {
	t.Run("deletes holding", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		created := testutil.NewHolding().Build(t, db)

		if err := repo.DeleteHolding(context.Background(), created.ID); err != nil {
			t.Fatalf("DeleteHolding failed: %v", err)
		}

		_, err := repo.GetHoldingOnID(created.ID)
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound after delete, got %v", err)
		}
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewHoldingRepository(db)

		err := repo.DeleteHolding(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrHoldingNotFound) {
			t.Errorf("Expected ErrHoldingNotFound, got %v", err)
		}
	})
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"2025-03-14T10:30:00Z", time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
		{"2025-03-14 10:30:00", time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := repository.ParseTime(tt.input)
		if err != nil {
			t.Errorf("ParseTime(%q) failed: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseTime(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := repository.ParseTime("not-a-date"); err == nil {
		t.Error("Expected error for invalid date")
	}
}
