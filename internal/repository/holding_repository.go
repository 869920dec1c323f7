package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/niveshfolio/portfolio-backend/internal/apperrors"
	"github.com/niveshfolio/portfolio-backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// It handles retrieving, creating, updating, and deleting stock positions.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings, ordered by creation time and then ID so
// repeated reads return the same order. Returns an empty slice if the
// portfolio is empty.
func (r *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	query := `
        SELECT id, ticker, exchange, shares, purchase_price, purchase_date, sector, notes, created_at
        FROM holding
        ORDER BY created_at, id
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its UUID.
// Returns apperrors.ErrHoldingNotFound if no holding has that ID.
func (r *HoldingRepository) GetHoldingOnID(holdingID string) (model.Holding, error) {
	query := `
        SELECT id, ticker, exchange, shares, purchase_price, purchase_date, sector, notes, created_at
        FROM holding
        WHERE id = ?
    `

	h, err := scanHolding(r.db.QueryRow(query, holdingID))
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// CreateHolding inserts a new holding, assigning it a fresh UUID.
// Returns apperrors.ErrDuplicateHolding when a holding with the same
// (ticker, exchange) pair already exists.
func (r *HoldingRepository) CreateHolding(ctx context.Context, h model.Holding) (model.Holding, error) {
	h.ID = uuid.New().String()

	query := `
        INSERT INTO holding (id, ticker, exchange, shares, purchase_price, purchase_date, sector, notes)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Ticker,
		h.Exchange,
		h.Shares,
		h.PurchasePrice,
		formatDate(h.PurchaseDate),
		h.Sector,
		h.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Holding{}, apperrors.ErrDuplicateHolding
		}
		return model.Holding{}, fmt.Errorf("failed to insert holding: %w", err)
	}

	return r.GetHoldingOnID(h.ID)
}

// UpdateHolding updates the mutable fields of an existing holding.
// Returns apperrors.ErrHoldingNotFound if the holding does not exist and
// apperrors.ErrDuplicateHolding if the new (ticker, exchange) pair collides
// with another holding.
func (r *HoldingRepository) UpdateHolding(ctx context.Context, h model.Holding) (model.Holding, error) {
	query := `
        UPDATE holding
        SET ticker = ?, exchange = ?, shares = ?, purchase_price = ?, purchase_date = ?, sector = ?, notes = ?
        WHERE id = ?
    `

	result, err := r.db.ExecContext(ctx, query,
		h.Ticker,
		h.Exchange,
		h.Shares,
		h.PurchasePrice,
		formatDate(h.PurchaseDate),
		h.Sector,
		h.Notes,
		h.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Holding{}, apperrors.ErrDuplicateHolding
		}
		return model.Holding{}, fmt.Errorf("failed to update holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if rowsAffected == 0 {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}

	return r.GetHoldingOnID(h.ID)
}

// DeleteHolding removes a holding by its UUID.
// Returns apperrors.ErrHoldingNotFound if the holding does not exist.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	query := `DELETE FROM holding WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanHolding(row scanner) (model.Holding, error) {
	var h model.Holding
	var purchaseDate sql.NullString
	var createdAt string

	err := row.Scan(
		&h.ID,
		&h.Ticker,
		&h.Exchange,
		&h.Shares,
		&h.PurchasePrice,
		&purchaseDate,
		&h.Sector,
		&h.Notes,
		&createdAt,
	)
	if err != nil {
		return model.Holding{}, err
	}

	if purchaseDate.Valid && purchaseDate.String != "" {
		t, err := ParseTime(purchaseDate.String)
		if err != nil {
			return model.Holding{}, err
		}
		h.PurchaseDate = &t
	}

	created, err := ParseTime(createdAt)
	if err != nil {
		return model.Holding{}, err
	}
	h.CreatedAt = created

	return h, nil
}

// isUniqueViolation reports whether a sqlite error is a UNIQUE constraint
// failure. modernc.org/sqlite does not export a stable error type for it, so
// the message is matched.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
