package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

const defaultLimit = 100

type SQLMovementRepository struct {
	db *sql.DB
}

func NewSQLMovementRepository(db *sql.DB) *SQLMovementRepository {
	return &SQLMovementRepository{db: db}
}

func insertMovement(ctx context.Context, tx *sql.Tx, productID, delta int) error {
	query := `INSERT INTO movements (product_id, delta, created_at) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, query, productID, delta, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// GetByProductID returns movements for a product, newest first, together
// with the total number of movements recorded for it.
func (r *SQLMovementRepository) GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	offset := 0
	if mf.Offset != nil {
		offset = *mf.Offset
	}

	query := `
		SELECT id, product_id, delta, created_at
		FROM movements
		WHERE product_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Delta, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}
