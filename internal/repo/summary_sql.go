package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLSummaryRepository struct {
	db *sql.DB
}

func NewSQLSummaryRepository(db *sql.DB) *SQLSummaryRepository {
	return &SQLSummaryRepository{db: db}
}

func (r *SQLSummaryRepository) GetSummary(ctx context.Context, threshold int) (Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var s Summary

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(stock), 0), COALESCE(SUM(CASE WHEN stock < $1 THEN 1 ELSE 0 END), 0)
		FROM products
	`, threshold).Scan(&s.TotalProducts, &s.TotalUnits, &s.LowStockCount)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to count products: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movements`).Scan(&s.TotalMovements); err != nil {
		return Summary{}, fmt.Errorf("failed to count movements: %w", err)
	}

	var mp MostMovedProduct
	err = r.db.QueryRowContext(ctx, `
		SELECT p.sku, p.name, COUNT(*) AS cnt
		FROM movements m
		JOIN products p ON m.product_id = p.id
		GROUP BY p.id, p.sku, p.name
		ORDER BY cnt DESC, p.id ASC
		LIMIT 1
	`).Scan(&mp.SKU, &mp.Name, &mp.MovementCount)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Summary{}, fmt.Errorf("failed to find most moved product: %w", err)
	default:
		s.MostMovedProduct = &mp
	}

	return s, nil
}
