package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

const queryTimeout = 3 * time.Second

// SQLProductRepository stores products in a relational database through
// database/sql. Queries are written so that both the pgx and the sqlite3
// drivers accept them.
type SQLProductRepository struct {
	db *sql.DB
}

func NewSQLProductRepository(db *sql.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

func (r *SQLProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO products (name, sku, stock) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, p.Name, p.SKU, p.Stock).Scan(&p.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertMovement(ctx, tx, p.ID, p.Stock); err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		return models.Product{}, fmt.Errorf("failed to commit product: %w", err)
	}
	return p, nil
}

func (r *SQLProductRepository) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return scanProduct(r.db.QueryRowContext(ctx, `SELECT id, name, sku, stock FROM products WHERE sku = $1`, sku))
}

func (r *SQLProductRepository) AdjustStock(ctx context.Context, sku string, delta int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The floor check and the write are a single statement, so concurrent
	// adjustments of the same row serialize on the row lock.
	query := `
		UPDATE products
		SET stock = stock + $1
		WHERE sku = $2 AND stock + $1 >= 0
		RETURNING id, name, sku, stock
	`
	p, err := scanProduct(tx.QueryRowContext(ctx, query, delta, sku))
	if errors.Is(err, ErrProductNotFound) {
		current, err := scanProduct(tx.QueryRowContext(ctx, `SELECT id, name, sku, stock FROM products WHERE sku = $1`, sku))
		if err != nil {
			return models.Product{}, err
		}
		return current, ErrInsufficientStock
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to adjust stock: %w", err)
	}

	if err := insertMovement(ctx, tx, p.ID, delta); err != nil {
		return models.Product{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, fmt.Errorf("failed to commit stock adjustment: %w", err)
	}
	return p, nil
}

func (r *SQLProductRepository) ListLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sku, stock FROM products WHERE stock < $1`, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func scanProduct(row *sql.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
