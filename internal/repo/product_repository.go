package repo

import (
	"context"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

// ProductRepository defines the interface for product data operations.
//
// Implementations own the persisted product records. Stock is only ever
// changed through AdjustStock, which applies a relative delta atomically.
type ProductRepository interface {
	// Create inserts a new product. A duplicate SKU yields
	// ErrDuplicatedValueUnique from the store's unique constraint.
	Create(ctx context.Context, product models.Product) (models.Product, error)
	// GetBySKU returns ErrProductNotFound when no product has the SKU.
	GetBySKU(ctx context.Context, sku string) (models.Product, error)
	// AdjustStock adds delta to the product's stock in one transaction and
	// returns the updated record. If the result would be negative nothing is
	// written and the current record is returned with ErrInsufficientStock.
	AdjustStock(ctx context.Context, sku string, delta int) (models.Product, error)
	// ListLowStock returns every product with stock below threshold.
	ListLowStock(ctx context.Context, threshold int) ([]models.Product, error)
}
