package repo

import (
	"context"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

// MovementRepository reads the stock movement log. Movements are written by
// the product repository in the same transaction as the stock change.
type MovementRepository interface {
	GetByProductID(ctx context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error)
}
