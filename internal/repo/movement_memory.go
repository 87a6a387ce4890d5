package repo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// record appends a movement for a stock change.
func (r *InMemoryMovementRepository) record(productID, delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = append(r.movements, models.Movement{
		ID:        len(r.movements) + 1,
		ProductID: productID,
		Delta:     delta,
		CreatedAt: time.Now().UTC(),
	})
}

// GetByProductID returns movements for a product, newest first, paginated.
func (r *InMemoryMovementRepository) GetByProductID(_ context.Context, productID int, mf MovementFilter) ([]models.Movement, int, error) {
	r.mu.RLock()
	var filtered []models.Movement
	for _, m := range r.movements {
		if m.ProductID == productID {
			filtered = append(filtered, m)
		}
	}
	r.mu.RUnlock()

	slices.Reverse(filtered)

	// If offset is greater than the number of movements, return empty slice
	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return []models.Movement{}, len(filtered), nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	end := clamp(start+limit, start, len(filtered))

	if filtered == nil {
		return []models.Movement{}, 0, nil
	}
	return filtered[start:end], len(filtered), nil
}
