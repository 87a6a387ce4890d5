package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// A single mutex guards every record, so adjustments never interleave.
type InMemoryProductRepository struct {
	mu        sync.RWMutex
	products  []models.Product
	bySKU     map[string]int
	nextID    int
	movements *InMemoryMovementRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
// Stock changes are recorded in movements when it is not nil.
func NewInMemoryProductRepository(movements *InMemoryMovementRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:  []models.Product{},
		bySKU:     map[string]int{},
		nextID:    1,
		movements: movements,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySKU[product.SKU]; exists {
		return models.Product{}, ErrDuplicatedValueUnique
	}

	product.ID = r.nextID
	r.nextID++
	r.bySKU[product.SKU] = len(r.products)
	r.products = append(r.products, product)
	r.logMovement(product.ID, product.Stock)
	return product, nil
}

// GetBySKU retrieves a product by its SKU.
func (r *InMemoryProductRepository) GetBySKU(_ context.Context, sku string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySKU[sku]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// AdjustStock implements ProductRepository.
func (r *InMemoryProductRepository) AdjustStock(_ context.Context, sku string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.bySKU[sku]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	product := r.products[i]
	if product.Stock+delta < 0 {
		return product, ErrInsufficientStock
	}

	product.Stock += delta
	r.products[i] = product
	r.logMovement(product.ID, delta)
	return product, nil
}

// ListLowStock returns a copy of every product below threshold.
func (r *InMemoryProductRepository) ListLowStock(_ context.Context, threshold int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	low := []models.Product{}
	for _, p := range r.products {
		if p.IsLowStock(threshold) {
			low = append(low, p)
		}
	}
	return low, nil
}

func (r *InMemoryProductRepository) logMovement(productID, delta int) {
	if r.movements != nil {
		r.movements.record(productID, delta)
	}
}
