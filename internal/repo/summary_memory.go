package repo

import "context"

type InMemorySummaryRepository struct {
	products  *InMemoryProductRepository
	movements *InMemoryMovementRepository
}

func NewInMemorySummaryRepository(products *InMemoryProductRepository, movements *InMemoryMovementRepository) *InMemorySummaryRepository {
	return &InMemorySummaryRepository{products: products, movements: movements}
}

func (r *InMemorySummaryRepository) GetSummary(_ context.Context, threshold int) (Summary, error) {
	counts := map[int]int{}
	var s Summary
	if r.movements != nil {
		r.movements.mu.RLock()
		for _, m := range r.movements.movements {
			counts[m.ProductID]++
		}
		s.TotalMovements = len(r.movements.movements)
		r.movements.mu.RUnlock()
	}

	r.products.mu.RLock()
	defer r.products.mu.RUnlock()

	s.TotalProducts = len(r.products.products)
	for _, p := range r.products.products {
		s.TotalUnits += p.Stock
		if p.IsLowStock(threshold) {
			s.LowStockCount++
		}
		// Products are kept in id order, so ties go to the oldest product.
		if n := counts[p.ID]; n > 0 && (s.MostMovedProduct == nil || n > s.MostMovedProduct.MovementCount) {
			s.MostMovedProduct = &MostMovedProduct{SKU: p.SKU, Name: p.Name, MovementCount: n}
		}
	}

	return s, nil
}
