// Package inventory implements the business rules for products and stock.
//
// Service is the only component allowed to change stock. It keeps no state
// between calls: every operation reads the current record from the
// repository, and every change is a delta applied atomically by the
// repository.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/metrics"
	"github.com/rogerio-castellano/products-msv/internal/models"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

const (
	MinSKULength = 8
	MaxSKULength = 12

	// MinInitialStock is the smallest batch a product can be onboarded with.
	MinInitialStock     = 100
	DefaultInitialStock = MinInitialStock

	// LowStockThreshold is the stock level below which a product is low.
	LowStockThreshold = 10
)

// OrderItem is one line of a batch order.
type OrderItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type Service struct {
	products repo.ProductRepository
	logger   *zap.Logger
}

func NewService(products repo.ProductRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		products: products,
		logger:   logger,
	}
}

// ValidateSKU checks the SKU length.
func ValidateSKU(sku string) error {
	if n := utf8.RuneCountInString(sku); n < MinSKULength || n > MaxSKULength {
		return &ValidationError{
			Field:   "sku",
			SKU:     sku,
			Message: fmt.Sprintf("must be between %d and %d characters", MinSKULength, MaxSKULength),
		}
	}
	return nil
}

// CreateProduct registers a new product with the given initial stock.
//
// The lookup before the insert only produces a friendlier error early; the
// repository's unique constraint decides whether the SKU is taken.
func (s *Service) CreateProduct(ctx context.Context, name, sku string, stock int) (models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return models.Product{}, &ValidationError{Field: "name", Message: "is required"}
	}
	if err := ValidateSKU(sku); err != nil {
		return models.Product{}, err
	}
	if stock < MinInitialStock {
		return models.Product{}, &ValidationError{
			Field:   "stock",
			SKU:     sku,
			Message: fmt.Sprintf("must be greater than or equal to %d", MinInitialStock),
		}
	}

	_, err := s.products.GetBySKU(ctx, sku)
	if err == nil {
		return models.Product{}, &DuplicateSKUError{SKU: sku}
	}
	if !errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, fmt.Errorf("failed to look up SKU %s: %w", sku, err)
	}

	created, err := s.products.Create(ctx, models.Product{Name: name, SKU: sku, Stock: stock})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return models.Product{}, &DuplicateSKUError{SKU: sku}
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product %s: %w", sku, err)
	}

	metrics.StockAdjustments.WithLabelValues("create").Inc()
	s.logger.Info("product created",
		zap.Int("id", created.ID),
		zap.String("sku", created.SKU),
		zap.Int("stock", created.Stock))
	return created, nil
}

// GetProduct returns the product with the given SKU.
func (s *Service) GetProduct(ctx context.Context, sku string) (models.Product, error) {
	p, err := s.products.GetBySKU(ctx, sku)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, &NotFoundError{SKU: sku}
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to look up SKU %s: %w", sku, err)
	}
	return p, nil
}

// AddStock increases the stock of an existing product by quantity.
func (s *Service) AddStock(ctx context.Context, sku string, quantity int) (models.Product, error) {
	if quantity < 1 {
		return models.Product{}, &ValidationError{Field: "quantity", SKU: sku, Message: "must be greater than or equal to 1"}
	}

	updated, err := s.products.AdjustStock(ctx, sku, quantity)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, &NotFoundError{SKU: sku}
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to add stock to %s: %w", sku, err)
	}

	metrics.StockAdjustments.WithLabelValues("add").Inc()
	s.logger.Debug("stock added", zap.String("sku", sku), zap.Int("quantity", quantity), zap.Int("stock", updated.Stock))
	return updated, nil
}

// OrderProducts deducts every item of a batch order and returns the updated
// products in submission order.
//
// All items are validated before the first deduction, so a rejected order
// changes nothing. Deductions are then applied one item at a time. Each
// deduction re-checks the floor inside its own transaction, so stock never
// goes negative; if a concurrent order drained a product after validation,
// that item fails with InsufficientStockError and the items deducted before
// it stay deducted.
func (s *Service) OrderProducts(ctx context.Context, items []OrderItem) ([]models.Product, error) {
	if err := s.validateOrder(ctx, items); err != nil {
		return nil, err
	}

	updated := make([]models.Product, 0, len(items))
	for i, item := range items {
		p, err := s.products.AdjustStock(ctx, item.SKU, -item.Quantity)
		switch {
		case errors.Is(err, repo.ErrInsufficientStock):
			metrics.RejectedOrders.WithLabelValues("race").Inc()
			s.logger.Warn("order partially applied: stock changed after validation",
				zap.String("sku", item.SKU),
				zap.Int("available", p.Stock),
				zap.Int("requested", item.Quantity),
				zap.Int("applied_items", i))
			return nil, &InsufficientStockError{SKU: item.SKU, Available: p.Stock, Requested: item.Quantity}
		case errors.Is(err, repo.ErrProductNotFound):
			return nil, &NotFoundError{SKU: item.SKU}
		case err != nil:
			return nil, fmt.Errorf("failed to deduct stock from %s: %w", item.SKU, err)
		}
		updated = append(updated, p)
	}

	metrics.StockAdjustments.WithLabelValues("order").Add(float64(len(items)))
	return updated, nil
}

func (s *Service) validateOrder(ctx context.Context, items []OrderItem) error {
	for _, item := range items {
		if item.Quantity < 1 {
			metrics.RejectedOrders.WithLabelValues("validation").Inc()
			return &ValidationError{Field: "quantity", SKU: item.SKU, Message: "must be greater than or equal to 1"}
		}
	}

	// An SKU listed twice must cover the sum of its lines.
	requested := make(map[string]int, len(items))
	for _, item := range items {
		requested[item.SKU] += item.Quantity
	}

	for _, item := range items {
		p, err := s.products.GetBySKU(ctx, item.SKU)
		if errors.Is(err, repo.ErrProductNotFound) {
			metrics.RejectedOrders.WithLabelValues("not_found").Inc()
			return &NotFoundError{SKU: item.SKU}
		}
		if err != nil {
			return fmt.Errorf("failed to look up SKU %s: %w", item.SKU, err)
		}

		if p.Stock < requested[item.SKU] {
			metrics.RejectedOrders.WithLabelValues("insufficient_stock").Inc()
			return &InsufficientStockError{SKU: item.SKU, Available: p.Stock, Requested: requested[item.SKU]}
		}
	}
	return nil
}

// LowStock lists the products whose stock is below threshold.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	products, err := s.products.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}
