package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/products-msv/internal/inventory"
	"github.com/rogerio-castellano/products-msv/internal/models"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

func newService(t *testing.T) (*inventory.Service, *repo.InMemoryProductRepository) {
	t.Helper()
	products := repo.NewInMemoryProductRepository(nil)
	return inventory.NewService(products, nil), products
}

func mustCreate(t *testing.T, svc *inventory.Service, name, sku string, stock int) models.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), name, sku, stock)
	require.NoError(t, err)
	return p
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid product", func(t *testing.T) {
		svc, _ := newService(t)

		created, err := svc.CreateProduct(ctx, "milk", "0123456789AB", inventory.DefaultInitialStock)
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, 100, created.Stock)

		got, err := svc.GetProduct(ctx, "0123456789AB")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	invalid := []struct {
		name  string
		pName string
		sku   string
		stock int
		field string
	}{
		{name: "SKU too short", pName: "milk", sku: "0123456", stock: 100, field: "sku"},
		{name: "SKU too long", pName: "milk", sku: "0123456789ABC", stock: 100, field: "sku"},
		{name: "Stock below minimum batch", pName: "milk", sku: "0123456789AB", stock: 90, field: "stock"},
		{name: "Empty name", pName: "  ", sku: "0123456789AB", stock: 100, field: "name"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, products := newService(t)

			_, err := svc.CreateProduct(ctx, tt.pName, tt.sku, tt.stock)

			var validationErr *inventory.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)

			_, err = products.GetBySKU(ctx, tt.sku)
			assert.ErrorIs(t, err, repo.ErrProductNotFound)
		})
	}

	t.Run("Boundary SKU lengths", func(t *testing.T) {
		svc, _ := newService(t)
		mustCreate(t, svc, "short", "12345678", 100)
		mustCreate(t, svc, "long", "123456789012", 100)
	})

	t.Run("Duplicate SKU", func(t *testing.T) {
		svc, _ := newService(t)
		first := mustCreate(t, svc, "milk", "A8F96DB0", 100)

		_, err := svc.CreateProduct(ctx, "coffee", "A8F96DB0", 150)

		var dupErr *inventory.DuplicateSKUError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "A8F96DB0", dupErr.SKU)
		assert.Equal(t, "SKU A8F96DB0 already registered.", err.Error())

		got, err := svc.GetProduct(ctx, "A8F96DB0")
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("Duplicate detected by the store constraint", func(t *testing.T) {
		// The lookup misses, as it would if another request inserted the
		// SKU between the lookup and the insert.
		products := &blindLookupRepo{ProductRepository: repo.NewInMemoryProductRepository(nil)}
		svc := inventory.NewService(products, nil)
		mustCreate(t, svc, "milk", "A8F96DB0", 100)

		_, err := svc.CreateProduct(ctx, "milk", "A8F96DB0", 100)

		var dupErr *inventory.DuplicateSKUError
		require.ErrorAs(t, err, &dupErr)
	})
}

func TestAddStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	mustCreate(t, svc, "milk", "0123456789AB", 100)

	t.Run("Unknown SKU", func(t *testing.T) {
		_, err := svc.AddStock(ctx, "0123456789", 50)
		var notFound *inventory.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "0123456789", notFound.SKU)
	})

	t.Run("Quantity below one leaves stock unchanged", func(t *testing.T) {
		for _, q := range []int{0, -5} {
			_, err := svc.AddStock(ctx, "0123456789AB", q)
			var validationErr *inventory.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "quantity", validationErr.Field)
		}

		got, err := svc.GetProduct(ctx, "0123456789AB")
		require.NoError(t, err)
		assert.Equal(t, 100, got.Stock)
	})

	t.Run("Adds exactly the quantity", func(t *testing.T) {
		updated, err := svc.AddStock(ctx, "0123456789AB", 50)
		require.NoError(t, err)
		assert.Equal(t, 150, updated.Stock)
	})
}

func TestOrderProducts(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *inventory.Service {
		svc, _ := newService(t)
		mustCreate(t, svc, "milk", "A8F96DB0", 100)
		mustCreate(t, svc, "coffee", "A8F96DB1", 100)
		mustCreate(t, svc, "tea", "A8F96DB2", 100)
		return svc
	}

	assertStock := func(t *testing.T, svc *inventory.Service, want map[string]int) {
		t.Helper()
		for sku, stock := range want {
			p, err := svc.GetProduct(ctx, sku)
			require.NoError(t, err)
			assert.Equal(t, stock, p.Stock, sku)
		}
	}

	untouched := map[string]int{"A8F96DB0": 100, "A8F96DB1": 100, "A8F96DB2": 100}

	t.Run("Unknown SKU", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB0", Quantity: 15},
			{SKU: "A8F96DB3", Quantity: 15},
		})

		var notFound *inventory.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "A8F96DB3", notFound.SKU)
		assertStock(t, svc, untouched)
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB0", Quantity: 15},
			{SKU: "A8F96DB1", Quantity: 0},
		})

		var validationErr *inventory.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "A8F96DB1", validationErr.SKU)
		assertStock(t, svc, untouched)
	})

	t.Run("Insufficient stock has no side effects", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB0", Quantity: 15},
			{SKU: "A8F96DB1", Quantity: 150},
		})

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, inventory.InsufficientStockError{SKU: "A8F96DB1", Available: 100, Requested: 150}, *stockErr)
		assertStock(t, svc, untouched)
	})

	t.Run("Repeated SKU is checked against the total", func(t *testing.T) {
		svc := setup(t)
		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB0", Quantity: 60},
			{SKU: "A8F96DB0", Quantity: 60},
		})

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 120, stockErr.Requested)
		assertStock(t, svc, untouched)
	})

	t.Run("Valid order returns products in submission order", func(t *testing.T) {
		svc := setup(t)
		updated, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB2", Quantity: 10},
			{SKU: "A8F96DB0", Quantity: 15},
			{SKU: "A8F96DB1", Quantity: 100},
		})
		require.NoError(t, err)
		require.Len(t, updated, 3)

		assert.Equal(t, "A8F96DB2", updated[0].SKU)
		assert.Equal(t, 90, updated[0].Stock)
		assert.Equal(t, "A8F96DB0", updated[1].SKU)
		assert.Equal(t, 85, updated[1].Stock)
		assert.Equal(t, "A8F96DB1", updated[2].SKU)
		assert.Equal(t, 0, updated[2].Stock)
	})

	t.Run("Draining a product then ordering one more", func(t *testing.T) {
		svc := setup(t)

		updated, err := svc.OrderProducts(ctx, []inventory.OrderItem{{SKU: "A8F96DB0", Quantity: 15}})
		require.NoError(t, err)
		assert.Equal(t, 85, updated[0].Stock)

		updated, err = svc.OrderProducts(ctx, []inventory.OrderItem{{SKU: "A8F96DB1", Quantity: 100}})
		require.NoError(t, err)
		assert.Equal(t, 0, updated[0].Stock)

		_, err = svc.OrderProducts(ctx, []inventory.OrderItem{{SKU: "A8F96DB1", Quantity: 1}})
		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Product A8F96DB1 with insufficient stock: 0/1", stockErr.Error())
	})

	t.Run("Empty order", func(t *testing.T) {
		svc := setup(t)
		updated, err := svc.OrderProducts(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, updated)
	})

	t.Run("Stock drained after validation", func(t *testing.T) {
		products := repo.NewInMemoryProductRepository(nil)
		racy := &drainingRepo{ProductRepository: products, drainSKU: "A8F96DB1"}
		svc := inventory.NewService(racy, nil)
		mustCreate(t, svc, "milk", "A8F96DB0", 100)
		mustCreate(t, svc, "coffee", "A8F96DB1", 100)

		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{
			{SKU: "A8F96DB0", Quantity: 10},
			{SKU: "A8F96DB1", Quantity: 50},
		})

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "A8F96DB1", stockErr.SKU)
		assert.Equal(t, 5, stockErr.Available)

		// The item deducted before the race stays deducted; nothing goes negative.
		milk, err := products.GetBySKU(ctx, "A8F96DB0")
		require.NoError(t, err)
		assert.Equal(t, 90, milk.Stock)
		coffee, err := products.GetBySKU(ctx, "A8F96DB1")
		require.NoError(t, err)
		assert.Equal(t, 5, coffee.Stock)
	})

	t.Run("Store failure is propagated", func(t *testing.T) {
		svc := inventory.NewService(failingRepo{}, nil)
		_, err := svc.OrderProducts(ctx, []inventory.OrderItem{{SKU: "A8F96DB0", Quantity: 1}})
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestLowStock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	mustCreate(t, svc, "milk", "A8F96DB0", 100)
	mustCreate(t, svc, "coffee", "A8F96DB1", 100)

	low, err := svc.LowStock(ctx, inventory.LowStockThreshold)
	require.NoError(t, err)
	assert.Empty(t, low)

	_, err = svc.OrderProducts(ctx, []inventory.OrderItem{{SKU: "A8F96DB1", Quantity: 95}})
	require.NoError(t, err)

	low, err = svc.LowStock(ctx, inventory.LowStockThreshold)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "A8F96DB1", low[0].SKU)
}

// blindLookupRepo never finds anything by SKU, forcing the insert to hit
// the unique constraint.
type blindLookupRepo struct {
	repo.ProductRepository
}

func (r *blindLookupRepo) GetBySKU(context.Context, string) (models.Product, error) {
	return models.Product{}, repo.ErrProductNotFound
}

// drainingRepo lets a concurrent order take most of drainSKU's stock right
// after the service validated it.
type drainingRepo struct {
	repo.ProductRepository
	drainSKU string
	drained  bool
}

func (r *drainingRepo) AdjustStock(ctx context.Context, sku string, delta int) (models.Product, error) {
	if sku == r.drainSKU && delta < 0 && !r.drained {
		r.drained = true
		if _, err := r.ProductRepository.AdjustStock(ctx, sku, -95); err != nil {
			return models.Product{}, err
		}
	}
	return r.ProductRepository.AdjustStock(ctx, sku, delta)
}

var errStoreDown = errors.New("connection refused")

type failingRepo struct{}

func (failingRepo) Create(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, errStoreDown
}

func (failingRepo) GetBySKU(context.Context, string) (models.Product, error) {
	return models.Product{}, errStoreDown
}

func (failingRepo) AdjustStock(context.Context, string, int) (models.Product, error) {
	return models.Product{}, errStoreDown
}

func (failingRepo) ListLowStock(context.Context, int) ([]models.Product, error) {
	return nil, errStoreDown
}
