package repo

import "context"

type MostMovedProduct struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

// Summary is an aggregate view of the whole inventory.
type Summary struct {
	TotalProducts    int               `json:"total_products"`
	TotalUnits       int               `json:"total_units"`
	TotalMovements   int               `json:"total_movements"`
	LowStockCount    int               `json:"low_stock_count"`
	MostMovedProduct *MostMovedProduct `json:"most_moved_product"`
}

type SummaryRepository interface {
	// GetSummary counts products below threshold as low stock.
	// MostMovedProduct is nil when nothing has been recorded yet.
	GetSummary(ctx context.Context, threshold int) (Summary, error)
}
