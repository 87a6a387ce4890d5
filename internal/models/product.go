package models

// Product represents a product entity in the inventory system.
type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

// IsLowStock reports whether the product is below the given threshold.
func (p Product) IsLowStock(threshold int) bool {
	return p.Stock < threshold
}
