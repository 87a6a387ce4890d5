package inventory

import "fmt"

// ValidationError reports malformed input: a field outside its allowed shape or range.
type ValidationError struct {
	Field   string
	SKU     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.SKU != "" {
		return fmt.Sprintf("invalid %s for SKU %s: %s", e.Field, e.SKU, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// DuplicateSKUError is returned when a product with the same SKU already exists.
type DuplicateSKUError struct {
	SKU string
}

func (e *DuplicateSKUError) Error() string {
	return fmt.Sprintf("SKU %s already registered.", e.SKU)
}

// NotFoundError is returned when an operation references an unknown SKU.
type NotFoundError struct {
	SKU string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("SKU %s not found.", e.SKU)
}

// InsufficientStockError is returned when an order asks for more units than are on hand.
type InsufficientStockError struct {
	SKU       string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Product %s with insufficient stock: %d/%d", e.SKU, e.Available, e.Requested)
}
