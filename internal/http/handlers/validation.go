package handlers

import (
	"fmt"

	"github.com/rogerio-castellano/products-msv/internal/inventory"
)

type FieldValidationError struct {
	Location []any  `json:"loc"`
	Message  string `json:"msg"`
}

// validateOrderRequest checks the shape of every order line. Range and
// existence rules are left to the inventory service.
func validateOrderRequest(items []OrderItemRequest) []FieldValidationError {
	errs := []FieldValidationError{}
	for i, item := range items {
		if err := inventory.ValidateSKU(item.SKU); err != nil {
			errs = append(errs, FieldValidationError{
				Location: []any{"body", i, "sku"},
				Message:  fmt.Sprintf("String should have between %d and %d characters", inventory.MinSKULength, inventory.MaxSKULength),
			})
		}
	}
	return errs
}
