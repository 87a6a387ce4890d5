package models

import "time"

// Movement is one recorded stock delta for a product.
type Movement struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}
