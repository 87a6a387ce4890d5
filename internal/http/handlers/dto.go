package handlers

import "github.com/rogerio-castellano/products-msv/internal/models"

type PingResponse struct {
	Msg string `json:"msg"`
}

type ProductRequest struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock *int   `json:"stock,omitempty"`
}

type ProductResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		SKU:   p.SKU,
		Stock: p.Stock,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	return resp
}

type StockAdditionRequest struct {
	Quantity int `json:"quantity"`
}

type OrderItemRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type MostMovedProductResponse struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

type SummaryResponse struct {
	TotalProducts    int                      `json:"total_products"`
	TotalUnits       int                      `json:"total_units"`
	TotalMovements   int                      `json:"total_movements"`
	LowStockCount    int                      `json:"low_stock_count"`
	Threshold        int                      `json:"threshold"`
	MostMovedProduct *MostMovedProductResponse `json:"most_moved_product"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

// ErrorResponse carries a human-readable message, or a list of field
// errors when the request body failed validation.
type ErrorResponse struct {
	Detail any `json:"detail"`
}
