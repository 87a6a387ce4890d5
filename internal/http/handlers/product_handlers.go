package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/auth"
	"github.com/rogerio-castellano/products-msv/internal/inventory"
)

// CreateProductHandler godoc
// @Summary Creates a product
// @Description A new product record is created with the name, SKU, and initial stock
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "The new product data"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse "SKU already registered"
// @Failure 422 {object} ErrorResponse "Invalid product data"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/products [post]
func (h *Handlers) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stock := inventory.DefaultInitialStock
	if req.Stock != nil {
		stock = *req.Stock
	}

	created, err := h.inventory.CreateProduct(r.Context(), req.Name, req.SKU, stock)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	if actor := auth.SubjectFromContext(r.Context()); actor != "" {
		h.logger.Info("product registered", zap.String("sku", created.SKU), zap.String("actor", actor))
	}
	h.respond(w, http.StatusOK, toProductResponse(created))
}

// GetProductHandler godoc
// @Summary Get product by SKU
// @Tags products
// @Produce json
// @Param sku path string true "The product SKU identifier"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/products/{sku} [get]
func (h *Handlers) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	product, err := h.inventory.GetProduct(r.Context(), sku)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, toProductResponse(product))
}
