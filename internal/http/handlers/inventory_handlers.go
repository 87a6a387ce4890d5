package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/inventory"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

// AddStockHandler godoc
// @Summary Adds stock to a product
// @Description The requested product stock gets increased by a specified quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sku path string true "The product SKU identifier"
// @Param product body StockAdditionRequest true "The product data to update"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse "SKU not found"
// @Failure 422 {object} ErrorResponse "Invalid quantity"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/inventories/product/{sku} [patch]
func (h *Handlers) AddStockHandler(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	var req StockAdditionRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := h.inventory.AddStock(r.Context(), sku, req.Quantity)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, toProductResponse(updated))
}

// GetMovementsHandler godoc
// @Summary Get product movement logs
// @Tags inventory
// @Produce json
// @Param sku path string true "The product SKU identifier"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "SKU not found"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/inventories/product/{sku}/movements [get]
func (h *Handlers) GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")

	limit, err := parseIntPtr(r.URL.Query().Get("limit"))
	if err != nil || (limit != nil && *limit <= 0) {
		h.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}
	offset, err := parseIntPtr(r.URL.Query().Get("offset"))
	if err != nil || (offset != nil && *offset < 0) {
		h.respondError(w, http.StatusBadRequest, "offset must be zero or positive")
		return
	}

	product, err := h.inventory.GetProduct(r.Context(), sku)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	movements, total, err := h.movements.GetByProductID(r.Context(), product.ID, repo.MovementFilter{Offset: offset, Limit: limit})
	if err != nil {
		h.logger.Error("could not retrieve movements", zap.String("sku", sku), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not retrieve movements")
		return
	}

	resp := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		resp.Data[i] = MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Delta:     m.Delta,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
	}

	h.respond(w, http.StatusOK, resp)
}

// SummaryHandler godoc
// @Summary Inventory summary
// @Description Totals over every product and stock movement
// @Tags inventory
// @Produce json
// @Param threshold query int false "Stock level below which a product counts as low (default 10)"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid threshold"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/inventories/summary [get]
func (h *Handlers) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}

	s, err := h.summary.GetSummary(r.Context(), threshold)
	if err != nil {
		h.logger.Error("could not build inventory summary", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not build inventory summary")
		return
	}

	resp := SummaryResponse{
		TotalProducts:  s.TotalProducts,
		TotalUnits:     s.TotalUnits,
		TotalMovements: s.TotalMovements,
		LowStockCount:  s.LowStockCount,
		Threshold:      threshold,
	}
	if mp := s.MostMovedProduct; mp != nil {
		resp.MostMovedProduct = &MostMovedProductResponse{SKU: mp.SKU, Name: mp.Name, MovementCount: mp.MovementCount}
	}

	h.respond(w, http.StatusOK, resp)
}

// LowStockHandler godoc
// @Summary List low-stock products
// @Tags inventory
// @Produce json
// @Param threshold query int false "Stock level below which a product is listed (default 10)"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse "Invalid threshold"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/inventories/low-stock [get]
func (h *Handlers) LowStockHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := h.thresholdParam(w, r)
	if !ok {
		return
	}

	products, err := h.inventory.LowStock(r.Context(), threshold)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, toProductResponses(products))
}

// thresholdParam reads the optional threshold query parameter. It writes a
// 400 response and returns false when the value is not a positive integer.
func (h *Handlers) thresholdParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := r.URL.Query().Get("threshold")
	if s == "" {
		return inventory.LowStockThreshold, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		h.respondError(w, http.StatusBadRequest, "threshold must be a positive integer")
		return 0, false
	}
	return v, true
}
