package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/products-msv/internal/inventory"
)

// OrderProductsHandler godoc
// @Summary Orders a list of products
// @Description For each product requested, the SKU and quantity to remove from stock are specified
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param products body []OrderItemRequest true "The products' order data"
// @Success 200 {array} ProductResponse
// @Failure 404 {object} ErrorResponse "SKU not found"
// @Failure 422 {object} ErrorResponse "Invalid order or insufficient stock"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/orders [post]
func (h *Handlers) OrderProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req []OrderItemRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if errs := validateOrderRequest(req); len(errs) > 0 {
		h.respondError(w, http.StatusUnprocessableEntity, errs)
		return
	}

	items := make([]inventory.OrderItem, len(req))
	for i, item := range req {
		items[i] = inventory.OrderItem{SKU: item.SKU, Quantity: item.Quantity}
	}

	updated, err := h.inventory.OrderProducts(r.Context(), items)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	h.respond(w, http.StatusOK, toProductResponses(updated))
}
