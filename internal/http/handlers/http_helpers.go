package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/inventory"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func (h *Handlers) respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, detail any) {
	h.respond(w, status, ErrorResponse{Detail: detail})
}

// respondServiceError maps inventory errors to their HTTP status.
func (h *Handlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *inventory.ValidationError
		duplicateErr  *inventory.DuplicateSKUError
		notFoundErr   *inventory.NotFoundError
		stockErr      *inventory.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		h.respondError(w, http.StatusUnprocessableEntity, validationErr.Error())
	case errors.As(err, &duplicateErr):
		h.respondError(w, http.StatusBadRequest, duplicateErr.Error())
	case errors.As(err, &notFoundErr):
		h.respondError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &stockErr):
		h.respondError(w, http.StatusUnprocessableEntity, stockErr.Error())
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
