package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/auth"
	"github.com/rogerio-castellano/products-msv/internal/inventory"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

// Handlers translates HTTP requests into inventory service calls.
type Handlers struct {
	inventory *inventory.Service
	movements repo.MovementRepository
	summary   repo.SummaryRepository
	auth      *auth.Authenticator
	logger    *zap.Logger
}

// New builds the handlers. authenticator may be nil when authentication is
// disabled, in which case the login route answers 404.
func New(svc *inventory.Service, movements repo.MovementRepository, summary repo.SummaryRepository, authenticator *auth.Authenticator, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		inventory: svc,
		movements: movements,
		summary:   summary,
		auth:      authenticator,
		logger:    logger,
	}
}

// PingHandler godoc
// @Summary An ancient game
// @Description Challenge the server for a match
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (h *Handlers) PingHandler(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, PingResponse{Msg: "pong"})
}
