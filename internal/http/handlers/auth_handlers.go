package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate the operator and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Authentication disabled"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Router /login [post]
func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		h.respondError(w, http.StatusNotFound, "authentication is disabled")
		return
	}

	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	token, err := h.auth.Login(credentials.Username, credentials.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("could not generate token", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	h.respond(w, http.StatusOK, LoginResult{Token: token})
}
