package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

// login handles POST /api/usuarios/login.
//
// Invalid credentials answer HTTP 200 with {"success": false} and nothing
// else, so a caller cannot distinguish an unknown user from a wrong
// password. Only a malformed body or an internal failure produces an error
// status.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		log.Err(err).Msg("error occurred during decoding login request")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			utils.WriteJSON(w, models.LoginResponse{Success: false}, http.StatusOK)
			return
		}
		if errors.Is(err, service.ErrInvalidDataProvided) {
			respondError(w, err)
			return
		}

		log.Err(err).Msg("error occurred during login")
		respondError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("error occurred during token creation")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Success:     true,
		Token:       token.SignedString,
		ID:          user.ID,
		Usuario:     user.Usuario,
		Descripcion: user.Descripcion,
	}, http.StatusOK)
}
