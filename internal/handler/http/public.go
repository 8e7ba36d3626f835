package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
)

// publicView handles GET /api/public/{view} and
// GET /api/public/{view}/{emergencia_id}. The view segment is resolved
// against the fixed whitelist in the service; an absent emergencia_id
// returns the whole view.
func (h *Handler) publicView(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	view := chi.URLParam(r, "view")

	var emergenciaID int64
	if raw := chi.URLParam(r, "emergencia_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			respondError(w, ErrInvalidID)
			return
		}
		emergenciaID = parsed
	}

	rows, err := h.services.PublicService.FetchView(r.Context(), view, emergenciaID)
	if err != nil {
		log.Err(err).Str("vista", view).Msg("error occurred during fetching public view")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}
