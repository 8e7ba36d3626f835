package http

import (
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/utils"
)

// health answers liveness probes. No auth, no database round-trip.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
