package http

import (
	"fmt"
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/service"
)

// exportCSV builds the handler for one CSV export route, closing over the
// public route segment ("eventos-historico" or "eventos-dashboard").
//
// Access is guarded by a per-route shared-secret token taken from the
// token or api_key query parameter; an empty configured token disables the
// check for that route. The response is streamed in batches so multi-
// hundred-thousand-row tables never load into memory.
func (h *Handler) exportCSV(segment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		table, ok := service.ExportTables[segment]
		if !ok {
			respondError(w, ErrExportNotFound)
			return
		}

		if !h.services.ExportService.Available() {
			log.Error().Str("exportacion", segment).Msg("export route hit but no reporting source is configured")
			respondError(w, service.ErrExportUnavailable)
			return
		}

		if err := h.checkExportToken(segment, r); err != nil {
			respondError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", table))

		flush := func() {}
		if flusher, ok := w.(http.Flusher); ok {
			flush = flusher.Flush
		}

		err := h.services.ExportService.StreamCSV(r.Context(), table, w, flush)
		if err != nil {
			// Headers are already sent once the first batch is out; the only
			// honest move is to log and cut the stream short.
			log.Err(err).Str("exportacion", segment).Msg("error occurred during streaming CSV export")
			return
		}
	}
}

// checkExportToken compares the request's token against the configured
// shared secret of the route. An unset secret means open access.
func (h *Handler) checkExportToken(segment string, r *http.Request) error {
	var expected string
	switch segment {
	case "eventos-historico":
		expected = h.cfg.Export.HistoricoToken
	case "eventos-dashboard":
		expected = h.cfg.Export.DashboardToken
	}

	if expected == "" {
		return nil
	}

	supplied := r.URL.Query().Get("token")
	if supplied == "" {
		supplied = r.URL.Query().Get("api_key")
	}

	if supplied != expected {
		return ErrExportTokenInvalid
	}

	return nil
}
