package http

import (
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
)

// apiKeyGate guards the public reporting views. The key arrives either as
// the X-API-Key header or the api_key query parameter and must match one of
// the configured PUBLIC_API_KEYS. An unset server configuration closes the
// surface with its own distinct message.
func (h *Handler) apiKeyGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		configured := h.cfg.App.APIKeys()
		if len(configured) == 0 {
			log.Error().Msg("public endpoint hit but PUBLIC_API_KEYS is not configured")
			respondError(w, ErrAPIKeysNotConfigured)
			return
		}

		key := r.Header.Get("X-API-Key")
		if key == "" {
			key = r.URL.Query().Get("api_key")
		}
		if key == "" {
			respondError(w, ErrAPIKeyRequired)
			return
		}

		for _, allowed := range configured {
			if key == allowed {
				next.ServeHTTP(w, r)
				return
			}
		}

		log.Error().Msg("public endpoint hit with unknown API key")
		respondError(w, ErrAPIKeyInvalid)
	})
}
