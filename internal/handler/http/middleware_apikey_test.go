package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/service"
)

func apiKeyProbe(keys string) (http.Handler, *bool) {
	cfg := &config.Config{}
	cfg.App.PublicAPIKeys = keys
	h := newTestHandler(&service.Services{}, cfg)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return h.apiKeyGate(next), &reached
}

func TestAPIKeyGate_HeaderKeyAccepted(t *testing.T) {
	gate, reached := apiKeyProbe("clave-uno,clave-dos")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos", nil)
	req.Header.Set("X-API-Key", "clave-dos")
	gate.ServeHTTP(rec, req)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyGate_QueryKeyAccepted(t *testing.T) {
	gate, reached := apiKeyProbe("clave-uno")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos?api_key=clave-uno", nil)
	gate.ServeHTTP(rec, req)

	assert.True(t, *reached)
}

func TestAPIKeyGate_MissingKey(t *testing.T) {
	gate, reached := apiKeyProbe("clave-uno")

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos", nil))

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyGate_UnknownKey(t *testing.T) {
	gate, reached := apiKeyProbe("clave-uno")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos", nil)
	req.Header.Set("X-API-Key", "clave-falsa")
	gate.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyGate_NoKeysConfiguredClosesSurface(t *testing.T) {
	gate, reached := apiKeyProbe("")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos", nil)
	req.Header.Set("X-API-Key", "cualquiera")
	gate.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
