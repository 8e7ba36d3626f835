package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/store"
)

func TestPublicView_RendersRows(t *testing.T) {
	h := newTestHandler(&service.Services{
		PublicService: &stubPublicService{rows: []store.Row{{"id": int64(1), "parroquia": "Pedernales"}}},
	}, nil)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos", nil), "view", "vw_alojamientos")
	h.publicView(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Pedernales", rows[0]["parroquia"])
}

func TestPublicView_UnknownViewIs404(t *testing.T) {
	h := newTestHandler(&service.Services{
		PublicService: &stubPublicService{err: service.ErrUnknownView},
	}, nil)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/public/usuarios", nil), "view", "usuarios")
	h.publicView(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicView_BadEmergenciaID(t *testing.T) {
	h := newTestHandler(&service.Services{
		PublicService: &stubPublicService{},
	}, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("view", "vw_alojamientos")
	rctx.URLParams.Add("emergencia_id", "abc")
	req := httptest.NewRequest(http.MethodGet, "/api/public/vw_alojamientos/abc", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.publicView(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
