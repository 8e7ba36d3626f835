package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

func gatedProbe(h *Handler) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return h.authGate(next), &reached
}

func TestAuthGate_WhitelistedPathsPass(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{}}, nil)

	paths := []string{
		"/api/health",
		"/api/usuarios/login",
		"/api/usuarios",
		"/api/public/vw_alojamientos",
		"/api/public/export/eventos-historico",
		"/apidocs/index.html",
		"/apispec_1.json",
		"/flasgger_static/style.css",
	}

	for _, path := range paths {
		gate, reached := gatedProbe(h)
		rec := httptest.NewRecorder()
		gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.True(t, *reached, "expected %s to pass without a token", path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAuthGate_OptionsAlwaysPasses(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{}}, nil)

	gate, reached := gatedProbe(h)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/emergencias", nil))

	assert.True(t, *reached)
}

func TestAuthGate_MissingHeader(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{}}, nil)

	gate, reached := gatedProbe(h)
	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/emergencias", nil))

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Authorization header required", body.Error)
}

func TestAuthGate_NotBearer(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &stubAuthService{}}, nil)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer ", "solo-token"} {
		gate, reached := gatedProbe(h)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/emergencias", nil)
		req.Header.Set("Authorization", header)
		gate.ServeHTTP(rec, req)

		assert.False(t, *reached, "header %q must not pass", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Authorization header must be Bearer token", body.Error)
	}
}

func TestAuthGate_InvalidToken(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService: &stubAuthService{parseErr: service.ErrTokenIsExpiredOrInvalid},
	}, nil)

	gate, reached := gatedProbe(h)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/emergencias", nil)
	req.Header.Set("Authorization", "Bearer token-caducado")
	gate.ServeHTTP(rec, req)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body.Error)
}

func TestAuthGate_ValidTokenStoresClaims(t *testing.T) {
	claims := &models.TokenClaims{UserID: 9, Usuario: "operador1"}
	h := newTestHandler(&service.Services{
		AuthService: &stubAuthService{parseToken: models.Token{Claims: claims}},
	}, nil)

	var seen *models.TokenClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/emergencias", nil)
	req.Header.Set("Authorization", "Bearer token-valido")
	h.authGate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(9), seen.UserID)
	assert.Equal(t, "operador1", seen.Usuario)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// the scheme comparison is case-insensitive per RFC 9110
	token, err = getTokenFromAuthHeader("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Token abc")
	assert.ErrorIs(t, err, ErrAuthorizationHeaderNotBearer)
}
