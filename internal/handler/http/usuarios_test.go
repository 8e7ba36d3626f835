package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/models"
)

var usuariosDescriptor = resource.Descriptor{
	Name:      "usuarios",
	Table:     "usuarios",
	Required:  []string{"usuario", "clave"},
	Updatable: []string{"usuario", "clave", "descripcion", "activo"},
	OrderByID: true,
}

func TestCreateUsuario_HashesClaveBeforeService(t *testing.T) {
	resources := &stubResourceService{createdRow: store.Row{"id": int64(1)}}
	h := newTestHandler(&service.Services{
		AuthService:     &stubAuthService{},
		ResourceService: resources,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios/", strings.NewReader(`{"usuario":"nuevo","clave":"secreta"}`))
	h.createUsuario(usuariosDescriptor)(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	// the plaintext never reaches the engine
	assert.Equal(t, "hash:secreta", resources.createdBody["clave"])
}

func TestCreateUsuario_UnknownFieldRejected(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService:     &stubAuthService{},
		ResourceService: &stubResourceService{},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios/", strings.NewReader(`{"usuario":"a","clave":"b","es_admin":true}`))
	h.createUsuario(usuariosDescriptor)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "es_admin")
}

func TestCreateUsuario_EmptyClaveRejected(t *testing.T) {
	h := newTestHandler(&service.Services{
		AuthService:     &stubAuthService{},
		ResourceService: &stubResourceService{},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios/", strings.NewReader(`{"usuario":"a","clave":""}`))
	h.createUsuario(usuariosDescriptor)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUsuario_WithoutClaveKeepsHash(t *testing.T) {
	resources := &stubResourceService{updatedRow: store.Row{"id": int64(2)}}
	h := newTestHandler(&service.Services{
		AuthService:     &stubAuthService{},
		ResourceService: resources,
	}, nil)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(`{"descripcion":"nueva"}`)), "id", "2")
	h.updateUsuario(usuariosDescriptor)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, resources.updatedBody, "clave")
}

func TestUpdateUsuario_RehashesNewClave(t *testing.T) {
	resources := &stubResourceService{updatedRow: store.Row{"id": int64(2)}}
	h := newTestHandler(&service.Services{
		AuthService:     &stubAuthService{},
		ResourceService: resources,
	}, nil)

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/usuarios/2", strings.NewReader(`{"clave":"renovada"}`)), "id", "2")
	h.updateUsuario(usuariosDescriptor)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hash:renovada", resources.updatedBody["clave"])
}
