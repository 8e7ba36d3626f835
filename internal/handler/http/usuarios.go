package http

import (
	"fmt"
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
)

// usuarioAllowedFields is the strict allow-list for the usuarios write
// endpoints. Unlike the generic handlers, which silently drop unknown keys,
// these reject them: a typo here could otherwise silently skip the password
// hash or grant an unintended column.
var usuarioAllowedFields = map[string]struct{}{
	"usuario":     {},
	"clave":       {},
	"descripcion": {},
	"activo":      {},
	"creador":     {},
	"modificador": {},
}

// createUsuario handles POST /api/usuarios. It enforces the strict field
// allow-list and replaces the plaintext clave with its bcrypt hash before
// handing the body to the generic engine.
func (h *Handler) createUsuario(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := decodeBody(r)
		if err != nil {
			respondError(w, err)
			return
		}

		if err := validateUsuarioFields(body); err != nil {
			respondError(w, err)
			return
		}

		if err := h.hashClaveField(body); err != nil {
			log.Err(err).Msg("error occurred during hashing password")
			respondError(w, err)
			return
		}

		row, err := h.services.ResourceService.Create(r.Context(), d, body)
		if err != nil {
			log.Err(err).Msg("error occurred during creating usuario")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, row, http.StatusCreated)
	}
}

// updateUsuario handles PUT /api/usuarios/{id} with the same strict
// validation and hashing as createUsuario. A body without clave leaves the
// stored hash untouched.
func (h *Handler) updateUsuario(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		id, err := idFromRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}

		body, err := decodeBody(r)
		if err != nil {
			respondError(w, err)
			return
		}

		if err := validateUsuarioFields(body); err != nil {
			respondError(w, err)
			return
		}

		if err := h.hashClaveField(body); err != nil {
			log.Err(err).Msg("error occurred during hashing password")
			respondError(w, err)
			return
		}

		row, err := h.services.ResourceService.Update(r.Context(), d, id, body)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("error occurred during updating usuario")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, row, http.StatusOK)
	}
}

// validateUsuarioFields rejects any body key outside the allow-list.
func validateUsuarioFields(body map[string]any) error {
	for key := range body {
		if _, ok := usuarioAllowedFields[key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
	}

	return nil
}

// hashClaveField replaces a present, non-empty clave with its storage hash.
// The plaintext never reaches the service or store layers.
func (h *Handler) hashClaveField(body map[string]any) error {
	raw, ok := body["clave"]
	if !ok {
		return nil
	}

	clave, ok := raw.(string)
	if !ok || clave == "" {
		return fmt.Errorf("%w: clave", ErrInvalidJSONBody)
	}

	hashed, err := h.services.AuthService.HashClave(clave)
	if err != nil {
		return err
	}

	body["clave"] = hashed

	return nil
}
