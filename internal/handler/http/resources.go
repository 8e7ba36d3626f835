package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

// The generic CRUD handlers below serve every resource collection. Each is
// a factory closing over the collection's descriptor; the route table in
// Init registers one instance per catalog entry.

// list handles GET /api/<recurso>/.
func (h *Handler) list(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rows, err := h.services.ResourceService.List(r.Context(), d)
		if err != nil {
			log.Err(err).Str("recurso", d.Name).Msg("error occurred during listing resource")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, rows, http.StatusOK)
	}
}

// listFiltered handles the read-only filter routes declared per descriptor,
// e.g. GET /api/alojamientos/parroquia/{parroquia_id}. Path parameters are
// bound to the filter's placeholders in declaration order.
func (h *Handler) listFiltered(f resource.Filter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rawArgs := make([]string, 0, len(f.Params))
		for _, param := range f.Params {
			rawArgs = append(rawArgs, chi.URLParam(r, param))
		}

		rows, err := h.services.ResourceService.ListFiltered(r.Context(), f, rawArgs)
		if err != nil {
			log.Err(err).Str("ruta", f.Path).Msg("error occurred during filtered listing")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, rows, http.StatusOK)
	}
}

// getByID handles GET /api/<recurso>/{id}.
func (h *Handler) getByID(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		id, err := idFromRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}

		row, err := h.services.ResourceService.Get(r.Context(), d, id)
		if err != nil {
			log.Err(err).Str("recurso", d.Name).Int64("id", id).Msg("error occurred during getting resource")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, row, http.StatusOK)
	}
}

// create handles POST /api/<recurso>/. Answers 201 with the stored row read
// back after commit, so generated id and audit stamps reach the client.
func (h *Handler) create(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := decodeBody(r)
		if err != nil {
			respondError(w, err)
			return
		}

		row, err := h.services.ResourceService.Create(r.Context(), d, body)
		if err != nil {
			log.Err(err).Str("recurso", d.Name).Msg("error occurred during creating resource")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, row, http.StatusCreated)
	}
}

// update handles PUT /api/<recurso>/{id}. Partial: only keys present in the
// body and in the descriptor's allow-list are written.
func (h *Handler) update(d resource.Descriptor) http.HandlerFunc {
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

		row, err := h.services.ResourceService.Update(r.Context(), d, id, body)
		if err != nil {
			log.Err(err).Str("recurso", d.Name).Int64("id", id).Msg("error occurred during updating resource")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, row, http.StatusOK)
	}
}

// deleteByID handles DELETE /api/<recurso>/{id}. Soft-delete collections
// flip activo instead of removing the row; the response shape is the same.
func (h *Handler) deleteByID(d resource.Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		id, err := idFromRequest(r)
		if err != nil {
			respondError(w, err)
			return
		}

		if err := h.services.ResourceService.Delete(r.Context(), d, id); err != nil {
			log.Err(err).Str("recurso", d.Name).Int64("id", id).Msg("error occurred during deleting resource")
			respondError(w, err)
			return
		}

		utils.WriteJSON(w, models.MessageResponse{Message: "registro eliminado"}, http.StatusOK)
	}
}

// idFromRequest parses the {id} path parameter. The route pattern already
// constrains it to digits; the parse guards against overflow.
func idFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// decodeBody reads the request body as a generic JSON object. An absent
// body is treated as {} so the required-field check still runs and the
// client gets the missing-field list. The engine validates keys against the
// descriptor, so unknown fields are dropped there rather than rejected here.
func decodeBody(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, ErrInvalidJSONBody
	}

	return body, nil
}
