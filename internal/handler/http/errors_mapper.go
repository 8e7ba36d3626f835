package http

import (
	"errors"
	"net/http"

	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

var errorStatusMap = map[error]int{
	service.ErrMissingFields:       http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSONBody:             http.StatusBadRequest,
	ErrUnknownField:                http.StatusBadRequest,
	ErrInvalidID:                   http.StatusBadRequest,

	ErrAuthorizationHeaderRequired:  http.StatusUnauthorized,
	ErrAuthorizationHeaderNotBearer: http.StatusUnauthorized,
	ErrInvalidOrExpiredToken:        http.StatusUnauthorized,
	ErrAPIKeyRequired:               http.StatusUnauthorized,
	ErrAPIKeyInvalid:                http.StatusUnauthorized,
	ErrAPIKeysNotConfigured:         http.StatusUnauthorized,
	ErrExportTokenInvalid:           http.StatusUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrNotFound:      http.StatusNotFound,
	service.ErrUnknownView: http.StatusNotFound,
	ErrExportNotFound:      http.StatusNotFound,

	store.ErrDuplicate: http.StatusConflict,

	service.ErrExportUnavailable: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	// a committed write whose read-back failed also wraps the store error it
	// hit; the anomaly must answer 500, so this check runs before the map
	// loop, whose iteration order is not fixed
	if errors.Is(err, service.ErrReadBackFailed) {
		return http.StatusInternalServerError
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service or store error into the uniform JSON
// error body. Internal failures are collapsed into a generic Spanish
// message; driver details never reach the client.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	body := models.ErrorResponse{Error: err.Error()}

	var missingErr *service.MissingFieldsError
	if errors.As(err, &missingErr) {
		body.Error = service.ErrMissingFields.Error()
		body.Missing = missingErr.Fields
	}

	// constraint violations reach the client as the sentinel message only
	if errors.Is(err, store.ErrDuplicate) {
		body.Error = store.ErrDuplicate.Error()
	}

	if status == http.StatusInternalServerError {
		body.Error = "error interno del servidor"
		if errors.Is(err, service.ErrReadBackFailed) {
			body.Error = service.ErrReadBackFailed.Error()
		}
	}

	utils.WriteJSON(w, body, status)
}
