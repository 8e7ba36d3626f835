package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors raised by the service layer. Handlers match them with
// [errors.Is] to pick the HTTP status; the messages that reach clients are
// the terse Spanish strings, never driver details.
var (
	// ErrInvalidDataProvided is returned when a request body fails basic
	// validation (empty login, empty password, malformed JSON shape).
	ErrInvalidDataProvided = errors.New("datos invalidos")

	// ErrWrongPassword is returned when credential verification fails.
	// The login endpoint translates it into {success:false} with HTTP 200.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is returned for any bearer token that does
	// not validate: bad signature, wrong issuer, expired, malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrReadBackFailed is returned when a write committed successfully but
	// the canonical row could not be fetched afterwards. It is surfaced with
	// a distinct message so the anomaly is observable in logs.
	ErrReadBackFailed = errors.New("registro guardado pero no recuperado")

	// ErrExportUnavailable is returned when a CSV export route is hit while
	// no MySQL reporting source is configured.
	ErrExportUnavailable = errors.New("fuente de reportes no configurada")

	// ErrUnknownView is returned when a public reporting request names a
	// view outside the fixed whitelist.
	ErrUnknownView = errors.New("vista no disponible")
)

// ErrMissingFields is the sentinel matched by [errors.Is] for create
// requests lacking required fields. The concrete error is always a
// [*MissingFieldsError] carrying the field names for the response body.
var ErrMissingFields = errors.New("campos requeridos ausentes")

// MissingFieldsError reports every required field absent from a create
// body, so a client can fix the whole request in one round trip.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields.Error(), strings.Join(e.Fields, ", "))
}

// Is lets errors.Is(err, ErrMissingFields) succeed for the typed error.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
