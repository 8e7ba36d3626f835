package http

import "errors"

// Sentinel errors used by the auth gate when inspecting the "Authorization"
// HTTP header. Their messages are the exact strings the API contract emits.
var (
	// ErrAuthorizationHeaderRequired is returned when a gated request does
	// not include an "Authorization" header at all.
	ErrAuthorizationHeaderRequired = errors.New("Authorization header required")

	// ErrAuthorizationHeaderNotBearer is returned when the header is present
	// but does not follow the "Bearer <token>" format.
	ErrAuthorizationHeaderNotBearer = errors.New("Authorization header must be Bearer token")

	// ErrInvalidOrExpiredToken is returned when the bearer token fails
	// validation: bad signature, wrong issuer, expired, malformed.
	ErrInvalidOrExpiredToken = errors.New("Invalid or expired token")
)

// Sentinel errors used by the public-surface gates.
var (
	// ErrAPIKeyRequired is returned when a public reporting request carries
	// no API key at all.
	ErrAPIKeyRequired = errors.New("API key requerida")

	// ErrAPIKeyInvalid is returned when the supplied API key is not in the
	// configured allow-list.
	ErrAPIKeyInvalid = errors.New("API key invalida")

	// ErrAPIKeysNotConfigured is returned when PUBLIC_API_KEYS is unset, so
	// the public surface is closed regardless of the supplied key.
	ErrAPIKeysNotConfigured = errors.New("API keys no configuradas en el servidor")

	// ErrExportTokenInvalid is returned when the CSV export token check
	// fails.
	ErrExportTokenInvalid = errors.New("token de exportacion invalido")

	// ErrExportNotFound is returned when an export route names a table
	// outside the fixed whitelist.
	ErrExportNotFound = errors.New("exportacion no disponible")
)

// Request-shape errors raised before any service call.
var (
	// ErrInvalidJSONBody is returned when a request body cannot be decoded
	// as the expected JSON shape.
	ErrInvalidJSONBody = errors.New("JSON invalido")

	// ErrUnknownField is returned by the strict validator when a sensitive
	// endpoint receives a field outside its allow-list.
	ErrUnknownField = errors.New("campo no permitido")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("identificador invalido")
)
