// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, CORS, logging and error-mapping
// concerns are all handled at this layer before requests reach the service
// layer.
package http

import (
	"net/http"
	"strings"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
)

// exactWhitelist lists the paths reachable without a bearer token.
var exactWhitelist = map[string]struct{}{
	"/api/health":         {},
	"/api/usuarios/login": {},
	"/api/usuarios":       {},
}

// prefixWhitelist lists the path prefixes of the public and documentation
// surfaces; they carry their own key checks.
var prefixWhitelist = []string{
	"/apidocs",
	"/flasgger_static",
	"/apispec",
	"/api/public",
}

// authGate is the process-wide request filter. It allows CORS preflights
// and whitelisted paths through, and requires a valid bearer token for
// everything else, storing the decoded claims in the request context under
// [utils.ClaimsCtxKey] for downstream handlers.
//
// Rejections are always 401 with the contract's exact messages:
//   - no Authorization header → "Authorization header required"
//   - header not of the form "Bearer <token>" → "Authorization header must
//     be Bearer token"
//   - token fails validation → "Invalid or expired token"
func (h *Handler) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		path := strings.TrimSuffix(r.URL.Path, "/")
		if path == "" {
			path = r.URL.Path
		}

		if _, ok := exactWhitelist[path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		for _, prefix := range prefixWhitelist {
			if strings.HasPrefix(path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrAuthorizationHeaderRequired).Send()
			respondError(w, ErrAuthorizationHeaderRequired)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			respondError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			respondError(w, ErrInvalidOrExpiredToken)
			return
		}

		// Store the decoded claims in the context so that downstream
		// handlers can identify the actor without re-parsing the token.
		ctx = utils.WithClaims(ctx, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header must follow the standard format:
//
//	Authorization: Bearer <token>
//
// Returns [ErrAuthorizationHeaderNotBearer] when the scheme is not Bearer,
// the token part is missing, or it is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrAuthorizationHeaderNotBearer
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrAuthorizationHeaderNotBearer
	}

	return tokenString, nil
}
