// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/gestion-riesgos/coe-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth gate stores the decoded token
// claims of the authenticated request.
var ClaimsCtxKey = contextKey("tokenClaims")

// WithClaims returns a copy of ctx carrying the decoded token claims.
func WithClaims(ctx context.Context, claims *models.TokenClaims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the decoded token claims stored by the auth
// gate.
//
// Returns the claims and an ok flag:
//   - ok == true: the request passed the bearer-token gate
//   - ok == false: no claims present (whitelisted or unauthenticated path)
func GetClaimsFromContext(ctx context.Context) (*models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.TokenClaims)
	return claims, ok
}
