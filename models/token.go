package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every bearer token the service
// issues. Besides the registered claims it transports the user identity the
// handlers need, so that no database lookup is required to authorize a
// request.
type TokenClaims struct {
	// UserID is the internal identifier of the authenticated user.
	UserID int64 `json:"user_id"`

	// Usuario is the login name of the authenticated user.
	Usuario string `json:"usuario"`

	jwt.RegisteredClaims
}

// Token wraps a parsed JWT together with its compact serialized form.
//
// SignedString holds the base64url header.payload.signature representation
// ready to be placed in an Authorization header. Claims is the decoded claim
// set; it is only trustworthy after a successful signature validation.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims *TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
