package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-riesgos/coe-backend/models"
)

const (
	testIssuer  = "coe-backend"
	testSignKey = "test-secret"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	user := models.Usuario{ID: 5, Usuario: "operador1"}

	token, err := GenerateJWTToken(testIssuer, user, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.Claims.UserID)
	assert.Equal(t, "operador1", parsed.Claims.Usuario)
	assert.Equal(t, testIssuer, parsed.Claims.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	user := models.Usuario{ID: 1, Usuario: "a"}

	_, err := GenerateJWTToken("", user, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, user, 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, user, time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, models.Usuario{ID: 1, Usuario: "a"}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "otra-clave", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("otro-emisor", models.Usuario{ID: 1, Usuario: "a"}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, models.Usuario{ID: 1, Usuario: "a"}, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsNonHMAC(t *testing.T) {
	// alg=none must never validate
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &models.TokenClaims{
		UserID:  1,
		Usuario: "a",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	assert.Error(t, err)
}
