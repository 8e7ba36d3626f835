package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

type stubUserRepo struct {
	user models.Usuario
	err  error
}

func (s *stubUserRepo) FindUsuarioByLogin(ctx context.Context, usuario string) (models.Usuario, error) {
	return s.user, s.err
}

func newTestAuthService(repo store.UserRepository) *authService {
	return &authService{
		userRepository: repo,
		tokenSignKey:   "test-secret",
		tokenIssuer:    "coe-backend",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("clave-segura")
	require.NoError(t, err)

	svc := newTestAuthService(&stubUserRepo{
		user: models.Usuario{ID: 1, Usuario: "operador1", Clave: hash, Activo: true},
	})

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Usuario: "operador1",
		Clave:   "clave-segura",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Usuario: "", Clave: ""})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_UnknownUserIsWrongPassword(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{err: store.ErrNoUserWasFound})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Usuario: "fantasma",
		Clave:   "lo-que-sea",
	})

	// an unknown user and a wrong password are indistinguishable
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("clave-correcta")
	require.NoError(t, err)

	svc := newTestAuthService(&stubUserRepo{
		user: models.Usuario{ID: 1, Usuario: "operador1", Clave: hash, Activo: true},
	})

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Usuario: "operador1",
		Clave:   "clave-incorrecta",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_PasswordIsCaseSensitive(t *testing.T) {
	hash, err := utils.HashPassword("Clave123")
	require.NoError(t, err)

	svc := newTestAuthService(&stubUserRepo{
		user: models.Usuario{ID: 1, Usuario: "operador1", Clave: hash, Activo: true},
	})

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Usuario: "operador1",
		Clave:   "clave123",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{})
	user := models.Usuario{ID: 7, Usuario: "operador1"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.Claims.UserID)
	assert.Equal(t, "operador1", parsed.Claims.Usuario)
}

func TestParseToken_WrongKeyRejected(t *testing.T) {
	issuing := newTestAuthService(&stubUserRepo{})
	token, err := issuing.CreateToken(context.Background(), models.Usuario{ID: 1, Usuario: "a"})
	require.NoError(t, err)

	verifying := newTestAuthService(&stubUserRepo{})
	verifying.tokenSignKey = "otra-clave"

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_ExpiredRejected(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{})
	svc.tokenDuration = -time.Minute

	token, err := svc.CreateToken(context.Background(), models.Usuario{ID: 1, Usuario: "a"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_GarbageRejected(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{})

	_, err := svc.ParseToken(context.Background(), "no-es-un-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestHashClave_ProducesVerifiableHash(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{})

	hash, err := svc.HashClave("mi-clave")
	require.NoError(t, err)
	assert.NotEqual(t, "mi-clave", hash)
	assert.True(t, utils.VerifyPassword(hash, "mi-clave"))
}

func TestLogin_RepositoryErrorDoesNotLeak(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{err: errors.New("connection refused")})

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Usuario: "operador1",
		Clave:   "clave",
	})

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.NotContains(t, err.Error(), "connection refused")
}
