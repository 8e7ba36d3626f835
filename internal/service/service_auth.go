package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/internal/utils"
	"github.com/gestion-riesgos/coe-backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration(),
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both usuario and clave are non-empty, looks up the
// active account by login name and verifies the bcrypt hash. Which of the
// two factors failed is never revealed to the caller: both a missing user
// and a wrong password come back as ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Usuario, error) {
	log := logger.FromContext(ctx)

	if req.Usuario == "" || req.Clave == "" {
		log.Error().Str("usuario", req.Usuario).Msg("invalid login data provided")
		return models.Usuario{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUsuarioByLogin(ctx, req.Usuario)
	if err != nil {
		log.Err(err).Str("usuario", req.Usuario).Msg("user search by login failed")
		return models.Usuario{}, ErrWrongPassword
	}

	if !utils.VerifyPassword(foundUser.Clave, req.Clave) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("usuario", foundUser.Usuario).
			Msg("wrong password")
		return models.Usuario{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user's id and login as
// custom claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.Usuario) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// HashClave converts a plaintext credential into its bcrypt storage form.
func (a *authService) HashClave(clave string) (string, error) {
	return utils.HashPassword(clave)
}
