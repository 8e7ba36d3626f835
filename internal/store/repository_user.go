package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/models"
)

const findUsuarioByLogin = `SELECT id, usuario, descripcion, clave, activo
	FROM usuarios
	WHERE usuario = $1 AND activo = true;`

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It serves the login lookup against the "usuarios" table; all other user
// operations travel through the generic resource engine.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUsuarioByLogin retrieves the active user whose login name matches
// usuario.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound]
//   - any driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) FindUsuarioByLogin(ctx context.Context, usuario string) (models.Usuario, error) {
	log := logger.FromContext(ctx)

	var found models.Usuario
	row := r.db.QueryRowContext(ctx, findUsuarioByLogin, usuario)

	if err := row.Scan(&found.ID, &found.Usuario, &found.Descripcion, &found.Clave, &found.Activo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Usuario{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUsuarioByLogin").Msg("error: scanning error")
		return models.Usuario{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
