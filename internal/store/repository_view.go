package store

import (
	"context"
	"fmt"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
)

// PublicViews maps the URL segments of the public reporting endpoints to the
// database views that back them. Only view names from this map ever reach a
// FROM clause; the segment itself is never interpolated.
var PublicViews = map[string]string{
	"afectaciones_version1":         "afectaciones_version1",
	"vw_localidad_eventos":          "vw_localidad_eventos",
	"vw_alojamientos":               "vw_alojamientos",
	"vw_requerimientos":             "vw_requerimientos",
	"vw_afectacion_infraestructura": "vw_afectacion_infraestructura",
}

// viewRepository is the PostgreSQL-backed implementation of [ViewRepository].
// It serves the read-only reporting views exposed under /api/public.
type viewRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewViewRepository constructs a [ViewRepository] backed by the provided
// database connection and logger.
func NewViewRepository(db *DB, logger *logger.Logger) ViewRepository {
	logger.Debug().Msg("creating view repository")
	return &viewRepository{
		db:     db,
		logger: logger,
	}
}

// FetchView renders all rows of a reporting view, optionally scoped to one
// emergency. The view name must come from [PublicViews]; emergenciaID == 0
// returns the whole view.
func (r *viewRepository) FetchView(ctx context.Context, view string, emergenciaID int64) ([]Row, error) {
	log := logger.FromContext(ctx)

	query := fmt.Sprintf(`SELECT * FROM %s`, view)
	args := make([]any, 0, 1)
	if emergenciaID != 0 {
		query += ` WHERE emergencia_id = $1`
		args = append(args, emergenciaID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "viewRepository.FetchView").Str("view", view).Msg("failed to query reporting view")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRowsToMaps(rows)
}
