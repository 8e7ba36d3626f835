package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
)

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. It serves every resource collection from its
// [resource.Descriptor]; all statements are built with squirrel using Dollar
// placeholders, so no user-controlled value is ever interpolated into SQL
// text. Column names reaching SET clauses come exclusively from descriptor
// allow-lists.
type resourceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided database connection and logger.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every row of the collection. Soft-delete collections filter
// activo = true so logically deleted rows are invisible here while remaining
// recoverable by primary key.
func (r *resourceRepository) List(ctx context.Context, d resource.Descriptor) ([]Row, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("*").From(d.Table).PlaceholderFormat(sq.Dollar)
	if d.SoftDelete {
		builder = builder.Where(sq.Eq{"activo": true})
	}
	if d.OrderByID {
		builder = builder.OrderBy("id")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.List").Str("table", d.Table).Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.List").Str("table", d.Table).Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRowsToMaps(rows)
}

// ListFiltered executes one of the descriptor's read-only filtered list
// queries. Every path segment value arrives as a bound parameter.
func (r *resourceRepository) ListFiltered(ctx context.Context, f resource.Filter, args []any) ([]Row, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, f.Query, args...)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.ListFiltered").Str("path", f.Path).Msg("failed to execute filtered list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRowsToMaps(rows)
}

// GetByID returns the row with the given primary key or [ErrNotFound].
// Soft-deleted rows are still returned here; only list hides them.
func (r *resourceRepository) GetByID(ctx context.Context, d resource.Descriptor, id int64) (Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("*").
		From(d.Table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.GetByID").Str("table", d.Table).Int64("id", id).Msg("failed to execute point read")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results, err := scanRowsToMaps(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	return results[0], nil
}

// Insert persists a new row inside its own transaction and returns the
// database-assigned id. The values map must already carry the audit stamps;
// a RETURNING clause yielding no row rolls back and fails the insert.
// The transaction commits before the caller reads the row back.
func (r *resourceRepository) Insert(ctx context.Context, d resource.Descriptor, values map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(d.Table).
		SetMap(values).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Insert").Str("table", d.Table).Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Insert").Str("table", d.Table).Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "resourceRepository.Insert").Str("table", d.Table).Str("pg_code", postgresError(err)).Msg("insert did not return an id")
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrInsertFailed, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "resourceRepository.Insert").Str("table", d.Table).Msg("failed to commit insert")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return id, nil
}

// Update applies the given SET map to exactly one row by id inside its own
// transaction. Zero affected rows roll back and surface as [ErrNotFound];
// the caller only reads the row back after a successful commit.
//
// The sets map is the intersection of the request body with the
// descriptor's allow-list plus the modification stamps, so creador and
// creacion can never be rewritten here.
func (r *resourceRepository) Update(ctx context.Context, d resource.Descriptor, id int64, sets map[string]any) error {
	log := logger.FromContext(ctx)

	if len(sets) == 0 {
		return fmt.Errorf("%w: empty SET clause", ErrBuildingSQLQuery)
	}

	query, args, err := sq.Update(d.Table).
		SetMap(sets).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Update").Str("table", d.Table).Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Update").Str("table", d.Table).Int64("id", id).Str("pg_code", postgresError(err)).Msg("failed to execute update")
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Delete removes one row by id inside its own transaction. Zero affected
// rows surface as [ErrNotFound] without committing. Soft-delete collections
// never reach this method; their delete goes through Update.
func (r *resourceRepository) Delete(ctx context.Context, d resource.Descriptor, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(d.Table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.Delete").Str("table", d.Table).Int64("id", id).Str("pg_code", postgresError(err)).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
