package store

import (
	"context"
	"database/sql"

	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
)

// Storages aggregates every data-access dependency of the service layer:
// the repositories over the primary PostgreSQL store and the raw handle of
// the auxiliary MySQL reporting source (nil when not configured).
type Storages struct {
	ResourceRepository ResourceRepository
	UserRepository     UserRepository
	ViewRepository     ViewRepository

	// ReportingDB is the MySQL source streamed by the CSV exporter.
	ReportingDB *sql.DB
}

// NewStorages connects both databases, runs the embedded migrations on the
// primary store and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	reportingDB, err := NewConnectMySQL(ctx, cfg.MySQL, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		ResourceRepository: NewResourceRepository(db, log),
		UserRepository:     NewUserRepository(db, log),
		ViewRepository:     NewViewRepository(db, log),
		ReportingDB:        reportingDB,
	}, nil
}
