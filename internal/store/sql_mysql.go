package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	_ "github.com/go-sql-driver/mysql"
)

// NewConnectMySQL opens the auxiliary MySQL reporting source used only by
// the CSV export streamer. Returns (nil, nil) when no MySQL database is
// configured, which disables the export routes.
//
// parseTime=true makes DATETIME columns scan as time.Time; loc=UTC keeps
// them consistent with the rest of the system.
func NewConnectMySQL(ctx context.Context, cfg config.MySQL, log *logger.Logger) (*sql.DB, error) {
	if cfg.DB == "" {
		log.Info().Str("func", "NewConnectMySQL").Msg("no MySQL reporting source configured, CSV exports disabled")
		return nil, nil
	}

	auth := cfg.User
	if cfg.Pass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.User, cfg.Pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, cfg.Host, cfg.Port, cfg.DB)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting reporting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to reporting database successfully")

	return db, nil
}
