package service

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
)

// exportBatchSize is the number of rows streamed between flushes and client
// disconnect checks.
const exportBatchSize = 1000

// ExportTables maps the export route segments to the MySQL tables they
// stream. Only values from this map ever reach a FROM clause.
var ExportTables = map[string]string{
	"eventos-historico": "eventos_historico",
	"eventos-dashboard": "eventos_dashboard",
}

// exportService streams reporting tables from the auxiliary MySQL source as
// CSV without buffering the result set. db is nil when no source is
// configured; every stream request then fails with [ErrExportUnavailable].
type exportService struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewExportService constructs an ExportService over the MySQL reporting
// handle, which may be nil.
func NewExportService(db *sql.DB, logger *logger.Logger) ExportService {
	return &exportService{
		db:     db,
		logger: logger,
	}
}

// Available reports whether a reporting source is configured.
func (e *exportService) Available() bool {
	return e.db != nil
}

// StreamCSV writes the full content of table to w as CSV.
//
// The header row is derived from the cursor's column names. Rows are
// encoded through a single csv.Writer and pushed to the client batch by
// batch via flush; between batches the request context is checked so a
// disconnected client aborts the stream instead of draining the table.
// The rows cursor is closed deterministically even on early return.
func (e *exportService) StreamCSV(ctx context.Context, table string, w io.Writer, flush func()) error {
	log := logger.FromContext(ctx)

	if e.db == nil {
		return ErrExportUnavailable
	}

	// fixed table name from ExportTables; no user input reaches the SQL
	rows, err := e.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		log.Err(err).Str("func", "exportService.StreamCSV").Str("table", table).Msg("failed to open export cursor")
		return fmt.Errorf("error opening export cursor: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("error reading export columns: %w", err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return fmt.Errorf("error reading export column types: %w", err)
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(columns); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	record := make([]string, len(columns))
	count := 0

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return fmt.Errorf("error scanning export row: %w", err)
		}

		for i := range values {
			record[i] = formatCSVValue(values[i], types[i].DatabaseTypeName())
		}

		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}

		count++
		if count%exportBatchSize == 0 {
			csvWriter.Flush()
			if err := csvWriter.Error(); err != nil {
				return fmt.Errorf("error flushing CSV batch: %w", err)
			}
			flush()

			if err := ctx.Err(); err != nil {
				log.Info().Str("table", table).Int("rows", count).Msg("export aborted by client disconnect")
				return err
			}
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating export rows: %w", err)
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("error flushing CSV: %w", err)
	}
	flush()

	log.Info().Str("table", table).Int("rows", count).Msg("export completed")

	return nil
}

// formatCSVValue renders one cursor value for CSV output: empty string for
// NULL, "YYYY-MM-DD HH:MM:SS" for datetimes, "YYYY-MM-DD" for dates, the
// raw scalar otherwise.
func formatCSVValue(v any, dbType string) string {
	switch value := v.(type) {
	case nil:
		return ""
	case time.Time:
		if dbType == "DATE" {
			return value.Format("2006-01-02")
		}
		return value.Format("2006-01-02 15:04:05")
	case []byte:
		return string(value)
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
