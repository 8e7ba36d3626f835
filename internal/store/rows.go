package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is a name-keyed rendering of one database row, ready for JSON
// serialization. Datetimes are ISO-8601 UTC strings and numerics are plain
// JSON scalars; every other value passes through opaquely.
type Row = map[string]any

// FormatTimestamp renders a timestamp in the wire format the API emits:
// YYYY-MM-DDTHH:MM:SS[.ffffff]+00:00, always in UTC. The fractional part is
// present only when the value carries sub-second precision and is always six
// digits wide.
func FormatTimestamp(t time.Time) string {
	u := t.UTC()
	if u.Nanosecond() == 0 {
		return u.Format("2006-01-02T15:04:05") + "+00:00"
	}

	return u.Format("2006-01-02T15:04:05.000000") + "+00:00"
}

// scanRowsToMaps walks a result set and renders every row as a [Row].
// Column order is preserved by the driver; the serializer only needs names.
func scanRowsToMaps(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	results := make([]Row, 0, 50)

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = normalizeValue(values[i], types[i].DatabaseTypeName())
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// normalizeValue converts a driver value into its JSON-friendly form.
//
// The driver is not trusted to return aware timestamps or native numerics
// uniformly, so normalization happens here on the read side: time.Time
// becomes an ISO-8601 UTC string and textual numerics (NUMERIC/DECIMAL
// arrive as bytes) become int64 when integral, float64 otherwise, so that
// costs and coordinates keep their precision without turning into strings.
func normalizeValue(v any, dbType string) any {
	switch value := v.(type) {
	case time.Time:
		return FormatTimestamp(value)
	case []byte:
		s := string(value)
		if isNumericType(dbType) {
			return numericToScalar(s)
		}
		return s
	default:
		return v
	}
}

func isNumericType(dbType string) bool {
	switch strings.ToUpper(dbType) {
	case "NUMERIC", "DECIMAL", "MONEY":
		return true
	default:
		return false
	}
}

// numericToScalar parses a textual numeric into an int64 when it has no
// fractional part and a float64 otherwise. Unparseable values pass through
// as the original string rather than failing the whole row.
func numericToScalar(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f == float64(int64(f)) && !strings.ContainsAny(s, ".eE") {
			return int64(f)
		}
		return f
	}

	return s
}
