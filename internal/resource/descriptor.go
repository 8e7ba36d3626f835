// Package resource defines the per-table metadata that drives the generic
// CRUD engine. Each REST collection is described by a [Descriptor]; the
// HTTP layer registers one route group per descriptor and the store layer
// builds every SQL statement from it, so no per-resource handler code
// exists.
package resource

// Filter describes a read-only filtered list query exposed under a resource
// collection, e.g. GET /api/alojamientos/parroquia/{parroquia_id}.
//
// Query is a complete SELECT with $1..$n placeholders; Params names the chi
// URL parameters bound, in order, to those placeholders. Path segments are
// always bound as parameters, never interpolated into the SQL text.
type Filter struct {
	// Path is the chi route suffix registered under the collection,
	// e.g. "/parroquia/{parroquia_id}".
	Path string

	// Params lists the URL parameter names bound to $1..$n, in order.
	Params []string

	// Query is the full parameterized SELECT. JOINed columns are aliased
	// to the JSON keys they should appear under (e.g. parroquia_nombre).
	Query string
}

// Descriptor holds everything the engine needs to serve one resource
// collection: its URL segment, backing table, create-time required fields,
// the UPDATE allow-list, its delete mode and its filtered list queries.
type Descriptor struct {
	// Name is the URL segment under /api/ and usually equals Table.
	Name string

	// Table is the PostgreSQL table backing the collection.
	Table string

	// Required lists the fields that must be present in a create body.
	Required []string

	// Updatable is the allow-list of columns a partial update may set.
	// It never contains id, creador or creacion; those are immutable.
	Updatable []string

	// SoftDelete marks collections whose DELETE flips activo to false
	// instead of removing the row. Their list queries filter activo = true.
	SoftDelete bool

	// OrderByID adds a stable ORDER BY id to the list query. The source
	// system ordered only some collections; that freedom is preserved.
	OrderByID bool

	// Filters holds the read-only filtered list queries of the collection.
	Filters []Filter
}

// immutableColumns are the columns no update may ever touch, regardless of
// what a descriptor declares. Insert sets them exactly once.
var immutableColumns = map[string]struct{}{
	"id":       {},
	"creador":  {},
	"creacion": {},
}

// IsImmutableColumn reports whether col belongs to the fixed set of columns
// excluded from every UPDATE statement.
func IsImmutableColumn(col string) bool {
	_, ok := immutableColumns[col]
	return ok
}

// UpdatableSet returns the allow-list as a lookup set with the immutable
// columns filtered out.
func (d Descriptor) UpdatableSet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Updatable))
	for _, col := range d.Updatable {
		if IsImmutableColumn(col) {
			continue
		}
		set[col] = struct{}{}
	}

	return set
}
