package resource

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_UniqueNamesAndTables(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range Catalog() {
		assert.False(t, seen[d.Name], "duplicate resource name %q", d.Name)
		seen[d.Name] = true

		assert.NotEmpty(t, d.Table, "resource %q has no table", d.Name)
	}
}

func TestCatalog_NoImmutableColumnsInUpdatable(t *testing.T) {
	for _, d := range Catalog() {
		for _, col := range d.Updatable {
			assert.False(t, IsImmutableColumn(col),
				"resource %q declares immutable column %q as updatable", d.Name, col)
		}
	}
}

func TestCatalog_SoftDeleteSet(t *testing.T) {
	want := map[string]bool{
		"actividades_ejecucion":         true,
		"actividad_ejecucion_funciones": true,
		"actividad_ejecucion_dpa":       true,
	}

	for _, d := range Catalog() {
		assert.Equal(t, want[d.Name], d.SoftDelete, "soft-delete flag mismatch for %q", d.Name)
	}
}

func TestCatalog_FiltersBindEveryParam(t *testing.T) {
	for _, d := range Catalog() {
		for _, f := range d.Filters {
			require.NotEmpty(t, f.Params, "filter %s of %q binds no params", f.Path, d.Name)
			assert.True(t, strings.HasPrefix(f.Path, "/"), "filter path %q of %q must start with /", f.Path, d.Name)

			for i := range f.Params {
				placeholder := fmt.Sprintf("$%d", i+1)
				assert.Contains(t, f.Query, placeholder,
					"filter %s of %q does not use placeholder %s", f.Path, d.Name, placeholder)
			}

			for _, param := range f.Params {
				assert.Contains(t, f.Path, "{"+param+"}",
					"filter %s of %q does not declare segment for param %q", f.Path, d.Name, param)
			}
		}
	}
}

func TestUpdatableSet_DropsImmutables(t *testing.T) {
	d := Descriptor{Updatable: []string{"nombre", "id", "creador", "creacion", "activo"}}

	set := d.UpdatableSet()
	assert.Contains(t, set, "nombre")
	assert.Contains(t, set, "activo")
	assert.NotContains(t, set, "id")
	assert.NotContains(t, set, "creador")
	assert.NotContains(t, set, "creacion")
}
