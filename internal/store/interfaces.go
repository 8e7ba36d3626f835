package store

import (
	"context"

	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/models"
)

// ResourceRepository is the data-access contract of the generic CRUD engine.
// Every method serves one resource collection from its descriptor; write
// operations own their transaction and commit before returning.
type ResourceRepository interface {
	List(ctx context.Context, d resource.Descriptor) ([]Row, error)
	ListFiltered(ctx context.Context, f resource.Filter, args []any) ([]Row, error)
	GetByID(ctx context.Context, d resource.Descriptor, id int64) (Row, error)
	Insert(ctx context.Context, d resource.Descriptor, values map[string]any) (int64, error)
	Update(ctx context.Context, d resource.Descriptor, id int64, sets map[string]any) error
	Delete(ctx context.Context, d resource.Descriptor, id int64) error
}

// UserRepository serves the credential lookups of the login flow.
type UserRepository interface {
	FindUsuarioByLogin(ctx context.Context, usuario string) (models.Usuario, error)
}

// ViewRepository serves the read-only reporting views of the public surface.
type ViewRepository interface {
	FetchView(ctx context.Context, view string, emergenciaID int64) ([]Row, error)
}
