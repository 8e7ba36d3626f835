package service

import (
	"context"
	"io"

	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/models"
)

// AuthService covers the login flow and the bearer-token lifecycle.
type AuthService interface {
	// Login verifies the credentials and returns the matching active user.
	// Wrong login and wrong password are indistinguishable to callers.
	Login(ctx context.Context, req models.LoginRequest) (models.Usuario, error)

	// CreateToken issues a signed JWT carrying the user's identity.
	CreateToken(ctx context.Context, user models.Usuario) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its decoded claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// HashClave replaces a plaintext credential with its storage form.
	// Used by the usuarios create/update handlers before the engine runs.
	HashClave(clave string) (string, error)
}

// ResourceService implements the uniform CRUD semantics every collection
// shares: validation, audit stamping, not-found mapping and post-commit
// read-back.
type ResourceService interface {
	List(ctx context.Context, d resource.Descriptor) ([]store.Row, error)
	ListFiltered(ctx context.Context, f resource.Filter, rawArgs []string) ([]store.Row, error)
	Get(ctx context.Context, d resource.Descriptor, id int64) (store.Row, error)
	Create(ctx context.Context, d resource.Descriptor, body map[string]any) (store.Row, error)
	Update(ctx context.Context, d resource.Descriptor, id int64, body map[string]any) (store.Row, error)
	Delete(ctx context.Context, d resource.Descriptor, id int64) error
}

// PublicService serves the API-key-gated reporting views.
type PublicService interface {
	FetchView(ctx context.Context, segment string, emergenciaID int64) ([]store.Row, error)
}

// ExportService streams reporting tables from the MySQL source as CSV.
type ExportService interface {
	// StreamCSV writes the full content of table to w as CSV, calling flush
	// after every batch so the HTTP layer can push chunks to the client.
	// It aborts between batches when ctx is canceled.
	StreamCSV(ctx context.Context, table string, w io.Writer, flush func()) error

	// Available reports whether a reporting source is configured.
	Available() bool
}
