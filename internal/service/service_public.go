package service

import (
	"context"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/store"
)

// publicService serves the read-only reporting views of the public surface.
// The segment → view mapping is the fixed whitelist in [store.PublicViews];
// anything outside it is rejected before touching the database.
type publicService struct {
	views  store.ViewRepository
	logger *logger.Logger
}

// NewPublicService constructs a PublicService over the given view
// repository.
func NewPublicService(views store.ViewRepository, logger *logger.Logger) PublicService {
	return &publicService{
		views:  views,
		logger: logger,
	}
}

// FetchView renders a reporting view, optionally scoped by emergency id.
// Unknown segments surface as [ErrUnknownView].
func (p *publicService) FetchView(ctx context.Context, segment string, emergenciaID int64) ([]store.Row, error) {
	view, ok := store.PublicViews[segment]
	if !ok {
		return nil, ErrUnknownView
	}

	return p.views.FetchView(ctx, view, emergenciaID)
}
