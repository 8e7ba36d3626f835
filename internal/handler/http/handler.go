package http

import (
	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/service"
)

// Handler is the HTTP transport layer of the application. One instance
// serves every resource collection: the route table is generated from the
// resource catalog and all state is read-only after Init.
type Handler struct {
	services *service.Services
	catalog  []resource.Descriptor
	cfg      *config.Config

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler over the service layer and the
// resource catalog.
func NewHandler(services *service.Services, cfg *config.Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		catalog:  resource.Catalog(),
		cfg:      cfg,
		logger:   logger,
	}
}
