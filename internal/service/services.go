package service

import (
	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/store"
)

// Services aggregates every service the HTTP layer depends on.
type Services struct {
	AuthService     AuthService
	ResourceService ResourceService
	PublicService   PublicService
	ExportService   ExportService
}

// NewServices wires the service layer over the given storages and
// configuration.
func NewServices(storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ResourceService: NewResourceService(storages.ResourceRepository, logger),
		PublicService:   NewPublicService(storages.ViewRepository, logger),
		ExportService:   NewExportService(storages.ReportingDB, logger),
	}
}
