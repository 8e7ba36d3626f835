package http

import (
	"context"
	"io"

	"github.com/gestion-riesgos/coe-backend/internal/config"
	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/service"
	"github.com/gestion-riesgos/coe-backend/internal/store"
	"github.com/gestion-riesgos/coe-backend/models"
)

// Stub services shared by the handler tests. Each field overrides one
// behavior; unset fields answer zero values.

type stubAuthService struct {
	loginUser  models.Usuario
	loginErr   error
	parseToken models.Token
	parseErr   error
	hashErr    error
	hashedTo   string
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Usuario, error) {
	return s.loginUser, s.loginErr
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.Usuario) (models.Token, error) {
	return models.Token{SignedString: "token-firmado", Claims: &models.TokenClaims{UserID: user.ID, Usuario: user.Usuario}}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.parseToken, s.parseErr
}

func (s *stubAuthService) HashClave(clave string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}
	if s.hashedTo != "" {
		return s.hashedTo, nil
	}
	return "hash:" + clave, nil
}

type stubResourceService struct {
	listRows []store.Row
	listErr  error

	getRow store.Row
	getErr error

	createdRow  store.Row
	createErr   error
	createdBody map[string]any

	updatedRow  store.Row
	updateErr   error
	updatedBody map[string]any

	deleteErr error
}

func (s *stubResourceService) List(ctx context.Context, d resource.Descriptor) ([]store.Row, error) {
	return s.listRows, s.listErr
}

func (s *stubResourceService) ListFiltered(ctx context.Context, f resource.Filter, rawArgs []string) ([]store.Row, error) {
	return s.listRows, s.listErr
}

func (s *stubResourceService) Get(ctx context.Context, d resource.Descriptor, id int64) (store.Row, error) {
	return s.getRow, s.getErr
}

func (s *stubResourceService) Create(ctx context.Context, d resource.Descriptor, body map[string]any) (store.Row, error) {
	s.createdBody = body
	return s.createdRow, s.createErr
}

func (s *stubResourceService) Update(ctx context.Context, d resource.Descriptor, id int64, body map[string]any) (store.Row, error) {
	s.updatedBody = body
	return s.updatedRow, s.updateErr
}

func (s *stubResourceService) Delete(ctx context.Context, d resource.Descriptor, id int64) error {
	return s.deleteErr
}

type stubPublicService struct {
	rows []store.Row
	err  error
}

func (s *stubPublicService) FetchView(ctx context.Context, segment string, emergenciaID int64) ([]store.Row, error) {
	return s.rows, s.err
}

type stubExportService struct {
	available bool
	payload   string
	err       error
}

func (s *stubExportService) Available() bool { return s.available }

func (s *stubExportService) StreamCSV(ctx context.Context, table string, w io.Writer, flush func()) error {
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.payload)
	flush()
	return err
}

func newTestHandler(services *service.Services, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Handler{
		services: services,
		catalog:  resource.Catalog(),
		cfg:      cfg,
		logger:   logger.Nop(),
	}
}
