package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gestion-riesgos/coe-backend/internal/logger"
	"github.com/gestion-riesgos/coe-backend/internal/resource"
	"github.com/gestion-riesgos/coe-backend/internal/store"
)

// systemActor is the audit identity stamped when a caller does not identify
// the acting user.
const systemActor = "Sistema"

// resourceService implements the uniform CRUD semantics shared by every
// collection: required-field validation, audit stamping, allow-list
// filtering for partial updates, soft-delete translation and post-commit
// read-back of the canonical row.
type resourceService struct {
	repo   store.ResourceRepository
	logger *logger.Logger

	// now is the single UTC clock of the engine; all stamps within one
	// write share one reading. Swappable in tests.
	now func() time.Time
}

// NewResourceService constructs the engine over the given repository.
// The returned service is safe for concurrent use.
func NewResourceService(repo store.ResourceRepository, logger *logger.Logger) ResourceService {
	return &resourceService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// List renders every row of the collection.
func (s *resourceService) List(ctx context.Context, d resource.Descriptor) ([]store.Row, error) {
	return s.repo.List(ctx, d)
}

// ListFiltered executes a filtered list query, binding every path segment
// value as a parameter. Numeric-looking segments are bound as integers so
// they match the integer foreign keys they address.
func (s *resourceService) ListFiltered(ctx context.Context, f resource.Filter, rawArgs []string) ([]store.Row, error) {
	args := make([]any, 0, len(rawArgs))
	for _, raw := range rawArgs {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			args = append(args, n)
			continue
		}
		args = append(args, raw)
	}

	return s.repo.ListFiltered(ctx, f, args)
}

// Get returns one row by primary key; absent ids surface as
// [store.ErrNotFound].
func (s *resourceService) Get(ctx context.Context, d resource.Descriptor, id int64) (store.Row, error) {
	return s.repo.GetByID(ctx, d, id)
}

// Create validates the body, stamps the audit columns and inserts the row,
// then reads the canonical row back after the commit.
//
// Defaults applied when the caller omits them: activo = true,
// creador = "Sistema", modificador = creador. creacion and modificacion are
// always stamped with one clock reading.
func (s *resourceService) Create(ctx context.Context, d resource.Descriptor, body map[string]any) (store.Row, error) {
	log := logger.FromContext(ctx)

	if body == nil {
		body = map[string]any{}
	}

	if missing := missingRequired(d, body); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	now := s.now().UTC()
	allowed := insertableSet(d)

	values := make(map[string]any, len(body)+5)
	for key, value := range body {
		if _, ok := allowed[key]; !ok {
			continue
		}
		values[key] = normalizeScalar(value)
	}

	if _, ok := values["activo"]; !ok {
		values["activo"] = true
	}

	creador, _ := values["creador"].(string)
	if creador == "" {
		creador = systemActor
	}
	values["creador"] = creador

	if modificador, _ := values["modificador"].(string); modificador == "" {
		values["modificador"] = creador
	}

	values["creacion"] = now
	values["modificacion"] = now

	id, err := s.repo.Insert(ctx, d, values)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, d, id)
	if err != nil {
		log.Err(err).Str("table", d.Table).Int64("id", id).Msg("row committed but could not be read back")
		return nil, fmt.Errorf("%w: %w", ErrReadBackFailed, err)
	}

	return row, nil
}

// Update applies a partial update: the SET clause is the intersection of
// the body with the descriptor's allow-list, plus the modification stamps.
// A supplied creation pair is ignored; only modification is applied.
// Zero affected rows surface as [store.ErrNotFound].
func (s *resourceService) Update(ctx context.Context, d resource.Descriptor, id int64, body map[string]any) (store.Row, error) {
	log := logger.FromContext(ctx)

	if body == nil {
		body = map[string]any{}
	}

	now := s.now().UTC()
	allowed := d.UpdatableSet()

	sets := make(map[string]any, len(body)+2)
	for key, value := range body {
		if _, ok := allowed[key]; !ok {
			continue
		}
		sets[key] = normalizeScalar(value)
	}

	modificador, _ := body["modificador"].(string)
	if modificador == "" {
		modificador = systemActor
	}
	sets["modificador"] = modificador
	sets["modificacion"] = now

	if err := s.repo.Update(ctx, d, id, sets); err != nil {
		return nil, err
	}

	row, err := s.repo.GetByID(ctx, d, id)
	if err != nil {
		log.Err(err).Str("table", d.Table).Int64("id", id).Msg("row updated but could not be read back")
		return nil, fmt.Errorf("%w: %w", ErrReadBackFailed, err)
	}

	return row, nil
}

// Delete removes the row. Soft-delete collections flip activo to false with
// a modification stamp instead of issuing a DELETE, so the row stays
// recoverable by primary key.
func (s *resourceService) Delete(ctx context.Context, d resource.Descriptor, id int64) error {
	if d.SoftDelete {
		now := s.now().UTC()
		sets := map[string]any{
			"activo":       false,
			"modificador":  systemActor,
			"modificacion": now,
		}
		return s.repo.Update(ctx, d, id, sets)
	}

	return s.repo.Delete(ctx, d, id)
}

// missingRequired collects every required field that is absent, null or an
// empty string, so the client can fix the whole body in one round trip.
func missingRequired(d resource.Descriptor, body map[string]any) []string {
	var missing []string
	for _, field := range d.Required {
		value, present := body[field]
		if !present || value == nil {
			missing = append(missing, field)
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			missing = append(missing, field)
		}
	}

	return missing
}

// insertableSet is the set of body keys an insert may carry: the domain
// columns of the descriptor plus activo and the creator/modifier pair.
// The stamps (creacion, modificacion) and id are engine-owned.
func insertableSet(d resource.Descriptor) map[string]struct{} {
	set := make(map[string]struct{}, len(d.Updatable)+len(d.Required)+3)
	for _, col := range d.Updatable {
		set[col] = struct{}{}
	}
	for _, col := range d.Required {
		set[col] = struct{}{}
	}
	set["activo"] = struct{}{}
	set["creador"] = struct{}{}
	set["modificador"] = struct{}{}

	delete(set, "id")
	delete(set, "creacion")
	delete(set, "modificacion")

	return set
}

// normalizeScalar converts JSON-decoded values into driver-friendly forms:
// integral float64 values become int64 so they bind cleanly to integer
// foreign keys. Everything else passes through opaquely, including NULLs.
func normalizeScalar(v any) any {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}

	return v
}
