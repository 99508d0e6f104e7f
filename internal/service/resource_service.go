package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/softhouse/dreams-gateway/internal/domain"
	"github.com/softhouse/dreams-gateway/internal/platform/downstream"
	"github.com/softhouse/dreams-gateway/internal/platform/logger"
	"github.com/softhouse/dreams-gateway/internal/redact"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/sync/errgroup"
)

// Downstream is the persistence API as seen by the services.
type Downstream interface {
	Create(ctx context.Context, collection string, payload any) (json.RawMessage, error)
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)
	List(ctx context.Context, collection, rawQuery string) (json.RawMessage, error)
	Update(ctx context.Context, collection, id string, payload any) error
	Delete(ctx context.Context, collection, id string) error
}

// ResourceService provides the operations of one collection.
type ResourceService interface {
	// Collection describes the collection served.
	Collection() domain.Collection

	// Create validates body against the collection template and stores it.
	Create(ctx context.Context, body json.RawMessage) (json.RawMessage, error)

	// Get returns the item with the given id.
	Get(ctx context.Context, id string) (json.RawMessage, error)

	// List returns the items matching rawQuery, which is forwarded verbatim.
	List(ctx context.Context, rawQuery string) (json.RawMessage, error)

	// Update overlays body onto the stored item, validates the result and
	// writes it back.
	Update(ctx context.Context, id string, body json.RawMessage) error

	// Delete removes the item with the given id.
	Delete(ctx context.Context, id string) error

	// ListBySide returns the connectors whose side id equals id.
	ListBySide(ctx context.Context, side, id string) (json.RawMessage, error)

	// DeleteBySide removes every connector whose side id equals id and
	// reports how many were removed.
	DeleteBySide(ctx context.Context, side, id string) (int, error)
}

// Options tunes resource services.
type Options struct {
	// DeleteConcurrency bounds parallel deletes in DeleteBySide.
	DeleteConcurrency int
}

// bookkeepingFields are owned by the downstream API and never written back.
var bookkeepingFields = []string{"_id", "createdAt", "updatedAt", "__v"}

type resourceService struct {
	collection domain.Collection
	downstream Downstream
	logger     *slog.Logger
	opts       Options
}

// NewResourceService creates the service for one collection.
func NewResourceService(
	collection domain.Collection,
	ds Downstream,
	log *slog.Logger,
	opts Options,
) (ResourceService, error) {
	if ds == nil {
		return nil, errors.New("downstream cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if collection.Name == "" || collection.New == nil {
		return nil, fmt.Errorf("collection %q is incomplete", collection.Name)
	}
	if opts.DeleteConcurrency < 1 {
		opts.DeleteConcurrency = 1
	}

	return &resourceService{
		collection: collection,
		downstream: ds,
		logger: log.With(
			slog.String("component", "resource_service"),
			slog.String("collection", collection.Name),
		),
		opts: opts,
	}, nil
}

// NewResourceServices creates one service per collection in cat.
func NewResourceServices(
	cat domain.Catalog,
	ds Downstream,
	log *slog.Logger,
	opts Options,
) ([]ResourceService, error) {
	if err := cat.Check(); err != nil {
		return nil, err
	}

	services := make([]ResourceService, 0, len(cat))
	for _, c := range cat {
		svc, err := NewResourceService(c, ds, log, opts)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

func (s *resourceService) Collection() domain.Collection {
	return s.collection
}

func (s *resourceService) Create(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	entity := s.collection.New()
	if err := decodeInto(entity, body); err != nil {
		return nil, err
	}
	entity.Normalize()
	if err := domain.Validate(entity); err != nil {
		return nil, err
	}

	created, err := s.downstream.Create(ctx, s.collection.Name, entity)
	if err != nil {
		return nil, newServiceError(s.collection.Name, "create", err)
	}

	s.log(ctx).Debug("item created")
	return created, nil
}

func (s *resourceService) Get(ctx context.Context, id string) (json.RawMessage, error) {
	item, err := s.downstream.Get(ctx, s.collection.Name, id)
	if err != nil {
		return nil, newServiceError(s.collection.Name, "get", err)
	}
	return item, nil
}

func (s *resourceService) List(ctx context.Context, rawQuery string) (json.RawMessage, error) {
	items, err := s.downstream.List(ctx, s.collection.Name, rawQuery)
	if err != nil {
		return nil, newServiceError(s.collection.Name, "list", err)
	}
	return items, nil
}

func (s *resourceService) Update(ctx context.Context, id string, body json.RawMessage) error {
	if !s.collection.Updatable {
		return newServiceError(s.collection.Name, "update", domain.ErrNotUpdatable)
	}

	current, err := s.downstream.Get(ctx, s.collection.Name, id)
	if err != nil {
		return newServiceError(s.collection.Name, "update", err)
	}
	if !gjson.ParseBytes(current).IsObject() {
		return newServiceError(s.collection.Name, "update", ErrUnexpectedShape)
	}

	entity := s.collection.New()
	stored, err := templateFields(entity, current)
	if err != nil {
		return newServiceError(s.collection.Name, "update", err)
	}
	if err := json.Unmarshal(stored, entity); err != nil {
		return newServiceError(s.collection.Name, "update",
			fmt.Errorf("%w: stored item does not match template: %w", ErrUnexpectedShape, err))
	}
	if err := decodeInto(entity, body); err != nil {
		return err
	}
	entity.Normalize()
	if err := domain.Validate(entity); err != nil {
		return err
	}

	merged, err := mergeDocument(current, entity)
	if err != nil {
		return newServiceError(s.collection.Name, "update", err)
	}

	if err := s.downstream.Update(ctx, s.collection.Name, id, json.RawMessage(merged)); err != nil {
		return newServiceError(s.collection.Name, "update", err)
	}

	s.log(ctx).Debug("item updated", slog.String("id", id))
	return nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	if err := s.downstream.Delete(ctx, s.collection.Name, id); err != nil {
		return newServiceError(s.collection.Name, "delete", err)
	}
	s.log(ctx).Debug("item deleted", slog.String("id", id))
	return nil
}

func (s *resourceService) ListBySide(ctx context.Context, side, id string) (json.RawMessage, error) {
	sd, ok := s.collection.Side(side)
	if !ok {
		return nil, newServiceError(s.collection.Name, "list_by_side", fmt.Errorf("%w: %s", ErrUnknownSide, side))
	}

	items, err := s.downstream.List(ctx, s.collection.Name, url.Values{sd.Field: {id}}.Encode())
	if err != nil {
		return nil, newServiceError(s.collection.Name, "list_by_side", err)
	}
	return items, nil
}

func (s *resourceService) DeleteBySide(ctx context.Context, side, id string) (int, error) {
	items, err := s.ListBySide(ctx, side, id)
	if downstream.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	list := gjson.ParseBytes(items)
	if !list.IsArray() {
		return 0, newServiceError(s.collection.Name, "delete_by_side", ErrUnexpectedShape)
	}

	var ids []string
	list.ForEach(func(_, item gjson.Result) bool {
		if itemID := item.Get("_id").String(); itemID != "" {
			ids = append(ids, itemID)
		}
		return true
	})

	var (
		mu      sync.Mutex
		deleted int
		errs    *multierror.Error
		g       errgroup.Group
	)
	g.SetLimit(s.opts.DeleteConcurrency)

	for _, itemID := range ids {
		g.Go(func() error {
			err := s.downstream.Delete(ctx, s.collection.Name, itemID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				deleted++
			case downstream.IsNotFound(err):
				// Already gone.
			default:
				errs = multierror.Append(errs, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	log := s.log(ctx).With(slog.String("side", side), slog.Int("deleted", deleted), slog.Int("matched", len(ids)))
	if err := errs.ErrorOrNil(); err != nil {
		log.Warn("cascade delete incomplete", slog.String("error", redact.Error(err)))
		return deleted, newServiceError(s.collection.Name, "delete_by_side", fmt.Errorf("%w: %w", ErrPartialDelete, err))
	}

	log.Debug("cascade delete completed")
	return deleted, nil
}

func (s *resourceService) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With(
			slog.String("component", "resource_service"),
			slog.String("collection", s.collection.Name),
		)
	}
	return s.logger
}

// decodeInto overlays a JSON object onto entity. Keys the template does not
// declare, including case variants of declared keys, are ignored; fields of
// the wrong type are validation errors.
func decodeInto(entity domain.Entity, body json.RawMessage) error {
	if !gjson.ParseBytes(body).IsObject() {
		return domain.ErrNotJSONObject
	}
	fields, err := templateFields(entity, body)
	if err != nil {
		return domain.NewValidationError("body", "could not be decoded", domain.ErrValidation)
	}
	if err := json.Unmarshal(fields, entity); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, "has the wrong type", domain.ErrValidation)
		}
		return domain.NewValidationError("body", "could not be decoded", domain.ErrValidation)
	}
	return nil
}

// templateFields copies the members of the JSON object doc whose keys exactly
// match a template field of entity into a new object. encoding/json matches
// keys case-insensitively, so doc is never decoded directly.
func templateFields(entity domain.Entity, doc []byte) ([]byte, error) {
	names := domain.FieldNames(entity)
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}

	out := []byte("{}")
	var setErr error
	gjson.ParseBytes(doc).ForEach(func(key, value gjson.Result) bool {
		if !keep[key.String()] {
			return true
		}
		out, setErr = sjson.SetRawBytes(out, key.String(), []byte(value.Raw))
		return setErr == nil
	})
	if setErr != nil {
		return nil, fmt.Errorf("filtering template fields: %w", setErr)
	}
	return out, nil
}

// mergeDocument writes the template fields of entity onto the stored
// document, keeping fields the gateway does not own and dropping the
// downstream bookkeeping fields.
func mergeDocument(current json.RawMessage, entity domain.Entity) ([]byte, error) {
	encoded, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encoding merged item: %w", err)
	}

	doc := []byte(current)
	var setErr error
	gjson.ParseBytes(encoded).ForEach(func(key, value gjson.Result) bool {
		doc, setErr = sjson.SetRawBytes(doc, key.String(), []byte(value.Raw))
		return setErr == nil
	})
	if setErr != nil {
		return nil, fmt.Errorf("merging item: %w", setErr)
	}

	for _, field := range bookkeepingFields {
		if doc, err = sjson.DeleteBytes(doc, field); err != nil {
			return nil, fmt.Errorf("stripping %s: %w", field, err)
		}
	}
	return doc, nil
}
