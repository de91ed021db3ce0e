package crud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"greeting-api/internal/utils"

	"go.uber.org/zap"
)

type Service[T any] interface {
	Name() string
	Create(ctx context.Context, entity *T) (*T, error)
	Replace(ctx context.Context, id uint64, entity *T) (*T, error)
	MergePatch(ctx context.Context, id uint64, patch *T) (*T, error)
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id uint64) (*T, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type Options[T any] struct {
	// Name identifies the entity in errors, cache keys, alerts and events.
	Name  string
	Repo  Repository[T]
	Merge MergeFunc[T]
	Cache Cache
	// Dependents are names of other entities whose cached views embed this one.
	Dependents []string
	Events     *utils.EventBus
	Logger     *zap.Logger
}

type service[T any, PT Model[T]] struct {
	name       string
	repo       Repository[T]
	merge      MergeFunc[T]
	cache      Cache
	dependents []string
	events     *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewService[T any, PT Model[T]](opts Options[T]) Service[T] {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service[T, PT]{
		name:       opts.Name,
		repo:       opts.Repo,
		merge:      opts.Merge,
		cache:      opts.Cache,
		dependents: opts.Dependents,
		events:     opts.Events,
		logger:     logger.Sugar().With("entity", opts.Name),
	}
}

func (s *service[T, PT]) Name() string {
	return s.name
}

func (s *service[T, PT]) Create(ctx context.Context, entity *T) (*T, error) {
	if PT(entity).GetID() != 0 {
		return nil, newValidationError(s.name, KeyIDExists, fmt.Sprintf("A new %s cannot already have an ID", s.name))
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, s.saveError("create", err)
	}

	id := PT(entity).GetID()
	s.afterWrite(ctx, id, "created")
	return s.repo.FindByID(ctx, id)
}

func (s *service[T, PT]) Replace(ctx context.Context, id uint64, entity *T) (*T, error) {
	if err := s.checkExisting(ctx, id, entity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, s.saveError("update", err)
	}

	s.afterWrite(ctx, id, "updated")
	return s.repo.FindByID(ctx, id)
}

// MergePatch applies the non-nil fields of patch to the stored entity. A nil field
// means "unchanged"; there is no way to clear a field through a patch. Writes return
// the entity as reloaded from the store.
func (s *service[T, PT]) MergePatch(ctx context.Context, id uint64, patch *T) (*T, error) {
	if err := s.checkExisting(ctx, id, patch); err != nil {
		return nil, err
	}

	// A concurrent delete between the existence check and this load surfaces as ErrNotFound.
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.merge(existing, patch)

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, s.saveError("patch", err)
	}

	s.afterWrite(ctx, id, "updated")
	return s.repo.FindByID(ctx, id)
}

func (s *service[T, PT]) List(ctx context.Context) ([]*T, error) {
	key := listKey(s.name)
	if data, ok := s.load(ctx, key); ok {
		var cached []*T
		if json.Unmarshal(data, &cached) == nil && cached != nil {
			return cached, nil
		}
	}

	entities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.name, err)
	}

	s.store(ctx, key, entities)
	return entities, nil
}

func (s *service[T, PT]) GetByID(ctx context.Context, id uint64) (*T, error) {
	key := idKey(s.name, id)
	if data, ok := s.load(ctx, key); ok {
		var cached T
		if json.Unmarshal(data, &cached) == nil {
			return &cached, nil
		}
	}

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, entity)
	return entity, nil
}

// DeleteByID succeeds whether or not the entity existed.
func (s *service[T, PT]) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.name, err)
	}

	s.afterWrite(ctx, id, "deleted")
	return nil
}

func (s *service[T, PT]) checkExisting(ctx context.Context, id uint64, entity *T) error {
	entityID := PT(entity).GetID()
	if entityID == 0 {
		return newValidationError(s.name, KeyIDNull, "Invalid id")
	}
	if entityID != id {
		return newValidationError(s.name, KeyIDInvalid, "Invalid ID")
	}

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", s.name, id, err)
	}
	if !exists {
		return newValidationError(s.name, KeyIDNotFound, "Entity not found")
	}
	return nil
}

func (s *service[T, PT]) saveError(action string, err error) error {
	if errors.Is(err, ErrInvalidReference) {
		return newValidationError(s.name, KeyInvalidReference, "Referenced entity not found")
	}
	return fmt.Errorf("failed to %s %s: %w", action, s.name, err)
}

func (s *service[T, PT]) afterWrite(ctx context.Context, id uint64, action string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, idKey(s.name, id), listKey(s.name))
		for _, dep := range s.dependents {
			s.cache.InvalidatePrefix(ctx, dep+":")
		}
	}

	event := s.name + "_" + action
	if s.events != nil && !s.events.Publish(event, map[string]interface{}{"entity": s.name, "id": id}) {
		s.logger.Warnw("Event bus full, dropping event", "event", event, "id", id)
	}

	s.logger.Debugw("Entity "+action, "id", id)
}

func (s *service[T, PT]) load(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Load(ctx, key)
}

func (s *service[T, PT]) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warnw("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	s.cache.Store(ctx, key, data)
}
