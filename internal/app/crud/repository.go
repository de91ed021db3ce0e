package crud

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository[T any] interface {
	Save(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type repository[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewRepository returns a store for T. Associations named in preloads are loaded on
// every read and never written.
func NewRepository[T any](db *gorm.DB, preloads ...string) Repository[T] {
	return &repository[T]{db: db, preloads: preloads}
}

func (r *repository[T]) read(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	return q
}

// Save inserts entity when its identifier is zero and overwrites every column otherwise.
func (r *repository[T]) Save(ctx context.Context, entity *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

func (r *repository[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var entity T
	err := r.read(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	err := r.read(ctx).
		Order("id ASC").
		Find(&entities).Error
	return entities, err
}

func (r *repository[T]) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID is a no-op when no row matches.
func (r *repository[T]) DeleteByID(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}

func (r *repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
