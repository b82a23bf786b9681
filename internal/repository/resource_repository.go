package repository

import (
	"context"

	"gorm.io/gorm"
)

// ResourceRepository defines the persistence operations shared by every
// portal resource table. The type parameter is the record struct.
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, rec *T) error
	Save(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id string) error
}

type resourceRepository[T any] struct {
	db   *gorm.DB
	omit []string
}

// NewResourceRepository builds a GORM-backed repository for one record type.
// Columns named in omitOnSave are excluded from Save: derived columns that
// other statements maintain (the menu rating aggregate) must not be clobbered
// by a write-back of a stale read.
func NewResourceRepository[T any](db *gorm.DB, omitOnSave ...string) ResourceRepository[T] {
	return &resourceRepository[T]{db: db, omit: omitOnSave}
}

// List returns every record in the table, unordered.
func (r *resourceRepository[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByID returns the record or gorm.ErrRecordNotFound.
func (r *resourceRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create persists a fully populated record.
func (r *resourceRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// Save writes back all fields of an existing record except the omitted ones.
func (r *resourceRepository[T]) Save(ctx context.Context, rec *T) error {
	tx := r.db.WithContext(ctx)
	if len(r.omit) > 0 {
		tx = tx.Omit(r.omit...)
	}
	return tx.Save(rec).Error
}

// Delete removes the record. Deleting an absent id is not an error.
func (r *resourceRepository[T]) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}
