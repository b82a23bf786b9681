package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "smartcampus/internal/errors"
	"smartcampus/internal/repository"
)

// Stamped constrains the pointer type of a record that can receive its
// server-assigned identity and timestamps.
type Stamped[T any] interface {
	*T
	StampNew(id string, now time.Time)
	StampUpdate(now time.Time)
}

// ResourceService exposes the uniform list/create/update/delete contract
// shared by the portal resources. Creation assigns a fresh uuid and both
// timestamps; updates are partial (the caller supplies an apply function
// mutating only the requested fields) and always refresh updatedAt.
type ResourceService[T any, PT Stamped[T]] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, id string, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id string) error
}

type resourceService[T any, PT Stamped[T]] struct {
	repo repository.ResourceRepository[T]
	now  func() time.Time
}

// NewResourceService builds a ResourceService over one resource table.
func NewResourceService[T any, PT Stamped[T]](repo repository.ResourceRepository[T]) ResourceService[T, PT] {
	return &resourceService[T, PT]{repo: repo, now: time.Now}
}

func (s *resourceService[T, PT]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *resourceService[T, PT]) Create(ctx context.Context, rec *T) (*T, error) {
	PT(rec).StampNew(uuid.New().String(), s.now().UTC())
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update loads the record, applies the partial mutation and writes it back.
// An unknown id is rejected, never upserted.
func (s *resourceService[T, PT]) Update(ctx context.Context, id string, apply func(*T)) (*T, error) {
	if id == "" {
		return nil, apperrors.ErrMissingID
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	apply(rec)
	PT(rec).StampUpdate(s.now().UTC())
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the record. Deleting an absent id succeeds; ids are never
// reused, so repeated deletes are harmless.
func (s *resourceService[T, PT]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrMissingIDParam
	}
	return s.repo.Delete(ctx, id)
}
