package service

import (
	"context"

	"lifehub/internal/repository"
	"lifehub/internal/resource"
)

// ResourceService exposes the ownership-scoped operations for one
// resource type. Validation and update planning run here so the
// repository only ever sees normalized fields and finished plans.
type ResourceService[T any] interface {
	List(ctx context.Context, ownerID uint) ([]T, error)
	ListByCategory(ctx context.Context, ownerID uint, category string) ([]T, error)
	Get(ctx context.Context, id, ownerID uint) (*T, error)
	Create(ctx context.Context, ownerID uint, payload map[string]interface{}) (*T, error)
	Update(ctx context.Context, id, ownerID uint, payload map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id, ownerID uint) (uint, error)
}

type resourceService[T any] struct {
	schema resource.Schema
	build  func(ownerID uint, f resource.Fields) *T
	repo   repository.ResourceRepository[T]
}

// NewResourceService creates a service over a schema, a model builder and
// a repository. Projects, ideas and todos all instantiate this one
// implementation.
func NewResourceService[T any](
	schema resource.Schema,
	build func(ownerID uint, f resource.Fields) *T,
	repo repository.ResourceRepository[T],
) ResourceService[T] {
	return &resourceService[T]{schema: schema, build: build, repo: repo}
}

// List returns all of the owner's rows.
func (s *resourceService[T]) List(ctx context.Context, ownerID uint) ([]T, error) {
	return s.repo.List(ctx, ownerID, "")
}

// ListByCategory returns the owner's rows matching the category tag.
func (s *resourceService[T]) ListByCategory(ctx context.Context, ownerID uint, category string) ([]T, error) {
	return s.repo.List(ctx, ownerID, category)
}

// Get returns the row matching id and owner.
func (s *resourceService[T]) Get(ctx context.Context, id, ownerID uint) (*T, error) {
	return s.repo.Get(ctx, id, ownerID)
}

// Create validates the payload with create defaults applied and inserts
// one row owned by ownerID.
func (s *resourceService[T]) Create(ctx context.Context, ownerID uint, payload map[string]interface{}) (*T, error) {
	fields, err := resource.ValidateCreate(s.schema, payload)
	if err != nil {
		return nil, err
	}
	row := s.build(ownerID, fields)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update plans a partial update over the fields present in the payload
// and executes it atomically.
func (s *resourceService[T]) Update(ctx context.Context, id, ownerID uint, payload map[string]interface{}) (*T, error) {
	plan, err := resource.BuildUpdatePlan(s.schema, payload, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, plan)
}

// Delete removes the row matching id and owner.
func (s *resourceService[T]) Delete(ctx context.Context, id, ownerID uint) (uint, error) {
	return s.repo.Delete(ctx, id, ownerID)
}
