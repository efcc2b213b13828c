package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "lifehub/internal/errors"
	"lifehub/internal/resource"
)

// ResourceRepository defines ownership-scoped persistence for one
// resource type. Every operation is predicated on the owner id: a row
// that exists under a different owner is reported exactly like a row
// that does not exist.
type ResourceRepository[T any] interface {
	List(ctx context.Context, ownerID uint, tag string) ([]T, error)
	Get(ctx context.Context, id, ownerID uint) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, plan *resource.UpdatePlan) (*T, error)
	Delete(ctx context.Context, id, ownerID uint) (uint, error)
	ToggleBoolean(ctx context.Context, id, ownerID uint, column string) (*T, error)
}

type resourceRepository[T any] struct {
	db     *gorm.DB
	schema resource.Schema
}

// NewResourceRepository creates a repository for the given schema. The
// same implementation serves projects, ideas and todos; only the schema
// differs.
func NewResourceRepository[T any](db *gorm.DB, schema resource.Schema) ResourceRepository[T] {
	return &resourceRepository[T]{db: db, schema: schema}
}

// List returns the owner's rows, optionally filtered by the schema's tag
// column, in the schema's declared order.
func (r *resourceRepository[T]) List(ctx context.Context, ownerID uint, tag string) ([]T, error) {
	q := r.db.WithContext(ctx).Table(r.schema.Table).Where("user_id = ?", ownerID)
	if tag != "" {
		q = q.Where(r.schema.TagColumn+" = ?", tag)
	}
	rows := make([]T, 0)
	if err := q.Order(r.schema.ListOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns the row matching id and owner.
func (r *resourceRepository[T]) Get(ctx context.Context, id, ownerID uint) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Table(r.schema.Table).
		Where("id = ? AND user_id = ?", id, ownerID).
		Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts one row and fills its generated id and timestamps.
func (r *resourceRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Table(r.schema.Table).Create(row).Error
}

// Update executes the plan as a single conditional statement. The plan is
// opaque here: field names were resolved and validated by the planner.
// RowsAffected decides NotFound, so there is no separate existence check
// for a concurrent delete to race against.
func (r *resourceRepository[T]) Update(ctx context.Context, plan *resource.UpdatePlan) (*T, error) {
	stmt, args := plan.Statement(time.Now())
	res := r.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.Get(ctx, plan.ID, plan.OwnerID)
}

// Delete removes the row matching id and owner and returns the deleted id.
func (r *resourceRepository[T]) Delete(ctx context.Context, id, ownerID uint) (uint, error) {
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM "+r.schema.Table+" WHERE id = ? AND user_id = ?", id, ownerID)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrNotFound
	}
	return id, nil
}

// ToggleBoolean flips a boolean column in place, scoped by id and owner.
// The column name comes from the service layer, never from a payload.
func (r *resourceRepository[T]) ToggleBoolean(ctx context.Context, id, ownerID uint, column string) (*T, error) {
	stmt := fmt.Sprintf("UPDATE %s SET %s = NOT %s, updated_at = ? WHERE id = ? AND user_id = ?",
		r.schema.Table, column, column)
	res := r.db.WithContext(ctx).Exec(stmt, time.Now(), id, ownerID)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.Get(ctx, id, ownerID)
}
