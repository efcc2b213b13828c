package service

import (
	"context"

	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// TodoService handles todo operations. On top of the shared resource
// operations it can flip a todo's completion state in place.
type TodoService interface {
	ResourceService[model.Todo]
	Toggle(ctx context.Context, id, ownerID uint) (*model.Todo, error)
}

type todoService struct {
	ResourceService[model.Todo]
	repo repository.ResourceRepository[model.Todo]
}

// NewTodoService creates a new todo service.
func NewTodoService(repo repository.ResourceRepository[model.Todo]) TodoService {
	return &todoService{
		ResourceService: NewResourceService(model.TodoSchema, model.TodoFromFields, repo),
		repo:            repo,
	}
}

// Toggle flips the completed flag atomically, scoped by id and owner.
func (s *todoService) Toggle(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	return s.repo.ToggleBoolean(ctx, id, ownerID, "completed")
}
