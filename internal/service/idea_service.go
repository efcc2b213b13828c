package service

import (
	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// IdeaService handles idea operations.
type IdeaService = ResourceService[model.Idea]

// NewIdeaService creates a new idea service.
func NewIdeaService(repo repository.ResourceRepository[model.Idea]) IdeaService {
	return NewResourceService(model.IdeaSchema, model.IdeaFromFields, repo)
}
