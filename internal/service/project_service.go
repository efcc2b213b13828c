package service

import (
	"lifehub/internal/model"
	"lifehub/internal/repository"
)

// ProjectService handles project operations.
type ProjectService = ResourceService[model.Project]

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ResourceRepository[model.Project]) ProjectService {
	return NewResourceService(model.ProjectSchema, model.ProjectFromFields, repo)
}
