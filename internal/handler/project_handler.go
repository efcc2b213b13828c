package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifehub/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// @Summary List the caller's projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusOK, echo.Map{"projects": projects})
}

// ListByCategory godoc
// @Summary List the caller's projects filtered by category
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Category tag"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/category/{tag} [get]
func (h *ProjectHandler) ListByCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.ListByCategory(c.Request().Context(), owner, c.Param("tag"))
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusOK, echo.Map{"projects": projects})
}

// Get godoc
// @Summary Get one project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Project")
	}

	project, err := h.projectService.Get(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusOK, echo.Map{"project": project})
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Project fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Create(c.Request().Context(), owner, payload)
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Project created successfully",
		"project": project,
	})
}

// Update godoc
// @Summary Partially update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body map[string]interface{} true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Project")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	project, err := h.projectService.Update(c.Request().Context(), id, owner, payload)
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Project updated successfully",
		"project": project,
	})
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Project")
	}

	deletedID, err := h.projectService.Delete(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Project")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Project deleted successfully",
		"deletedId": deletedID,
	})
}
