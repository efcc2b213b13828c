package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifehub/internal/service"
)

// IdeaHandler handles idea endpoints.
type IdeaHandler struct {
	ideaService service.IdeaService
}

// NewIdeaHandler creates a new idea handler.
func NewIdeaHandler(ideaService service.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

// List godoc
// @Summary List the caller's ideas
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas [get]
func (h *IdeaHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	ideas, err := h.ideaService.List(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusOK, echo.Map{"ideas": ideas})
}

// ListByCategory godoc
// @Summary List the caller's ideas filtered by project category
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Project category tag"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas/category/{tag} [get]
func (h *IdeaHandler) ListByCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	ideas, err := h.ideaService.ListByCategory(c.Request().Context(), owner, c.Param("tag"))
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusOK, echo.Map{"ideas": ideas})
}

// Get godoc
// @Summary Get one idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas/{id} [get]
func (h *IdeaHandler) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	idea, err := h.ideaService.Get(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusOK, echo.Map{"idea": idea})
}

// Create godoc
// @Summary Create an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Idea fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas [post]
func (h *IdeaHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	idea, err := h.ideaService.Create(c.Request().Context(), owner, payload)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Idea created successfully",
		"idea":    idea,
	})
}

// Update godoc
// @Summary Partially update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Param request body map[string]interface{} true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas/{id} [put]
func (h *IdeaHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Idea")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	idea, err := h.ideaService.Update(c.Request().Context(), id, owner, payload)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Idea updated successfully",
		"idea":    idea,
	})
}

// Delete godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Idea ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	deletedID, err := h.ideaService.Delete(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Idea")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Idea deleted successfully",
		"deletedId": deletedID,
	})
}
