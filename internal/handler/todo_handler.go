package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifehub/internal/service"
)

// TodoHandler handles todo endpoints.
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// List godoc
// @Summary List the caller's todos, incomplete first
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), owner)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{"todos": todos})
}

// ListByCategory godoc
// @Summary List the caller's todos filtered by project category
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param tag path string true "Project category tag"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/category/{tag} [get]
func (h *TodoHandler) ListByCategory(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.ListByCategory(c.Request().Context(), owner, c.Param("tag"))
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{"todos": todos})
}

// Get godoc
// @Summary Get one todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	todo, err := h.todoService.Get(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{"todo": todo})
}

// Create godoc
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]interface{} true "Todo fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Create(c.Request().Context(), owner, payload)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Todo created successfully",
		"todo":    todo,
	})
}

// Update godoc
// @Summary Partially update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Param request body map[string]interface{} true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Todo")
	}
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Update(c.Request().Context(), id, owner, payload)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Todo updated successfully",
		"todo":    todo,
	})
}

// Toggle godoc
// @Summary Toggle a todo's completion state
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	todo, err := h.todoService.Toggle(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Todo status toggled successfully",
		"todo":    todo,
	})
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Todo ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	deletedID, err := h.todoService.Delete(c.Request().Context(), id, owner)
	if err != nil {
		return respondError(c, err, "Todo")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Todo deleted successfully",
		"deletedId": deletedID,
	})
}
