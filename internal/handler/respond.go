package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lifehub/internal/auth"
	apperrors "lifehub/internal/errors"
)

// ownerID resolves the authenticated owner from the request, or fails
// closed with 401. No handler proceeds without it.
func ownerID(c echo.Context) (uint, error) {
	id, ok := auth.OwnerID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error:   "Unauthorized",
			Message: "A valid access token is required",
		})
	}
	return id, nil
}

// pathID parses the :id path parameter. An id that cannot be a row id is
// reported the same way as a row that does not exist.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.ErrNotFound
	}
	return uint(id), nil
}

// bindPayload decodes the request body into a sparse field map. Binding
// into a map is what lets absent keys be told apart from present-but-
// falsy values downstream.
func bindPayload(c echo.Context) (map[string]interface{}, error) {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   "Invalid request body",
			Message: "Request body must be a JSON object",
		})
	}
	return payload, nil
}

// respondError maps a domain error onto the wire shape. Storage failures
// are logged with full detail; the caller sees a generic message unless
// the server runs in debug mode.
func respondError(c echo.Context, err error, label string) error {
	if httpErr, ok := err.(*echo.HTTPError); ok {
		return httpErr
	}
	httpErr := apperrors.MapErrorToHTTP(err, label)
	resp := httpErr.ToErrorResponse()
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
		if c.Echo().Debug {
			resp.Message = err.Error()
		}
	}
	return echo.NewHTTPError(httpErr.StatusCode, resp)
}
