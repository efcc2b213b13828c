package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lifehub/internal/auth"
	apperrors "lifehub/internal/errors"
	"lifehub/internal/model"
)

// MockTodoService is a mock implementation of service.TodoService.
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) List(ctx context.Context, ownerID uint) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoService) ListByCategory(ctx context.Context, ownerID uint, category string) ([]model.Todo, error) {
	args := m.Called(ctx, ownerID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Todo), args.Error(1)
}

func (m *MockTodoService) Get(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoService) Create(ctx context.Context, ownerID uint, payload map[string]interface{}) (*model.Todo, error) {
	args := m.Called(ctx, ownerID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, id, ownerID uint, payload map[string]interface{}) (*model.Todo, error) {
	args := m.Called(ctx, id, ownerID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, id, ownerID uint) (uint, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockTodoService) Toggle(ctx context.Context, id, ownerID uint) (*model.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Todo), args.Error(1)
}

// newRequestContext builds an echo context the way a secured route sees
// it: the JWT middleware has already stored the parsed token under "user".
func newRequestContext(method, body string, ownerID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ownerID != 0 {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{UserID: ownerID})
		c.Set("user", token)
	}
	return c, rec
}

func errorBody(t *testing.T, err error) apperrors.ErrorResponse {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	require.True(t, ok)
	return resp
}

func TestTodoHandler_Get(t *testing.T) {
	t.Run("owned todo returned", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Get", mock.Anything, uint(7), uint(3)).
			Return(&model.Todo{ID: 7, Title: "Renew passport"}, nil)
		h := NewTodoHandler(svc)

		c, rec := newRequestContext(http.MethodGet, "", 3)
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "todo")
		svc.AssertExpectations(t)
	})

	t.Run("foreign todo reads as 404", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Get", mock.Anything, uint(7), uint(3)).
			Return(nil, apperrors.ErrNotFound)
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodGet, "", 3)
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := h.Get(c)
		require.Error(t, err)
		httpErr := err.(*echo.HTTPError)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "Todo not found", errorBody(t, err).Error)
	})

	t.Run("non-numeric id reads as 404", func(t *testing.T) {
		svc := new(MockTodoService)
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodGet, "", 3)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.Get(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
		svc.AssertNotCalled(t, "Get")
	})

	t.Run("unauthenticated request fails closed", func(t *testing.T) {
		svc := new(MockTodoService)
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodGet, "", 0)
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := h.Get(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
		svc.AssertNotCalled(t, "Get")
	})
}

func TestTodoHandler_Create(t *testing.T) {
	t.Run("created with 201", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Create", mock.Anything, uint(3),
			map[string]interface{}{"title": "Renew passport", "project_category": "travel"}).
			Return(&model.Todo{ID: 7, Title: "Renew passport", ProjectCategory: "travel"}, nil)
		h := NewTodoHandler(svc)

		c, rec := newRequestContext(http.MethodPost,
			`{"title":"Renew passport","project_category":"travel"}`, 3)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "todo")
		assert.Contains(t, body, "message")
		svc.AssertExpectations(t)
	})

	t.Run("validation failure is 400", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Create", mock.Anything, uint(3), mock.Anything).
			Return(nil, apperrors.NewValidationError("title", "is required"))
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodPost, `{"priority":"high"}`, 3)

		err := h.Create(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
		assert.Equal(t, "Invalid title", errorBody(t, err).Error)
	})

	t.Run("non-object body is 400", func(t *testing.T) {
		svc := new(MockTodoService)
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodPost, `[1,2,3]`, 3)

		err := h.Create(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
		svc.AssertNotCalled(t, "Create")
	})
}

func TestTodoHandler_Update(t *testing.T) {
	t.Run("sparse payload forwarded as-is", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Update", mock.Anything, uint(7), uint(3),
			map[string]interface{}{"completed": false}).
			Return(&model.Todo{ID: 7, Completed: false}, nil)
		h := NewTodoHandler(svc)

		c, rec := newRequestContext(http.MethodPut, `{"completed":false}`, 3)
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("empty payload is 400", func(t *testing.T) {
		svc := new(MockTodoService)
		svc.On("Update", mock.Anything, uint(7), uint(3), map[string]interface{}{}).
			Return(nil, apperrors.ErrNoFields)
		h := NewTodoHandler(svc)

		c, _ := newRequestContext(http.MethodPut, `{}`, 3)
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := h.Update(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
		assert.Equal(t, "No fields to update", errorBody(t, err).Error)
	})
}

func TestTodoHandler_Toggle(t *testing.T) {
	svc := new(MockTodoService)
	svc.On("Toggle", mock.Anything, uint(7), uint(3)).
		Return(&model.Todo{ID: 7, Completed: true}, nil)
	h := NewTodoHandler(svc)

	c, rec := newRequestContext(http.MethodPatch, "", 3)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Toggle(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Todo model.Todo `json:"todo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Todo.Completed)
	svc.AssertExpectations(t)
}

func TestTodoHandler_Delete(t *testing.T) {
	svc := new(MockTodoService)
	svc.On("Delete", mock.Anything, uint(7), uint(3)).Return(uint(7), nil)
	h := NewTodoHandler(svc)

	c, rec := newRequestContext(http.MethodDelete, "", 3)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		DeletedID uint `json:"deletedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body.DeletedID)
	svc.AssertExpectations(t)
}
