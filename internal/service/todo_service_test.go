package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lifehub/internal/errors"
	"lifehub/internal/model"
	"lifehub/internal/resource"
)

// MockResourceRepository is a mock implementation of repository.ResourceRepository.
type MockResourceRepository[T any] struct {
	mock.Mock
}

func (m *MockResourceRepository[T]) List(ctx context.Context, ownerID uint, tag string) ([]T, error) {
	args := m.Called(ctx, ownerID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResourceRepository[T]) Get(ctx context.Context, id, ownerID uint) (*T, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceRepository[T]) Create(ctx context.Context, row *T) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockResourceRepository[T]) Update(ctx context.Context, plan *resource.UpdatePlan) (*T, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceRepository[T]) Delete(ctx context.Context, id, ownerID uint) (uint, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockResourceRepository[T]) ToggleBoolean(ctx context.Context, id, ownerID uint, column string) (*T, error) {
	args := m.Called(ctx, id, ownerID, column)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func TestTodoService_Create(t *testing.T) {
	tests := []struct {
		name          string
		payload       map[string]interface{}
		setupMock     func(*MockResourceRepository[model.Todo])
		expectedField string // offending field for validation failures
		check         func(t *testing.T, todo *model.Todo)
	}{
		{
			name: "defaults applied and owner set",
			payload: map[string]interface{}{
				"title":            "Book flight",
				"project_category": "travel",
			},
			setupMock: func(m *MockResourceRepository[model.Todo]) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Todo")).Return(nil)
			},
			check: func(t *testing.T, todo *model.Todo) {
				assert.Equal(t, uint(9), todo.UserID)
				assert.Equal(t, "Book flight", todo.Title)
				assert.False(t, todo.Completed)
				assert.Equal(t, "medium", todo.Priority)
			},
		},
		{
			name:          "missing project category",
			payload:       map[string]interface{}{"title": "Book flight"},
			expectedField: "project_category",
		},
		{
			name: "invalid priority never reaches the repository",
			payload: map[string]interface{}{
				"title":            "Book flight",
				"project_category": "travel",
				"priority":         "urgent",
			},
			expectedField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockResourceRepository[model.Todo])
			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := NewTodoService(mockRepo)
			todo, err := svc.Create(context.Background(), 9, tt.payload)

			if tt.expectedField != "" {
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.expectedField, ve.Field)
				assert.Nil(t, todo)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, todo)
			if tt.check != nil {
				tt.check(t, todo)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	t.Run("plan carries only present fields", func(t *testing.T) {
		mockRepo := new(MockResourceRepository[model.Todo])
		updated := &model.Todo{ID: 7, UserID: 3, Title: "Book flight", Completed: false}

		var captured *resource.UpdatePlan
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*resource.UpdatePlan")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*resource.UpdatePlan)
			}).
			Return(updated, nil)

		svc := NewTodoService(mockRepo)
		todo, err := svc.Update(context.Background(), 7, 3, map[string]interface{}{
			"completed": false,
		})

		assert.NoError(t, err)
		assert.Equal(t, updated, todo)
		assert.Len(t, captured.Assignments, 1)
		assert.Equal(t, "completed", captured.Assignments[0].Column)
		assert.Equal(t, false, captured.Assignments[0].Value)
		assert.Equal(t, uint(7), captured.ID)
		assert.Equal(t, uint(3), captured.OwnerID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty payload fails before the repository", func(t *testing.T) {
		mockRepo := new(MockResourceRepository[model.Todo])

		svc := NewTodoService(mockRepo)
		todo, err := svc.Update(context.Background(), 7, 3, map[string]interface{}{})

		assert.ErrorIs(t, err, apperrors.ErrNoFields)
		assert.Nil(t, todo)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTodoService_Toggle(t *testing.T) {
	mockRepo := new(MockResourceRepository[model.Todo])
	toggled := &model.Todo{ID: 7, UserID: 3, Completed: true}
	mockRepo.On("ToggleBoolean", mock.Anything, uint(7), uint(3), "completed").Return(toggled, nil)

	svc := NewTodoService(mockRepo)
	todo, err := svc.Toggle(context.Background(), 7, 3)

	assert.NoError(t, err)
	assert.True(t, todo.Completed)
	mockRepo.AssertExpectations(t)
}

func TestTodoService_OwnershipMismatchSurfacesAsNotFound(t *testing.T) {
	mockRepo := new(MockResourceRepository[model.Todo])
	mockRepo.On("Get", mock.Anything, uint(7), uint(99)).Return(nil, apperrors.ErrNotFound)

	svc := NewTodoService(mockRepo)
	todo, err := svc.Get(context.Background(), 7, 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, todo)
}
