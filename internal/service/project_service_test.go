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

func TestProjectService_Create(t *testing.T) {
	tests := []struct {
		name          string
		payload       map[string]interface{}
		setupMock     func(*MockResourceRepository[model.Project])
		expectedField string
		check         func(t *testing.T, p *model.Project)
	}{
		{
			name: "successful create with defaults",
			payload: map[string]interface{}{
				"title":    "Garden shed",
				"category": "hobby",
			},
			setupMock: func(m *MockResourceRepository[model.Project]) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)
			},
			check: func(t *testing.T, p *model.Project) {
				assert.Equal(t, uint(4), p.UserID)
				assert.Equal(t, "medium", p.Priority)
				assert.Equal(t, "idea", p.Status)
				assert.Equal(t, 0, p.Progress)
			},
		},
		{
			name:          "missing category",
			payload:       map[string]interface{}{"title": "Garden shed"},
			expectedField: "category",
		},
		{
			name: "invalid status never persisted",
			payload: map[string]interface{}{
				"title":    "Garden shed",
				"category": "hobby",
				"status":   "archived",
			},
			expectedField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockResourceRepository[model.Project])
			if tt.setupMock != nil {
				tt.setupMock(mockRepo)
			}

			svc := NewProjectService(mockRepo)
			project, err := svc.Create(context.Background(), 4, tt.payload)

			if tt.expectedField != "" {
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.expectedField, ve.Field)
				assert.Nil(t, project)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, project)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProjectService_UpdatePlansInSchemaOrder(t *testing.T) {
	mockRepo := new(MockResourceRepository[model.Project])
	updated := &model.Project{ID: 2, UserID: 4}

	var captured *resource.UpdatePlan
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*resource.UpdatePlan")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*resource.UpdatePlan)
		}).
		Return(updated, nil)

	svc := NewProjectService(mockRepo)
	_, err := svc.Update(context.Background(), 2, 4, map[string]interface{}{
		"status":   "completed",
		"progress": float64(100),
		"title":    "Garden shed",
	})

	assert.NoError(t, err)
	columns := make([]string, 0, len(captured.Assignments))
	for _, a := range captured.Assignments {
		columns = append(columns, a.Column)
	}
	assert.Equal(t, []string{"title", "progress", "status"}, columns)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_ListByCategory(t *testing.T) {
	mockRepo := new(MockResourceRepository[model.Project])
	rows := []model.Project{{ID: 1, UserID: 4, Title: "Garden shed", Category: "hobby"}}
	mockRepo.On("List", mock.Anything, uint(4), "hobby").Return(rows, nil)

	svc := NewProjectService(mockRepo)
	projects, err := svc.ListByCategory(context.Background(), 4, "hobby")

	assert.NoError(t, err)
	assert.Equal(t, rows, projects)
	mockRepo.AssertExpectations(t)
}
