package model

import (
	"time"

	"lifehub/internal/resource"
)

// Todo is a user-owned task tied to a project category. Lists surface
// open work first: incomplete todos sort ahead of completed ones.
type Todo struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	UserID          uint       `json:"-" gorm:"not null;index"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	Description     string     `json:"description" gorm:"type:text"`
	ProjectCategory string     `json:"project_category" gorm:"size:100;not null;index"`
	Completed       bool       `json:"completed" gorm:"default:false"`
	Priority        string     `json:"priority" gorm:"size:10;default:'medium'"`
	DueDate         *time.Time `json:"due_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TodoSchema drives validation and update planning for todos.
var TodoSchema = resource.Schema{
	Name:      "todo",
	Table:     "todos",
	TagColumn: "project_category",
	ListOrder: "completed ASC, created_at DESC",
	Fields: []resource.Field{
		{Name: "title", Column: "title", Required: true, Rule: resource.IsString},
		{Name: "description", Column: "description", Rule: resource.IsString},
		{Name: "project_category", Column: "project_category", Required: true, Rule: resource.IsString},
		{Name: "completed", Column: "completed", Default: false, Rule: resource.IsBool},
		{Name: "priority", Column: "priority", Default: "medium", Rule: resource.OneOf("high", "medium", "low")},
		{Name: "due_date", Column: "due_date", Rule: resource.IsDate},
	},
}

// TodoFromFields builds a Todo owned by ownerID from a normalized field
// set produced by resource.ValidateCreate.
func TodoFromFields(ownerID uint, f resource.Fields) *Todo {
	t := &Todo{UserID: ownerID}
	if v, ok := f["title"].(string); ok {
		t.Title = v
	}
	if v, ok := f["description"].(string); ok {
		t.Description = v
	}
	if v, ok := f["project_category"].(string); ok {
		t.ProjectCategory = v
	}
	if v, ok := f["completed"].(bool); ok {
		t.Completed = v
	}
	if v, ok := f["priority"].(string); ok {
		t.Priority = v
	}
	if v, ok := f["due_date"].(time.Time); ok {
		t.DueDate = &v
	}
	return t
}
