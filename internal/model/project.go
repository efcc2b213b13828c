package model

import (
	"time"

	"lifehub/internal/resource"
)

// Project is a user-owned project with progress tracking.
type Project struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"-" gorm:"not null;index"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Description  string     `json:"description" gorm:"type:text"`
	Priority     string     `json:"priority" gorm:"size:10;default:'medium'"`
	Progress     int        `json:"progress" gorm:"default:0"`
	Category     string     `json:"category" gorm:"size:100;not null;index"`
	ExternalLink string     `json:"external_link" gorm:"size:500"`
	Status       string     `json:"status" gorm:"size:20;default:'idea'"`
	DueDate      *time.Time `json:"due_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ProjectSchema drives validation and update planning for projects.
var ProjectSchema = resource.Schema{
	Name:      "project",
	Table:     "projects",
	TagColumn: "category",
	ListOrder: "created_at DESC",
	Fields: []resource.Field{
		{Name: "title", Column: "title", Required: true, Rule: resource.IsString},
		{Name: "description", Column: "description", Rule: resource.IsString},
		{Name: "priority", Column: "priority", Default: "medium", Rule: resource.OneOf("high", "medium", "low")},
		{Name: "progress", Column: "progress", Default: 0, Rule: resource.IsNumber},
		{Name: "category", Column: "category", Required: true, Rule: resource.IsString},
		{Name: "external_link", Column: "external_link", Rule: resource.IsString},
		{Name: "status", Column: "status", Default: "idea", Rule: resource.OneOf("idea", "in_progress", "completed")},
		{Name: "due_date", Column: "due_date", Rule: resource.IsDate},
	},
}

// ProjectFromFields builds a Project owned by ownerID from a normalized
// field set produced by resource.ValidateCreate.
func ProjectFromFields(ownerID uint, f resource.Fields) *Project {
	p := &Project{UserID: ownerID}
	if v, ok := f["title"].(string); ok {
		p.Title = v
	}
	if v, ok := f["description"].(string); ok {
		p.Description = v
	}
	if v, ok := f["priority"].(string); ok {
		p.Priority = v
	}
	if v, ok := f["progress"].(int); ok {
		p.Progress = v
	}
	if v, ok := f["category"].(string); ok {
		p.Category = v
	}
	if v, ok := f["external_link"].(string); ok {
		p.ExternalLink = v
	}
	if v, ok := f["status"].(string); ok {
		p.Status = v
	}
	if v, ok := f["due_date"].(time.Time); ok {
		p.DueDate = &v
	}
	return p
}
