package model

import (
	"time"

	"lifehub/internal/resource"
)

// Idea is a user-owned note that loosely associates with a project
// through the free-text project_category tag. The tag is not a foreign
// key: deleting a project leaves its ideas untouched.
type Idea struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"-" gorm:"not null;index"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Description     string    `json:"description" gorm:"type:text"`
	ProjectCategory string    `json:"project_category" gorm:"size:100;index"`
	Priority        string    `json:"priority" gorm:"size:10;default:'medium'"`
	Category        string    `json:"category" gorm:"size:100"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IdeaSchema drives validation and update planning for ideas.
var IdeaSchema = resource.Schema{
	Name:      "idea",
	Table:     "ideas",
	TagColumn: "project_category",
	ListOrder: "created_at DESC",
	Fields: []resource.Field{
		{Name: "title", Column: "title", Required: true, Rule: resource.IsString},
		{Name: "description", Column: "description", Rule: resource.IsString},
		{Name: "project_category", Column: "project_category", Rule: resource.IsString},
		{Name: "priority", Column: "priority", Default: "medium", Rule: resource.OneOf("high", "medium", "low")},
		{Name: "category", Column: "category", Rule: resource.IsString},
	},
}

// IdeaFromFields builds an Idea owned by ownerID from a normalized field
// set produced by resource.ValidateCreate.
func IdeaFromFields(ownerID uint, f resource.Fields) *Idea {
	i := &Idea{UserID: ownerID}
	if v, ok := f["title"].(string); ok {
		i.Title = v
	}
	if v, ok := f["description"].(string); ok {
		i.Description = v
	}
	if v, ok := f["project_category"].(string); ok {
		i.ProjectCategory = v
	}
	if v, ok := f["priority"].(string); ok {
		i.Priority = v
	}
	if v, ok := f["category"].(string); ok {
		i.Category = v
	}
	return i
}
