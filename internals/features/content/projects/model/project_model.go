package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kategori proyek (token disimpan, label untuk tampilan)
const (
	CategoryEducational = "educational"
	CategoryCorporate   = "corporate"
	CategoryResidential = "residential"
	CategoryOther       = "other"

	DefaultCategory = CategoryCorporate
)

var categoryLabels = map[string]string{
	CategoryEducational: "Educativo",
	CategoryCorporate:   "Corporativo",
	CategoryResidential: "Residencial",
	CategoryOther:       "Otro",
}

// featured dulu, lalu order, lalu yang terbaru
const DefaultOrder = "project_is_featured DESC, project_order ASC, project_created_at DESC"

type ProjectModel struct {
	ProjectID          uuid.UUID `gorm:"column:project_id;type:uuid;primaryKey" json:"project_id"`
	ProjectTitle       string    `gorm:"column:project_title;size:200;not null" json:"project_title"`
	ProjectDescription string    `gorm:"column:project_description;type:text;not null" json:"project_description"`
	ProjectImageURL    string    `gorm:"column:project_image_url;type:text" json:"project_image_url"`
	ProjectCategory    string    `gorm:"column:project_category;size:20;not null;index" json:"project_category"`
	ProjectOrder       int       `gorm:"column:project_order;not null;index" json:"project_order"`
	ProjectIsFeatured  bool      `gorm:"column:project_is_featured;not null" json:"project_is_featured"`
	ProjectIsActive    bool      `gorm:"column:project_is_active;not null;index" json:"project_is_active"`
	ProjectCreatedAt   time.Time `gorm:"column:project_created_at;autoCreateTime" json:"project_created_at"`
	ProjectUpdatedAt   time.Time `gorm:"column:project_updated_at;autoUpdateTime" json:"project_updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

func (m *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProjectID == uuid.Nil {
		m.ProjectID = uuid.New()
	}
	if m.ProjectCategory == "" {
		m.ProjectCategory = DefaultCategory
	}
	return nil
}

func CategoryLabel(token string) string {
	if l, ok := categoryLabels[token]; ok {
		return l
	}
	return token
}
