package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"actech_backend/internals/features/content/projects/model"
	helper "actech_backend/internals/helpers"
)

type ProjectDTO struct {
	ProjectID              uuid.UUID `json:"project_id"`
	ProjectTitle           string    `json:"project_title"`
	ProjectDescription     string    `json:"project_description"`
	ProjectDescriptionHTML string    `json:"project_description_html"`
	ProjectImageURL        string    `json:"project_image_url"`
	ProjectCategory        string    `json:"project_category"`
	ProjectCategoryLabel   string    `json:"project_category_label"`
	ProjectOrder           int       `json:"project_order"`
	ProjectIsFeatured      bool      `json:"project_is_featured"`
	ProjectIsActive        bool      `json:"project_is_active"`
	ProjectCreatedAt       time.Time `json:"project_created_at"`
	ProjectUpdatedAt       time.Time `json:"project_updated_at"`
}

func ToProjectDTO(m model.ProjectModel) ProjectDTO {
	return ProjectDTO{
		ProjectID:              m.ProjectID,
		ProjectTitle:           m.ProjectTitle,
		ProjectDescription:     m.ProjectDescription,
		ProjectDescriptionHTML: helper.MarkdownToHTML(m.ProjectDescription),
		ProjectImageURL:        m.ProjectImageURL,
		ProjectCategory:        m.ProjectCategory,
		ProjectCategoryLabel:   model.CategoryLabel(m.ProjectCategory),
		ProjectOrder:           m.ProjectOrder,
		ProjectIsFeatured:      m.ProjectIsFeatured,
		ProjectIsActive:        m.ProjectIsActive,
		ProjectCreatedAt:       m.ProjectCreatedAt,
		ProjectUpdatedAt:       m.ProjectUpdatedAt,
	}
}

func ToProjectDTOs(rows []model.ProjectModel) []ProjectDTO {
	out := make([]ProjectDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProjectDTO(r))
	}
	return out
}

type ProjectForm struct {
	ProjectTitle       string `json:"project_title" form:"project_title" validate:"required,max=200"`
	ProjectDescription string `json:"project_description" form:"project_description" validate:"required"`
	ProjectCategory    string `json:"project_category" form:"project_category" validate:"required,oneof=educational corporate residential other"`
	ProjectOrder       int    `json:"project_order" form:"project_order" validate:"min=0"`
	ProjectIsFeatured  bool   `json:"project_is_featured" form:"project_is_featured"`
	ProjectIsActive    bool   `json:"project_is_active" form:"project_is_active"`
}

func NewProjectForm() ProjectForm {
	return ProjectForm{
		ProjectCategory: model.DefaultCategory,
		ProjectIsActive: true,
	}
}

func ProjectFormFromModel(m model.ProjectModel) ProjectForm {
	return ProjectForm{
		ProjectTitle:       m.ProjectTitle,
		ProjectDescription: m.ProjectDescription,
		ProjectCategory:    m.ProjectCategory,
		ProjectOrder:       m.ProjectOrder,
		ProjectIsFeatured:  m.ProjectIsFeatured,
		ProjectIsActive:    m.ProjectIsActive,
	}
}

func (f *ProjectForm) Normalize() {
	f.ProjectTitle = strings.TrimSpace(f.ProjectTitle)
	f.ProjectDescription = strings.TrimSpace(f.ProjectDescription)
	f.ProjectCategory = strings.ToLower(strings.TrimSpace(f.ProjectCategory))
}

func (f ProjectForm) ApplyTo(m *model.ProjectModel) {
	m.ProjectTitle = f.ProjectTitle
	m.ProjectDescription = f.ProjectDescription
	m.ProjectCategory = f.ProjectCategory
	m.ProjectOrder = f.ProjectOrder
	m.ProjectIsFeatured = f.ProjectIsFeatured
	m.ProjectIsActive = f.ProjectIsActive
}
