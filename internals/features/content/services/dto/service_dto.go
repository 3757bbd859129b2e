package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"actech_backend/internals/features/content/services/model"
	helper "actech_backend/internals/helpers"
)

// ============================
// Response DTO
// ============================

type ServiceDTO struct {
	ServiceID              uuid.UUID `json:"service_id"`
	ServiceTitle           string    `json:"service_title"`
	ServiceDescription     string    `json:"service_description"`
	ServiceDescriptionHTML string    `json:"service_description_html"`
	ServiceIcon            string    `json:"service_icon"`
	ServiceImageURL        string    `json:"service_image_url"`
	ServicePoint1          string    `json:"service_point1"`
	ServicePoint2          string    `json:"service_point2"`
	ServicePoint3          string    `json:"service_point3"`
	ServicePoints          []string  `json:"service_points"`
	ServiceOrder           int       `json:"service_order"`
	ServiceIsActive        bool      `json:"service_is_active"`
	ServiceCreatedAt       time.Time `json:"service_created_at"`
	ServiceUpdatedAt       time.Time `json:"service_updated_at"`
}

func ToServiceDTO(m model.ServiceModel) ServiceDTO {
	return ServiceDTO{
		ServiceID:              m.ServiceID,
		ServiceTitle:           m.ServiceTitle,
		ServiceDescription:     m.ServiceDescription,
		ServiceDescriptionHTML: helper.MarkdownToHTML(m.ServiceDescription),
		ServiceIcon:            m.ServiceIcon,
		ServiceImageURL:        m.ServiceImageURL,
		ServicePoint1:          m.ServicePoint1,
		ServicePoint2:          m.ServicePoint2,
		ServicePoint3:          m.ServicePoint3,
		ServicePoints:          m.Points(),
		ServiceOrder:           m.ServiceOrder,
		ServiceIsActive:        m.ServiceIsActive,
		ServiceCreatedAt:       m.ServiceCreatedAt,
		ServiceUpdatedAt:       m.ServiceUpdatedAt,
	}
}

func ToServiceDTOs(rows []model.ServiceModel) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToServiceDTO(r))
	}
	return out
}

// ============================
// Form (create & update)
// ============================

// ServiceForm dipakai untuk create (mulai dari default) dan update
// (mulai dari nilai tersimpan lalu ditimpa body), lalu divalidasi utuh.
type ServiceForm struct {
	ServiceTitle       string `json:"service_title" form:"service_title" validate:"required,max=200"`
	ServiceDescription string `json:"service_description" form:"service_description" validate:"required"`
	ServiceIcon        string `json:"service_icon" form:"service_icon" validate:"max=50"`
	ServicePoint1      string `json:"service_point1" form:"service_point1" validate:"max=100"`
	ServicePoint2      string `json:"service_point2" form:"service_point2" validate:"max=100"`
	ServicePoint3      string `json:"service_point3" form:"service_point3" validate:"max=100"`
	ServiceOrder       int    `json:"service_order" form:"service_order" validate:"min=0"`
	ServiceIsActive    bool   `json:"service_is_active" form:"service_is_active"`
}

func NewServiceForm() ServiceForm {
	return ServiceForm{
		ServiceIcon:     model.DefaultIcon,
		ServiceIsActive: true,
	}
}

func ServiceFormFromModel(m model.ServiceModel) ServiceForm {
	return ServiceForm{
		ServiceTitle:       m.ServiceTitle,
		ServiceDescription: m.ServiceDescription,
		ServiceIcon:        m.ServiceIcon,
		ServicePoint1:      m.ServicePoint1,
		ServicePoint2:      m.ServicePoint2,
		ServicePoint3:      m.ServicePoint3,
		ServiceOrder:       m.ServiceOrder,
		ServiceIsActive:    m.ServiceIsActive,
	}
}

func (f *ServiceForm) Normalize() {
	f.ServiceTitle = strings.TrimSpace(f.ServiceTitle)
	f.ServiceDescription = strings.TrimSpace(f.ServiceDescription)
	f.ServiceIcon = strings.TrimSpace(f.ServiceIcon)
	if f.ServiceIcon == "" {
		f.ServiceIcon = model.DefaultIcon
	}
	f.ServicePoint1 = strings.TrimSpace(f.ServicePoint1)
	f.ServicePoint2 = strings.TrimSpace(f.ServicePoint2)
	f.ServicePoint3 = strings.TrimSpace(f.ServicePoint3)
}

func (f ServiceForm) ApplyTo(m *model.ServiceModel) {
	m.ServiceTitle = f.ServiceTitle
	m.ServiceDescription = f.ServiceDescription
	m.ServiceIcon = f.ServiceIcon
	m.ServicePoint1 = f.ServicePoint1
	m.ServicePoint2 = f.ServicePoint2
	m.ServicePoint3 = f.ServicePoint3
	m.ServiceOrder = f.ServiceOrder
	m.ServiceIsActive = f.ServiceIsActive
}
