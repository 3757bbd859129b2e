package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"actech_backend/internals/features/content/partners/model"
)

type PartnerDTO struct {
	PartnerID              uuid.UUID `json:"partner_id"`
	PartnerName            string    `json:"partner_name"`
	PartnerLogoURL         string    `json:"partner_logo_url"`
	PartnerLogoFallbackURL string    `json:"partner_logo_fallback_url"`
	PartnerLogoDisplay     string    `json:"partner_logo_display"`
	PartnerWebsite         string    `json:"partner_website"`
	PartnerOrder           int       `json:"partner_order"`
	PartnerIsActive        bool      `json:"partner_is_active"`
	PartnerCreatedAt       time.Time `json:"partner_created_at"`
}

func ToPartnerDTO(m model.PartnerModel) PartnerDTO {
	return PartnerDTO{
		PartnerID:              m.PartnerID,
		PartnerName:            m.PartnerName,
		PartnerLogoURL:         m.PartnerLogoURL,
		PartnerLogoFallbackURL: m.PartnerLogoFallbackURL,
		PartnerLogoDisplay:     m.LogoDisplay(),
		PartnerWebsite:         m.PartnerWebsite,
		PartnerOrder:           m.PartnerOrder,
		PartnerIsActive:        m.PartnerIsActive,
		PartnerCreatedAt:       m.PartnerCreatedAt,
	}
}

func ToPartnerDTOs(rows []model.PartnerModel) []PartnerDTO {
	out := make([]PartnerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToPartnerDTO(r))
	}
	return out
}

type PartnerForm struct {
	PartnerName            string `json:"partner_name" form:"partner_name" validate:"required,max=100"`
	PartnerLogoFallbackURL string `json:"partner_logo_fallback_url" form:"partner_logo_fallback_url" validate:"omitempty,http_url"`
	PartnerWebsite         string `json:"partner_website" form:"partner_website" validate:"omitempty,http_url"`
	PartnerOrder           int    `json:"partner_order" form:"partner_order" validate:"min=0"`
	PartnerIsActive        bool   `json:"partner_is_active" form:"partner_is_active"`
}

func NewPartnerForm() PartnerForm {
	return PartnerForm{PartnerIsActive: true}
}

func PartnerFormFromModel(m model.PartnerModel) PartnerForm {
	return PartnerForm{
		PartnerName:            m.PartnerName,
		PartnerLogoFallbackURL: m.PartnerLogoFallbackURL,
		PartnerWebsite:         m.PartnerWebsite,
		PartnerOrder:           m.PartnerOrder,
		PartnerIsActive:        m.PartnerIsActive,
	}
}

func (f *PartnerForm) Normalize() {
	f.PartnerName = strings.TrimSpace(f.PartnerName)
	f.PartnerLogoFallbackURL = strings.TrimSpace(f.PartnerLogoFallbackURL)
	f.PartnerWebsite = strings.TrimSpace(f.PartnerWebsite)
}

func (f PartnerForm) ApplyTo(m *model.PartnerModel) {
	m.PartnerName = f.PartnerName
	m.PartnerLogoFallbackURL = f.PartnerLogoFallbackURL
	m.PartnerWebsite = f.PartnerWebsite
	m.PartnerOrder = f.PartnerOrder
	m.PartnerIsActive = f.PartnerIsActive
}
