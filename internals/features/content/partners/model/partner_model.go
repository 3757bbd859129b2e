package model

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlaceholderBase = "https://placehold.co/400x200?text="

	DefaultOrder = "partner_order ASC, partner_name ASC"
)

type PartnerModel struct {
	PartnerID              uuid.UUID `gorm:"column:partner_id;type:uuid;primaryKey" json:"partner_id"`
	PartnerName            string    `gorm:"column:partner_name;size:100;not null" json:"partner_name"`
	PartnerLogoURL         string    `gorm:"column:partner_logo_url;type:text" json:"partner_logo_url"`
	PartnerLogoFallbackURL string    `gorm:"column:partner_logo_fallback_url;type:text" json:"partner_logo_fallback_url"`
	PartnerWebsite         string    `gorm:"column:partner_website;type:text" json:"partner_website"`
	PartnerOrder           int       `gorm:"column:partner_order;not null;index" json:"partner_order"`
	PartnerIsActive        bool      `gorm:"column:partner_is_active;not null;index" json:"partner_is_active"`
	PartnerCreatedAt       time.Time `gorm:"column:partner_created_at;autoCreateTime" json:"partner_created_at"`
}

func (PartnerModel) TableName() string {
	return "partners"
}

func (m *PartnerModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartnerID == uuid.Nil {
		m.PartnerID = uuid.New()
	}
	return nil
}

// LogoDisplay: logo upload → fallback URL → placeholder bernama partner.
func (m PartnerModel) LogoDisplay() string {
	if strings.TrimSpace(m.PartnerLogoURL) != "" {
		return m.PartnerLogoURL
	}
	if strings.TrimSpace(m.PartnerLogoFallbackURL) != "" {
		return m.PartnerLogoFallbackURL
	}
	return PlaceholderBase + strings.ReplaceAll(url.QueryEscape(m.PartnerName), "+", "%20")
}
