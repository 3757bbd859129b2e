package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pilihan robots meta tag
const (
	RobotsIndexFollow     = "index, follow"
	RobotsNoIndexFollow   = "noindex, follow"
	RobotsIndexNoFollow   = "index, nofollow"
	RobotsNoIndexNoFollow = "noindex, nofollow"
)

var RobotsChoices = []string{
	RobotsIndexFollow,
	RobotsNoIndexFollow,
	RobotsIndexNoFollow,
	RobotsNoIndexNoFollow,
}

func IsValidRobots(v string) bool {
	for _, r := range RobotsChoices {
		if r == v {
			return true
		}
	}
	return false
}

type SEOConfigModel struct {
	SEOSlot string `gorm:"column:seo_slot;primaryKey;size:20" json:"-"`

	// meta dasar
	SEOMetaTitle       string `gorm:"column:seo_meta_title;size:60;not null" json:"seo_meta_title"`
	SEOMetaDescription string `gorm:"column:seo_meta_description;size:160;not null" json:"seo_meta_description"`
	SEOMetaKeywords    string `gorm:"column:seo_meta_keywords;size:255" json:"seo_meta_keywords"`
	SEOCanonicalURL    string `gorm:"column:seo_canonical_url;type:text" json:"seo_canonical_url"`
	SEORobots          string `gorm:"column:seo_robots;size:50;not null" json:"seo_robots"`

	// open graph
	SEOOGTitle       string `gorm:"column:seo_og_title;size:95" json:"seo_og_title"`
	SEOOGDescription string `gorm:"column:seo_og_description;size:200" json:"seo_og_description"`
	SEOOGImageURL    string `gorm:"column:seo_og_image_url;type:text" json:"seo_og_image_url"`
	SEOOGType        string `gorm:"column:seo_og_type;size:50" json:"seo_og_type"`

	// twitter
	SEOTwitterCard    string `gorm:"column:seo_twitter_card;size:50" json:"seo_twitter_card"`
	SEOTwitterSite    string `gorm:"column:seo_twitter_site;size:50" json:"seo_twitter_site"`
	SEOTwitterCreator string `gorm:"column:seo_twitter_creator;size:50" json:"seo_twitter_creator"`

	// ikon
	SEOFaviconURL        string `gorm:"column:seo_favicon_url;type:text" json:"seo_favicon_url"`
	SEOAppleTouchIconURL string `gorm:"column:seo_apple_touch_icon_url;type:text" json:"seo_apple_touch_icon_url"`

	// verifikasi & analytics
	SEOGoogleAnalyticsID      string `gorm:"column:seo_google_analytics_id;size:50" json:"seo_google_analytics_id"`
	SEOGoogleSiteVerification string `gorm:"column:seo_google_site_verification;size:100" json:"seo_google_site_verification"`
	SEOBingSiteVerification   string `gorm:"column:seo_bing_site_verification;size:100" json:"seo_bing_site_verification"`

	// schema.org
	SEOSchemaOrganizationName string `gorm:"column:seo_schema_organization_name;size:100" json:"seo_schema_organization_name"`
	SEOSchemaOrganizationLogo string `gorm:"column:seo_schema_organization_logo;type:text" json:"seo_schema_organization_logo"`
	SEOAuthor                 string `gorm:"column:seo_author;size:100" json:"seo_author"`

	// audit
	SEOUpdatedAt time.Time  `gorm:"column:seo_updated_at;autoUpdateTime" json:"seo_updated_at"`
	SEOUpdatedBy *uuid.UUID `gorm:"column:seo_updated_by;type:uuid;index" json:"seo_updated_by"`
}

func (SEOConfigModel) TableName() string {
	return "seo_configs"
}

func (m *SEOConfigModel) SlotColumn() string { return "seo_slot" }

func (m *SEOConfigModel) SetSlot(key string) { m.SEOSlot = key }

func (m *SEOConfigModel) ApplyDefaults() {
	m.SEOMetaTitle = "AC Technology — Soluciones Integrales en Tecnología"
	m.SEOMetaDescription = "Expertos en integración de redes, audio/video, domótica y seguridad para empresas, instituciones educativas y residencias."
	m.SEORobots = RobotsIndexFollow
	m.SEOOGType = "website"
	m.SEOTwitterCard = "summary_large_image"
	m.SEOSchemaOrganizationName = "AC Technology"
}

// ResolvedOGTitle: og_title, fallback ke meta_title.
func (m SEOConfigModel) ResolvedOGTitle() string {
	if strings.TrimSpace(m.SEOOGTitle) != "" {
		return m.SEOOGTitle
	}
	return m.SEOMetaTitle
}

func (m SEOConfigModel) ResolvedOGDescription() string {
	if strings.TrimSpace(m.SEOOGDescription) != "" {
		return m.SEOOGDescription
	}
	return m.SEOMetaDescription
}
