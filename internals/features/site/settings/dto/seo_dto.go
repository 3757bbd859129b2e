package dto

import (
	"strings"

	"actech_backend/internals/features/site/settings/model"
	helper "actech_backend/internals/helpers"
)

type SEOConfigDTO struct {
	model.SEOConfigModel
	SEOResolvedOGTitle       string `json:"seo_resolved_og_title"`
	SEOResolvedOGDescription string `json:"seo_resolved_og_description"`
}

func ToSEOConfigDTO(m model.SEOConfigModel) SEOConfigDTO {
	return SEOConfigDTO{
		SEOConfigModel:           m,
		SEOResolvedOGTitle:       m.ResolvedOGTitle(),
		SEOResolvedOGDescription: m.ResolvedOGDescription(),
	}
}

// SEOConfigForm sengaja tidak punya seo_updated_by; kolom itu diisi server.
type SEOConfigForm struct {
	SEOMetaTitle              string `json:"seo_meta_title" form:"seo_meta_title" validate:"required,max=60"`
	SEOMetaDescription        string `json:"seo_meta_description" form:"seo_meta_description" validate:"required,max=160"`
	SEOMetaKeywords           string `json:"seo_meta_keywords" form:"seo_meta_keywords" validate:"max=255"`
	SEOCanonicalURL           string `json:"seo_canonical_url" form:"seo_canonical_url" validate:"omitempty,http_url"`
	SEORobots                 string `json:"seo_robots" form:"seo_robots"`
	SEOOGTitle                string `json:"seo_og_title" form:"seo_og_title" validate:"max=95"`
	SEOOGDescription          string `json:"seo_og_description" form:"seo_og_description" validate:"max=200"`
	SEOOGType                 string `json:"seo_og_type" form:"seo_og_type" validate:"max=50"`
	SEOTwitterCard            string `json:"seo_twitter_card" form:"seo_twitter_card" validate:"required,oneof=summary summary_large_image app player"`
	SEOTwitterSite            string `json:"seo_twitter_site" form:"seo_twitter_site" validate:"max=50"`
	SEOTwitterCreator         string `json:"seo_twitter_creator" form:"seo_twitter_creator" validate:"max=50"`
	SEOGoogleAnalyticsID      string `json:"seo_google_analytics_id" form:"seo_google_analytics_id" validate:"max=50"`
	SEOGoogleSiteVerification string `json:"seo_google_site_verification" form:"seo_google_site_verification" validate:"max=100"`
	SEOBingSiteVerification   string `json:"seo_bing_site_verification" form:"seo_bing_site_verification" validate:"max=100"`
	SEOSchemaOrganizationName string `json:"seo_schema_organization_name" form:"seo_schema_organization_name" validate:"max=100"`
	SEOSchemaOrganizationLogo string `json:"seo_schema_organization_logo" form:"seo_schema_organization_logo" validate:"omitempty,http_url"`
	SEOAuthor                 string `json:"seo_author" form:"seo_author" validate:"max=100"`
}

func SEOConfigFormFromModel(m model.SEOConfigModel) SEOConfigForm {
	return SEOConfigForm{
		SEOMetaTitle:              m.SEOMetaTitle,
		SEOMetaDescription:        m.SEOMetaDescription,
		SEOMetaKeywords:           m.SEOMetaKeywords,
		SEOCanonicalURL:           m.SEOCanonicalURL,
		SEORobots:                 m.SEORobots,
		SEOOGTitle:                m.SEOOGTitle,
		SEOOGDescription:          m.SEOOGDescription,
		SEOOGType:                 m.SEOOGType,
		SEOTwitterCard:            m.SEOTwitterCard,
		SEOTwitterSite:            m.SEOTwitterSite,
		SEOTwitterCreator:         m.SEOTwitterCreator,
		SEOGoogleAnalyticsID:      m.SEOGoogleAnalyticsID,
		SEOGoogleSiteVerification: m.SEOGoogleSiteVerification,
		SEOBingSiteVerification:   m.SEOBingSiteVerification,
		SEOSchemaOrganizationName: m.SEOSchemaOrganizationName,
		SEOSchemaOrganizationLogo: m.SEOSchemaOrganizationLogo,
		SEOAuthor:                 m.SEOAuthor,
	}
}

func (f *SEOConfigForm) Normalize() {
	for _, p := range []*string{
		&f.SEOMetaTitle, &f.SEOMetaDescription, &f.SEOMetaKeywords, &f.SEOCanonicalURL,
		&f.SEOOGTitle, &f.SEOOGDescription, &f.SEOOGType, &f.SEOTwitterSite,
		&f.SEOTwitterCreator, &f.SEOGoogleAnalyticsID, &f.SEOGoogleSiteVerification,
		&f.SEOBingSiteVerification, &f.SEOSchemaOrganizationName,
		&f.SEOSchemaOrganizationLogo, &f.SEOAuthor,
	} {
		*p = strings.TrimSpace(*p)
	}
	// "index,follow" → "index, follow"
	parts := strings.Split(strings.ToLower(f.SEORobots), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	f.SEORobots = strings.Join(parts, ", ")
	f.SEOTwitterCard = strings.TrimSpace(f.SEOTwitterCard)
	if f.SEOOGType == "" {
		f.SEOOGType = "website"
	}
}

// Validate: robots dicek manual karena nilainya mengandung koma & spasi.
func (f *SEOConfigForm) Validate() map[string][]string {
	errs := helper.ValidateStruct(f)
	if !model.IsValidRobots(f.SEORobots) {
		errs = helper.AddFieldError(errs, "seo_robots",
			"Select a valid choice. Allowed: "+strings.Join(model.RobotsChoices, " | ")+".")
	}
	return errs
}

func (f SEOConfigForm) ApplyTo(m *model.SEOConfigModel) {
	m.SEOMetaTitle = f.SEOMetaTitle
	m.SEOMetaDescription = f.SEOMetaDescription
	m.SEOMetaKeywords = f.SEOMetaKeywords
	m.SEOCanonicalURL = f.SEOCanonicalURL
	m.SEORobots = f.SEORobots
	m.SEOOGTitle = f.SEOOGTitle
	m.SEOOGDescription = f.SEOOGDescription
	m.SEOOGType = f.SEOOGType
	m.SEOTwitterCard = f.SEOTwitterCard
	m.SEOTwitterSite = f.SEOTwitterSite
	m.SEOTwitterCreator = f.SEOTwitterCreator
	m.SEOGoogleAnalyticsID = f.SEOGoogleAnalyticsID
	m.SEOGoogleSiteVerification = f.SEOGoogleSiteVerification
	m.SEOBingSiteVerification = f.SEOBingSiteVerification
	m.SEOSchemaOrganizationName = f.SEOSchemaOrganizationName
	m.SEOSchemaOrganizationLogo = f.SEOSchemaOrganizationLogo
	m.SEOAuthor = f.SEOAuthor
}
