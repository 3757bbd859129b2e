package dto

import (
	"strings"

	"actech_backend/internals/features/site/settings/model"
	helper "actech_backend/internals/helpers"
)

/* =========================================================
   SiteConfig
========================================================= */

type SiteConfigForm struct {
	SiteConfigTitle        string `json:"site_config_title" form:"site_config_title" validate:"required,max=200"`
	SiteConfigBrandName    string `json:"site_config_brand_name" form:"site_config_brand_name" validate:"required,max=100"`
	SiteConfigTagline      string `json:"site_config_tagline" form:"site_config_tagline" validate:"required,max=200"`
	SiteConfigPrimaryColor string `json:"site_config_primary_color" form:"site_config_primary_color" validate:"required,hexcolor,max=7"`
	SiteConfigAccentColor  string `json:"site_config_accent_color" form:"site_config_accent_color" validate:"required,hexcolor,max=7"`
}

func SiteConfigFormFromModel(m model.SiteConfigModel) SiteConfigForm {
	return SiteConfigForm{
		SiteConfigTitle:        m.SiteConfigTitle,
		SiteConfigBrandName:    m.SiteConfigBrandName,
		SiteConfigTagline:      m.SiteConfigTagline,
		SiteConfigPrimaryColor: m.SiteConfigPrimaryColor,
		SiteConfigAccentColor:  m.SiteConfigAccentColor,
	}
}

func (f *SiteConfigForm) Normalize() {
	f.SiteConfigTitle = strings.TrimSpace(f.SiteConfigTitle)
	f.SiteConfigBrandName = strings.TrimSpace(f.SiteConfigBrandName)
	f.SiteConfigTagline = strings.TrimSpace(f.SiteConfigTagline)
	f.SiteConfigPrimaryColor = strings.ToLower(strings.TrimSpace(f.SiteConfigPrimaryColor))
	f.SiteConfigAccentColor = strings.ToLower(strings.TrimSpace(f.SiteConfigAccentColor))
}

func (f *SiteConfigForm) Validate() map[string][]string {
	return helper.ValidateStruct(f)
}

func (f SiteConfigForm) ApplyTo(m *model.SiteConfigModel) {
	m.SiteConfigTitle = f.SiteConfigTitle
	m.SiteConfigBrandName = f.SiteConfigBrandName
	m.SiteConfigTagline = f.SiteConfigTagline
	m.SiteConfigPrimaryColor = f.SiteConfigPrimaryColor
	m.SiteConfigAccentColor = f.SiteConfigAccentColor
}

/* =========================================================
   HeroSection
========================================================= */

type HeroSectionForm struct {
	HeroTitle     string `json:"hero_title" form:"hero_title" validate:"required,max=200"`
	HeroSubtitle  string `json:"hero_subtitle" form:"hero_subtitle" validate:"required"`
	HeroCTA1Label string `json:"hero_cta1_label" form:"hero_cta1_label" validate:"max=100"`
	HeroCTA1Link  string `json:"hero_cta1_link" form:"hero_cta1_link" validate:"omitempty,link"`
	HeroCTA1Icon  string `json:"hero_cta1_icon" form:"hero_cta1_icon" validate:"max=50"`
	HeroCTA2Label string `json:"hero_cta2_label" form:"hero_cta2_label" validate:"max=100"`
	HeroCTA2Link  string `json:"hero_cta2_link" form:"hero_cta2_link" validate:"omitempty,link"`
	HeroCTA2Icon  string `json:"hero_cta2_icon" form:"hero_cta2_icon" validate:"max=50"`
}

func HeroSectionFormFromModel(m model.HeroSectionModel) HeroSectionForm {
	return HeroSectionForm{
		HeroTitle:     m.HeroTitle,
		HeroSubtitle:  m.HeroSubtitle,
		HeroCTA1Label: m.HeroCTA1Label,
		HeroCTA1Link:  m.HeroCTA1Link,
		HeroCTA1Icon:  m.HeroCTA1Icon,
		HeroCTA2Label: m.HeroCTA2Label,
		HeroCTA2Link:  m.HeroCTA2Link,
		HeroCTA2Icon:  m.HeroCTA2Icon,
	}
}

func (f *HeroSectionForm) Normalize() {
	f.HeroTitle = strings.TrimSpace(f.HeroTitle)
	f.HeroSubtitle = strings.TrimSpace(f.HeroSubtitle)
	f.HeroCTA1Label = strings.TrimSpace(f.HeroCTA1Label)
	f.HeroCTA1Link = strings.TrimSpace(f.HeroCTA1Link)
	f.HeroCTA1Icon = strings.TrimSpace(f.HeroCTA1Icon)
	f.HeroCTA2Label = strings.TrimSpace(f.HeroCTA2Label)
	f.HeroCTA2Link = strings.TrimSpace(f.HeroCTA2Link)
	f.HeroCTA2Icon = strings.TrimSpace(f.HeroCTA2Icon)
}

func (f *HeroSectionForm) Validate() map[string][]string {
	return helper.ValidateStruct(f)
}

func (f HeroSectionForm) ApplyTo(m *model.HeroSectionModel) {
	m.HeroTitle = f.HeroTitle
	m.HeroSubtitle = f.HeroSubtitle
	m.HeroCTA1Label = f.HeroCTA1Label
	m.HeroCTA1Link = f.HeroCTA1Link
	m.HeroCTA1Icon = f.HeroCTA1Icon
	m.HeroCTA2Label = f.HeroCTA2Label
	m.HeroCTA2Link = f.HeroCTA2Link
	m.HeroCTA2Icon = f.HeroCTA2Icon
}

/* =========================================================
   Showroom
========================================================= */

type ShowroomForm struct {
	ShowroomTitle       string `json:"showroom_title" form:"showroom_title" validate:"required,max=200"`
	ShowroomDescription string `json:"showroom_description" form:"showroom_description" validate:"required"`
	ShowroomURL         string `json:"showroom_url" form:"showroom_url" validate:"required,link"`
}

func ShowroomFormFromModel(m model.ShowroomModel) ShowroomForm {
	return ShowroomForm{
		ShowroomTitle:       m.ShowroomTitle,
		ShowroomDescription: m.ShowroomDescription,
		ShowroomURL:         m.ShowroomURL,
	}
}

func (f *ShowroomForm) Normalize() {
	f.ShowroomTitle = strings.TrimSpace(f.ShowroomTitle)
	f.ShowroomDescription = strings.TrimSpace(f.ShowroomDescription)
	f.ShowroomURL = strings.TrimSpace(f.ShowroomURL)
	if f.ShowroomURL == "" {
		f.ShowroomURL = "#"
	}
}

func (f *ShowroomForm) Validate() map[string][]string {
	return helper.ValidateStruct(f)
}

func (f ShowroomForm) ApplyTo(m *model.ShowroomModel) {
	m.ShowroomTitle = f.ShowroomTitle
	m.ShowroomDescription = f.ShowroomDescription
	m.ShowroomURL = f.ShowroomURL
}
