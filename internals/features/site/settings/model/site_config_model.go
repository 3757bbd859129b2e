package model

// SiteConfigModel: branding umum situs (singleton).
type SiteConfigModel struct {
	SiteConfigSlot         string `gorm:"column:site_config_slot;primaryKey;size:20" json:"-"`
	SiteConfigTitle        string `gorm:"column:site_config_title;size:200;not null" json:"site_config_title"`
	SiteConfigBrandName    string `gorm:"column:site_config_brand_name;size:100;not null" json:"site_config_brand_name"`
	SiteConfigTagline      string `gorm:"column:site_config_tagline;size:200;not null" json:"site_config_tagline"`
	SiteConfigPrimaryColor string `gorm:"column:site_config_primary_color;size:7;not null" json:"site_config_primary_color"`
	SiteConfigAccentColor  string `gorm:"column:site_config_accent_color;size:7;not null" json:"site_config_accent_color"`
}

func (SiteConfigModel) TableName() string {
	return "site_configs"
}

func (m *SiteConfigModel) SlotColumn() string { return "site_config_slot" }

func (m *SiteConfigModel) SetSlot(key string) { m.SiteConfigSlot = key }

func (m *SiteConfigModel) ApplyDefaults() {
	m.SiteConfigTitle = "AC Technology — Soluciones Integrales"
	m.SiteConfigBrandName = "AC Technology"
	m.SiteConfigTagline = "Soluciones integrales: corporativo, educativo y residencial"
	m.SiteConfigPrimaryColor = "#2a9dff"
	m.SiteConfigAccentColor = "#00c9b7"
}
