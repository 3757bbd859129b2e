package model

type HeroSectionModel struct {
	HeroSlot      string `gorm:"column:hero_slot;primaryKey;size:20" json:"-"`
	HeroTitle     string `gorm:"column:hero_title;size:200;not null" json:"hero_title"`
	HeroSubtitle  string `gorm:"column:hero_subtitle;type:text;not null" json:"hero_subtitle"`
	HeroImageURL  string `gorm:"column:hero_image_url;type:text" json:"hero_image_url"`
	HeroCTA1Label string `gorm:"column:hero_cta1_label;size:100" json:"hero_cta1_label"`
	HeroCTA1Link  string `gorm:"column:hero_cta1_link;type:text" json:"hero_cta1_link"`
	HeroCTA1Icon  string `gorm:"column:hero_cta1_icon;size:50" json:"hero_cta1_icon"`
	HeroCTA2Label string `gorm:"column:hero_cta2_label;size:100" json:"hero_cta2_label"`
	HeroCTA2Link  string `gorm:"column:hero_cta2_link;type:text" json:"hero_cta2_link"`
	HeroCTA2Icon  string `gorm:"column:hero_cta2_icon;size:50" json:"hero_cta2_icon"`
}

func (HeroSectionModel) TableName() string {
	return "hero_sections"
}

func (m *HeroSectionModel) SlotColumn() string { return "hero_slot" }

func (m *HeroSectionModel) SetSlot(key string) { m.HeroSlot = key }

func (m *HeroSectionModel) ApplyDefaults() {
	m.HeroTitle = "Proyectos INTEGRALES en tecnología"
	m.HeroSubtitle = "Integramos soluciones de audio, video, redes, domótica y seguridad."
	m.HeroCTA1Label = "Conoce el demo virtual"
	m.HeroCTA1Link = "#"
	m.HeroCTA1Icon = "fa-solid fa-bolt"
	m.HeroCTA2Label = "Escríbenos por WhatsApp"
	m.HeroCTA2Link = "#"
	m.HeroCTA2Icon = "fa-brands fa-whatsapp"
}
