package model

type ShowroomModel struct {
	ShowroomSlot        string `gorm:"column:showroom_slot;primaryKey;size:20" json:"-"`
	ShowroomTitle       string `gorm:"column:showroom_title;size:200;not null" json:"showroom_title"`
	ShowroomDescription string `gorm:"column:showroom_description;type:text;not null" json:"showroom_description"`
	ShowroomImageURL    string `gorm:"column:showroom_image_url;type:text" json:"showroom_image_url"`
	ShowroomURL         string `gorm:"column:showroom_url;type:text" json:"showroom_url"`
}

func (ShowroomModel) TableName() string {
	return "showrooms"
}

func (m *ShowroomModel) SlotColumn() string { return "showroom_slot" }

func (m *ShowroomModel) SetSlot(key string) { m.ShowroomSlot = key }

func (m *ShowroomModel) ApplyDefaults() {
	m.ShowroomTitle = "Visita nuestro Showroom"
	m.ShowroomDescription = "Equipado con lo último en tecnología. Agenda una demostración."
	m.ShowroomURL = "#"
}
