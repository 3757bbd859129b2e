package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultIcon = "fa-solid fa-network-wired"

	// DefaultOrder urutan list admin & halaman publik
	DefaultOrder = "service_order ASC, service_created_at DESC"
)

type ServiceModel struct {
	ServiceID          uuid.UUID `gorm:"column:service_id;type:uuid;primaryKey" json:"service_id"`
	ServiceTitle       string    `gorm:"column:service_title;size:200;not null" json:"service_title"`
	ServiceDescription string    `gorm:"column:service_description;type:text;not null" json:"service_description"`
	ServiceIcon        string    `gorm:"column:service_icon;size:50;not null" json:"service_icon"`
	ServiceImageURL    string    `gorm:"column:service_image_url;type:text" json:"service_image_url"`
	ServicePoint1      string    `gorm:"column:service_point1;size:100" json:"service_point1"`
	ServicePoint2      string    `gorm:"column:service_point2;size:100" json:"service_point2"`
	ServicePoint3      string    `gorm:"column:service_point3;size:100" json:"service_point3"`
	ServiceOrder       int       `gorm:"column:service_order;not null;index" json:"service_order"`
	ServiceIsActive    bool      `gorm:"column:service_is_active;not null;index" json:"service_is_active"`
	ServiceCreatedAt   time.Time `gorm:"column:service_created_at;autoCreateTime" json:"service_created_at"`
	ServiceUpdatedAt   time.Time `gorm:"column:service_updated_at;autoUpdateTime" json:"service_updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}

func (m *ServiceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ServiceID == uuid.Nil {
		m.ServiceID = uuid.New()
	}
	return nil
}

// Points: poin yang terisi saja, urutan point1 → point3.
func (m ServiceModel) Points() []string {
	out := make([]string, 0, 3)
	for _, p := range []string{m.ServicePoint1, m.ServicePoint2, m.ServicePoint3} {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
