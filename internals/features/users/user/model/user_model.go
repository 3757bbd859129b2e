package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
)

// UserModel merepresentasikan tabel users (akun panel admin)
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserName    string     `gorm:"size:150;not null;uniqueIndex" json:"user_name"`
	Email       string     `gorm:"size:254;not null;uniqueIndex" json:"email"`
	FirstName   string     `gorm:"size:150" json:"first_name"`
	LastName    string     `gorm:"size:150" json:"last_name"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"type:varchar(20);not null" json:"role"`
	Phone       *string    `gorm:"size:20" json:"phone"`
	IsStaff     bool       `gorm:"not null" json:"is_staff"`
	IsActive    bool       `gorm:"not null;index" json:"is_active"`
	DateJoined  time.Time  `gorm:"column:date_joined;autoCreateTime" json:"date_joined"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.DefaultRole
	}
	return nil
}

func (u UserModel) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
