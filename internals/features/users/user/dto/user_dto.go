package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/users/user/model"
)

// UserDTO tanpa password
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	UserName    string     `json:"user_name"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	FullName    string     `json:"full_name"`
	Role        string     `json:"role"`
	Phone       *string    `json:"phone"`
	IsStaff     bool       `json:"is_staff"`
	IsActive    bool       `json:"is_active"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLoginAt *time.Time `json:"last_login_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		Role:        u.Role,
		Phone:       u.Phone,
		IsStaff:     u.IsStaff,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
		LastLoginAt: u.LastLoginAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUserDTOs(rows []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToUserDTO(r))
	}
	return out
}

/* =========================================================
   Form create / update
========================================================= */

// UserUpdateForm: field profil & hak akses (tanpa kredensial).
type UserUpdateForm struct {
	UserName  string `json:"user_name" form:"user_name" validate:"required,min=3,max=150"`
	Email     string `json:"email" form:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
	Role      string `json:"role" form:"role" validate:"required,oneof=admin editor viewer"`
	Phone     string `json:"phone" form:"phone" validate:"omitempty,max=20,phone"`
	IsStaff   bool   `json:"is_staff" form:"is_staff"`
	IsActive  bool   `json:"is_active" form:"is_active"`
}

// UserCreateForm = update form + password1/password2.
type UserCreateForm struct {
	UserUpdateForm
	Password1 string `json:"password1" form:"password1" validate:"required,min=8,max=72"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
}

func NewUserCreateForm() UserCreateForm {
	return UserCreateForm{
		UserUpdateForm: UserUpdateForm{
			Role:     constants.DefaultRole,
			IsActive: true,
		},
	}
}

func UserUpdateFormFromModel(u model.UserModel) UserUpdateForm {
	f := UserUpdateForm{
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsStaff:   u.IsStaff,
		IsActive:  u.IsActive,
	}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	return f
}

func (f *UserUpdateForm) Normalize() {
	f.UserName = strings.TrimSpace(f.UserName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Role = strings.ToLower(strings.TrimSpace(f.Role))
	f.Phone = strings.TrimSpace(f.Phone)
}

func (f UserUpdateForm) ApplyTo(u *model.UserModel) {
	u.UserName = f.UserName
	u.Email = f.Email
	u.FirstName = f.FirstName
	u.LastName = f.LastName
	u.Role = f.Role
	u.Phone = nil
	if f.Phone != "" {
		p := f.Phone
		u.Phone = &p
	}
	u.IsStaff = f.IsStaff
	u.IsActive = f.IsActive
}
