package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"actech_backend/internals/constants"
)

// Locals key yang diisi AuthMiddleware
const (
	LocActor    = "actor"
	LocUserID   = "user_id"
	LocUserRole = "userRole"
	LocUserName = "user_name"
)

// Actor adalah identitas + role pemanggil, dibaca ulang dari DB tiap request.
type Actor struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role"`
	IsStaff  bool      `json:"is_staff"`
	IsActive bool      `json:"is_active"`
}

// IsElevated: akses manajemen akun (staff atau role admin).
func IsElevated(a *Actor) bool {
	if a == nil || !a.IsActive {
		return false
	}
	return a.IsStaff || a.Role == constants.RoleAdmin
}

// CanEditContent: boleh create/update/delete konten & pengaturan situs.
// Viewer hanya bisa membaca panel.
func CanEditContent(a *Actor) bool {
	if a == nil || !a.IsActive {
		return false
	}
	return IsElevated(a) || a.Role == constants.RoleEditor
}

func SetActor(c *fiber.Ctx, a *Actor) {
	c.Locals(LocActor, a)
	c.Locals(LocUserID, a.ID.String())
	c.Locals(LocUserRole, a.Role)
	c.Locals(LocUserName, a.UserName)
}

// ActorFromCtx mengambil actor hasil AuthMiddleware; 401 bila tidak ada.
func ActorFromCtx(c *fiber.Ctx) (*Actor, error) {
	if a, ok := c.Locals(LocActor).(*Actor); ok && a != nil && a.ID != uuid.Nil {
		return a, nil
	}
	return nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication credentials were not provided")
}

// ActorIDPtr untuk kolom audit nullable (mis. seo_updated_by).
func ActorIDPtr(c *fiber.Ctx) *uuid.UUID {
	a, err := ActorFromCtx(c)
	if err != nil {
		return nil
	}
	id := a.ID
	return &id
}
