package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "actech_backend/internals/features/users/auth/route"
	userRoute "actech_backend/internals/features/users/user/route"
)

// UserAdminRoutes: /panel-admin/me & /panel-admin/users
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	authRoute.MeRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
