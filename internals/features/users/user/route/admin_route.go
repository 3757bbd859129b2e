package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
	userController "actech_backend/internals/features/users/user/controller"
	authMiddleware "actech_backend/internals/middlewares/auth"
)

// UserAdminRoutes: manajemen akun, hanya staff/admin.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.RequireElevated(constants.RoleErrorAdmin("user management")),
	)

	users.Get("/", userCtrl.List)
	users.Post("/create", userCtrl.Create)
	users.Get("/:id", userCtrl.Detail)

	users.Post("/:id/edit", userCtrl.Update)
	users.Put("/:id/edit", userCtrl.Update)
	users.Patch("/:id/edit", userCtrl.Update)

	users.Post("/:id/delete", userCtrl.Delete)
	users.Delete("/:id/delete", userCtrl.Delete)
	users.Delete("/:id", userCtrl.Delete)
}
