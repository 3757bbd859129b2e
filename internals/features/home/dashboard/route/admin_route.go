package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/dashboard/controller"
)

func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	api.Get("/", ctrl.Index)
	api.Get("/dashboard", ctrl.Index)
}
