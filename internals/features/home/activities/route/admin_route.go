package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/activities/controller"
)

func ActivityAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityController(db)
	api.Get("/activities", ctrl.List)
}
