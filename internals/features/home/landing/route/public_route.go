package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/landing/controller"
)

func LandingPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLandingController(db)
	app.Get("/", ctrl.Home)
}
