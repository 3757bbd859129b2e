// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "actech_backend/internals/features/users/auth/controller"
	rateLimiter "actech_backend/internals/middlewares"
)

// AuthRoutes publik: /login & /logout
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Post("/logout", authController.Logout)
}

// MeRoutes dipasang di group /panel-admin (sudah lewat AuthMiddleware).
func MeRoutes(api fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	me := api.Group("/me")
	me.Get("/", authController.Me)
	me.Post("/password", authController.ChangePassword)
}
