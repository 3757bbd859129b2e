package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "actech_backend/internals/features/home/activities/route"
	dashboardRoute "actech_backend/internals/features/home/dashboard/route"
	landingRoute "actech_backend/internals/features/home/landing/route"
)

// ✅ Untuk route publik tanpa token
// Contoh akses: GET /
func HomePublicRoutes(app fiber.Router, db *gorm.DB) {
	landingRoute.LandingPublicRoutes(app, db)
}

// ✅ Untuk panel admin (token)
// Contoh akses: /panel-admin/dashboard
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardAdminRoutes(admin, db)
	activityRoute.ActivityAdminRoutes(admin, db)
}
