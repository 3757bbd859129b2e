// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/configs"
	helperOSS "actech_backend/internals/helpers/oss"
	authMiddleware "actech_backend/internals/middlewares/auth"
	routeDetails "actech_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, blob helperOSS.BlobService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// file upload lokal (tanpa OSS) disajikan langsung
	if _, ok := blob.(*helperOSS.LocalBlobService); ok {
		log.Printf("[INFO] Serving local media %s at %s", configs.MediaRoot, configs.MediaBaseURL)
		app.Static(configs.MediaBaseURL, configs.MediaRoot, fiber.Static{
			Compress: true,
			MaxAge:   3600,
		})
	}

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	routeDetails.HomePublicRoutes(app, db)

	// ===================== PANEL ADMIN =====================
	log.Println("[INFO] Setting up PANEL-ADMIN group (Auth)...")
	admin := app.Group("/panel-admin", authMiddleware.AuthMiddleware(db))

	routeDetails.HomeAdminRoutes(admin, db)
	routeDetails.ContentAdminRoutes(admin, db, blob)
	routeDetails.UserAdminRoutes(admin, db)
}
