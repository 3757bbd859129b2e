package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	partnerRoute "actech_backend/internals/features/content/partners/route"
	projectRoute "actech_backend/internals/features/content/projects/route"
	serviceRoute "actech_backend/internals/features/content/services/route"
	settingsRoute "actech_backend/internals/features/site/settings/route"
	helperOSS "actech_backend/internals/helpers/oss"
)

// ✅ Konten & pengaturan situs (token + role editor untuk tulis)
// Contoh akses: /panel-admin/services/create
func ContentAdminRoutes(admin fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	serviceRoute.ServiceAdminRoutes(admin, db, blob)
	partnerRoute.PartnerAdminRoutes(admin, db, blob)
	projectRoute.ProjectAdminRoutes(admin, db, blob)
	settingsRoute.SettingsAdminRoutes(admin, db, blob)
}
