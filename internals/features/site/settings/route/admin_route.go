package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/site/settings/controller"
	"actech_backend/internals/features/site/settings/model"
	helperOSS "actech_backend/internals/helpers/oss"
	authMiddleware "actech_backend/internals/middlewares/auth"
)

// SettingsAdminRoutes: /config, /hero, /showroom, /contact, /seo
func SettingsAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewSettingsController(db, blob)
	canWrite := authMiddleware.RequireContentEditor(constants.RoleErrorEditor("site settings"))

	singleton := func(path string, get, update, remove fiber.Handler) {
		g := api.Group(path)
		g.Get("/", get)
		g.Post("/", canWrite, update)
		g.Put("/", canWrite, update)
		g.Patch("/", canWrite, update)
		g.Delete("/", canWrite, remove)
	}

	singleton("/config", ctrl.GetSiteConfig, ctrl.UpdateSiteConfig, controller.DeleteSingleton[model.SiteConfigModel](db))
	singleton("/hero", ctrl.GetHero, ctrl.UpdateHero, controller.DeleteSingleton[model.HeroSectionModel](db))
	singleton("/showroom", ctrl.GetShowroom, ctrl.UpdateShowroom, controller.DeleteSingleton[model.ShowroomModel](db))
	singleton("/contact", ctrl.GetContact, ctrl.UpdateContact, controller.DeleteSingleton[model.ContactInfoModel](db))
	singleton("/seo", ctrl.GetSEO, ctrl.UpdateSEO, controller.DeleteSingleton[model.SEOConfigModel](db))
}
