package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/content/partners/controller"
	helperOSS "actech_backend/internals/helpers/oss"
	authMiddleware "actech_backend/internals/middlewares/auth"
)

func PartnerAdminRoutes(api fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	ctrl := controller.NewPartnerController(db, blob)
	canWrite := authMiddleware.RequireContentEditor(constants.RoleErrorEditor("partners"))

	g := api.Group("/partners")
	g.Get("/", ctrl.List)
	g.Post("/create", canWrite, ctrl.Create)
	g.Get("/:id", ctrl.Detail)

	g.Post("/:id/edit", canWrite, ctrl.Update)
	g.Put("/:id/edit", canWrite, ctrl.Update)
	g.Patch("/:id/edit", canWrite, ctrl.Update)

	g.Post("/:id/delete", canWrite, ctrl.Delete)
	g.Delete("/:id/delete", canWrite, ctrl.Delete)
	g.Delete("/:id", canWrite, ctrl.Delete)
}
