package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/landing/service"
	helper "actech_backend/internals/helpers"
)

type LandingController struct {
	DB *gorm.DB
}

func NewLandingController(db *gorm.DB) *LandingController {
	return &LandingController{DB: db}
}

// GET /
func (ctrl *LandingController) Home(c *fiber.Ctx) error {
	view, err := service.RenderHome(c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] render home: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load home page")
	}
	return helper.JsonOK(c, "ok", view)
}
