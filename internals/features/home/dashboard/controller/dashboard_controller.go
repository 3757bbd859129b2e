package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/dashboard/service"
	helper "actech_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /panel-admin/ dan /panel-admin/dashboard/
func (ctrl *DashboardController) Index(c *fiber.Ctx) error {
	view, err := service.BuildDashboard(c.UserContext(), ctrl.DB, time.Now())
	if err != nil {
		log.Printf("[ERROR] dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	return helper.JsonOK(c, "ok", view)
}
