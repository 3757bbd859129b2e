package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/activities/dto"
	"actech_backend/internals/features/home/activities/service"
	helper "actech_backend/internals/helpers"
)

const maxActivityLimit = 200

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

// GET /panel-admin/activities?limit=50
func (ctrl *ActivityController) List(c *fiber.Ctx) error {
	limit := 50
	if n, ok := helper.FormInt(c, "limit"); ok && n > 0 {
		limit = n
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	rows, err := service.Recent(c.UserContext(), ctrl.DB, limit)
	if err != nil {
		log.Printf("[ERROR] list activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch activity log")
	}
	return helper.JsonList(c, "ok", dto.ToActivityDTOs(rows, time.Now()))
}
