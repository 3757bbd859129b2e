package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/partners/dto"
	"actech_backend/internals/features/content/partners/model"
	"actech_backend/internals/features/content/partners/repository"
	activityModel "actech_backend/internals/features/home/activities/model"
	activity "actech_backend/internals/features/home/activities/service"
	helper "actech_backend/internals/helpers"
	helperOSS "actech_backend/internals/helpers/oss"
)

var partnerLogo = helperOSS.ImageField{
	Field:   "partner_logo",
	Dir:     "partners",
	Variant: helperOSS.VariantLogo,
}

type PartnerController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewPartnerController(db *gorm.DB, blob helperOSS.BlobService) *PartnerController {
	return &PartnerController{DB: db, Blob: blob}
}

// GET /panel-admin/partners
func (ctrl *PartnerController) List(c *fiber.Ctx) error {
	rows, err := repository.ListPartners(c.UserContext(), ctrl.DB, helper.QueryBoolPtr(c, "active"))
	if err != nil {
		log.Printf("[ERROR] list partners: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partners")
	}
	return helper.JsonList(c, "ok", dto.ToPartnerDTOs(rows))
}

// GET /panel-admin/partners/:id
func (ctrl *PartnerController) Detail(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToPartnerDTO(*m))
}

// POST /panel-admin/partners/create
func (ctrl *PartnerController) Create(c *fiber.Ctx) error {
	form := dto.NewPartnerForm()
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	logoURL, _, err := helperOSS.ApplyImageField(c, ctrl.Blob, partnerLogo, "")
	if err != nil {
		return err
	}

	var m model.PartnerModel
	form.ApplyTo(&m)
	m.PartnerLogoURL = logoURL
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, logoURL)
		log.Printf("[ERROR] create partner: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create partner")
	}

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionCreate, Entity: "partner",
		EntityID: m.PartnerID.String(), EntityName: m.PartnerName,
	})
	return helper.JsonCreated(c, "Partner created", dto.ToPartnerDTO(m))
}

// POST|PUT|PATCH /panel-admin/partners/:id/edit
func (ctrl *PartnerController) Update(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}

	form := dto.PartnerFormFromModel(*m)
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	oldLogo := m.PartnerLogoURL
	logoURL, stale, err := helperOSS.ApplyImageField(c, ctrl.Blob, partnerLogo, oldLogo)
	if err != nil {
		return err
	}

	form.ApplyTo(m)
	m.PartnerLogoURL = logoURL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if logoURL != oldLogo {
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, logoURL)
		}
		log.Printf("[ERROR] update partner %s: %v", m.PartnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update partner")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionUpdate, Entity: "partner",
		EntityID: m.PartnerID.String(), EntityName: m.PartnerName,
	})
	return helper.JsonUpdated(c, "Partner updated", dto.ToPartnerDTO(*m))
}

// POST /panel-admin/partners/:id/delete
func (ctrl *PartnerController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		log.Printf("[ERROR] delete partner %s: %v", m.PartnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete partner")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, m.PartnerLogoURL)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionDelete, Entity: "partner",
		EntityID: m.PartnerID.String(), EntityName: m.PartnerName,
	})
	return helper.JsonDeleted(c, "Partner deleted", fiber.Map{"partner_id": m.PartnerID})
}

func (ctrl *PartnerController) find(c *fiber.Ctx) (*model.PartnerModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	m, err := repository.FindPartnerByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Partner not found")
		}
		log.Printf("[ERROR] find partner %s: %v", id, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch partner")
	}
	return m, nil
}
