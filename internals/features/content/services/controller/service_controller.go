package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/services/dto"
	"actech_backend/internals/features/content/services/model"
	"actech_backend/internals/features/content/services/repository"
	activityModel "actech_backend/internals/features/home/activities/model"
	activity "actech_backend/internals/features/home/activities/service"
	helper "actech_backend/internals/helpers"
	helperOSS "actech_backend/internals/helpers/oss"
)

var serviceImage = helperOSS.ImageField{
	Field:   "service_image",
	Dir:     "services",
	Variant: helperOSS.VariantContent,
}

type ServiceController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewServiceController(db *gorm.DB, blob helperOSS.BlobService) *ServiceController {
	return &ServiceController{DB: db, Blob: blob}
}

// =======================
// 📄 List (semua, urutan default; ?active=true|false)
// =======================
func (ctrl *ServiceController) List(c *fiber.Ctx) error {
	rows, err := repository.ListServices(c.UserContext(), ctrl.DB, helper.QueryBoolPtr(c, "active"))
	if err != nil {
		log.Printf("[ERROR] list services: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch services")
	}
	return helper.JsonList(c, "ok", dto.ToServiceDTOs(rows))
}

// =======================
// 🔍 Detail
// =======================
func (ctrl *ServiceController) Detail(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToServiceDTO(*m))
}

// =======================
// ➕ Create
// =======================
func (ctrl *ServiceController) Create(c *fiber.Ctx) error {
	form := dto.NewServiceForm()
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	imageURL, _, err := helperOSS.ApplyImageField(c, ctrl.Blob, serviceImage, "")
	if err != nil {
		return err
	}

	var m model.ServiceModel
	form.ApplyTo(&m)
	m.ServiceImageURL = imageURL
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, imageURL)
		log.Printf("[ERROR] create service: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create service")
	}

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionCreate, Entity: "service",
		EntityID: m.ServiceID.String(), EntityName: m.ServiceTitle,
	})
	return helper.JsonCreated(c, "Service created", dto.ToServiceDTO(m))
}

// =======================
// ✏️ Update (partial: field yang tidak dikirim tetap)
// =======================
func (ctrl *ServiceController) Update(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}

	form := dto.ServiceFormFromModel(*m)
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	oldImage := m.ServiceImageURL
	imageURL, stale, err := helperOSS.ApplyImageField(c, ctrl.Blob, serviceImage, oldImage)
	if err != nil {
		return err
	}

	form.ApplyTo(m)
	m.ServiceImageURL = imageURL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if imageURL != oldImage {
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, imageURL)
		}
		log.Printf("[ERROR] update service %s: %v", m.ServiceID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update service")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionUpdate, Entity: "service",
		EntityID: m.ServiceID.String(), EntityName: m.ServiceTitle,
	})
	return helper.JsonUpdated(c, "Service updated", dto.ToServiceDTO(*m))
}

// =======================
// 🗑️ Delete (hard delete)
// =======================
func (ctrl *ServiceController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		log.Printf("[ERROR] delete service %s: %v", m.ServiceID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete service")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, m.ServiceImageURL)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionDelete, Entity: "service",
		EntityID: m.ServiceID.String(), EntityName: m.ServiceTitle,
	})
	return helper.JsonDeleted(c, "Service deleted", fiber.Map{"service_id": m.ServiceID})
}

func (ctrl *ServiceController) find(c *fiber.Ctx) (*model.ServiceModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	m, err := repository.FindServiceByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		log.Printf("[ERROR] find service %s: %v", id, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch service")
	}
	return m, nil
}
