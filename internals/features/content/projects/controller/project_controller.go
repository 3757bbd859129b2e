package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/projects/dto"
	"actech_backend/internals/features/content/projects/model"
	"actech_backend/internals/features/content/projects/repository"
	activityModel "actech_backend/internals/features/home/activities/model"
	activity "actech_backend/internals/features/home/activities/service"
	helper "actech_backend/internals/helpers"
	helperOSS "actech_backend/internals/helpers/oss"
)

var projectImage = helperOSS.ImageField{
	Field:   "project_image",
	Dir:     "projects",
	Variant: helperOSS.VariantContent,
}

type ProjectController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewProjectController(db *gorm.DB, blob helperOSS.BlobService) *ProjectController {
	return &ProjectController{DB: db, Blob: blob}
}

// GET /panel-admin/projects
func (ctrl *ProjectController) List(c *fiber.Ctx) error {
	rows, err := repository.ListProjects(c.UserContext(), ctrl.DB, helper.QueryBoolPtr(c, "active"))
	if err != nil {
		log.Printf("[ERROR] list projects: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}
	return helper.JsonList(c, "ok", dto.ToProjectDTOs(rows))
}

// GET /panel-admin/projects/:id
func (ctrl *ProjectController) Detail(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToProjectDTO(*m))
}

// POST /panel-admin/projects/create
func (ctrl *ProjectController) Create(c *fiber.Ctx) error {
	form := dto.NewProjectForm()
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	imageURL, _, err := helperOSS.ApplyImageField(c, ctrl.Blob, projectImage, "")
	if err != nil {
		return err
	}

	var m model.ProjectModel
	form.ApplyTo(&m)
	m.ProjectImageURL = imageURL
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, imageURL)
		log.Printf("[ERROR] create project: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create project")
	}

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionCreate, Entity: "project",
		EntityID: m.ProjectID.String(), EntityName: m.ProjectTitle,
	})
	return helper.JsonCreated(c, "Project created", dto.ToProjectDTO(m))
}

// POST|PUT|PATCH /panel-admin/projects/:id/edit
func (ctrl *ProjectController) Update(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}

	form := dto.ProjectFormFromModel(*m)
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	oldImage := m.ProjectImageURL
	imageURL, stale, err := helperOSS.ApplyImageField(c, ctrl.Blob, projectImage, oldImage)
	if err != nil {
		return err
	}

	form.ApplyTo(m)
	m.ProjectImageURL = imageURL
	if err := ctrl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if imageURL != oldImage {
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, imageURL)
		}
		log.Printf("[ERROR] update project %s: %v", m.ProjectID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update project")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionUpdate, Entity: "project",
		EntityID: m.ProjectID.String(), EntityName: m.ProjectTitle,
	})
	return helper.JsonUpdated(c, "Project updated", dto.ToProjectDTO(*m))
}

// POST /panel-admin/projects/:id/delete
func (ctrl *ProjectController) Delete(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		log.Printf("[ERROR] delete project %s: %v", m.ProjectID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, m.ProjectImageURL)

	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action: activityModel.ActionDelete, Entity: "project",
		EntityID: m.ProjectID.String(), EntityName: m.ProjectTitle,
	})
	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"project_id": m.ProjectID})
}

func (ctrl *ProjectController) find(c *fiber.Ctx) (*model.ProjectModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	m, err := repository.FindProjectByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		log.Printf("[ERROR] find project %s: %v", id, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project")
	}
	return m, nil
}
