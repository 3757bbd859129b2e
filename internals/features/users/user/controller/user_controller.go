package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "actech_backend/internals/features/home/activities/model"
	activity "actech_backend/internals/features/home/activities/service"
	settingsService "actech_backend/internals/features/site/settings/service"
	authHelper "actech_backend/internals/features/users/auth/helper"
	"actech_backend/internals/features/users/user/dto"
	"actech_backend/internals/features/users/user/model"
	"actech_backend/internals/features/users/user/repository"
	helper "actech_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /panel-admin/users (terbaru bergabung dulu)
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := repository.ListUsers(c.UserContext(), uc.DB)
	if err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	return helper.JsonList(c, "Users fetched successfully", dto.ToUserDTOs(users))
}

// GET /panel-admin/users/:id
func (uc *UserController) Detail(c *fiber.Ctx) error {
	u, err := uc.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(*u))
}

// POST /panel-admin/users/create
func (uc *UserController) Create(c *fiber.Ctx) error {
	form := dto.NewUserCreateForm()
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if msg := uc.duplicateMessage(c, form.UserName, form.Email, uuid.Nil); msg != "" {
		return helper.JsonError(c, fiber.StatusConflict, msg)
	}

	hash, err := authHelper.HashPassword(form.Password1)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	var u model.UserModel
	form.ApplyTo(&u)
	u.Password = hash
	if err := uc.DB.WithContext(c.UserContext()).Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A user with that username or email already exists")
		}
		log.Println("[ERROR] Failed to create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	log.Printf("[SUCCESS] Created user %s (%s)", u.UserName, u.Role)
	activity.RecordFromCtx(c, uc.DB, activity.Entry{
		Action: activityModel.ActionCreate, Entity: "user",
		EntityID: u.ID.String(), EntityName: u.UserName,
	})
	return helper.JsonCreated(c, "User created successfully", dto.ToUserDTO(u))
}

// POST|PUT|PATCH /panel-admin/users/:id/edit
// NOTE: password tidak bisa diubah lewat endpoint ini
func (uc *UserController) Update(c *fiber.Ctx) error {
	u, err := uc.find(c)
	if err != nil {
		return err
	}

	form := dto.UserUpdateFormFromModel(*u)
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := helper.ValidateStruct(form); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if msg := uc.duplicateMessage(c, form.UserName, form.Email, u.ID); msg != "" {
		return helper.JsonError(c, fiber.StatusConflict, msg)
	}

	changes := map[string]any{}
	if form.Role != u.Role {
		changes["role"] = []string{u.Role, form.Role}
	}
	if form.IsActive != u.IsActive {
		changes["is_active"] = form.IsActive
	}

	form.ApplyTo(u)
	if err := uc.DB.WithContext(c.UserContext()).Save(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A user with that username or email already exists")
		}
		log.Println("[ERROR] Failed to update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	activity.RecordFromCtx(c, uc.DB, activity.Entry{
		Action: activityModel.ActionUpdate, Entity: "user",
		EntityID: u.ID.String(), EntityName: u.UserName, Changes: changes,
	})
	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserDTO(*u))
}

// POST|DELETE /panel-admin/users/:id/delete
// seo_updated_by yang menunjuk user ini dikosongkan dalam transaksi yang sama.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	u, err := uc.find(c)
	if err != nil {
		return err
	}

	err = uc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := settingsService.ClearSEOUpdatedBy(tx, u.ID); err != nil {
			return err
		}
		return tx.Delete(u).Error
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	log.Printf("[SUCCESS] Deleted user %s", u.UserName)
	activity.RecordFromCtx(c, uc.DB, activity.Entry{
		Action: activityModel.ActionDelete, Entity: "user",
		EntityID: u.ID.String(), EntityName: u.UserName,
	})
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": u.ID})
}

func (uc *UserController) find(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	u, err := repository.FindUserByID(c.UserContext(), uc.DB, id)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] Failed to fetch user:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return u, nil
}

// duplicateMessage cek user_name/email yang sudah dipakai user lain.
func (uc *UserController) duplicateMessage(c *fiber.Ctx, userName, email string, exceptID uuid.UUID) string {
	var n int64
	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).Where("user_name = ?", userName)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	if q.Count(&n).Error == nil && n > 0 {
		return "A user with that username already exists"
	}
	q = uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).Where("email = ?", email)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	if q.Count(&n).Error == nil && n > 0 {
		return "A user with that email already exists"
	}
	return ""
}
