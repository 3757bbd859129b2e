package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/features/users/auth/service"
	userDTO "actech_backend/internals/features/users/user/dto"
	userRepo "actech_backend/internals/features/users/user/repository"
	helper "actech_backend/internals/helpers"
	helperAuth "actech_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

// Me: profil actor yang sedang login
func (ac *AuthController) Me(c *fiber.Ctx) error {
	actor, err := helperAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}
	user, err := userRepo.FindUserByID(c.UserContext(), ac.DB, actor.ID)
	if err != nil {
		if helper.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"user":             userDTO.ToUserDTO(*user),
		"can_edit_content": helperAuth.CanEditContent(actor),
		"can_manage_users": helperAuth.IsElevated(actor),
	})
}
