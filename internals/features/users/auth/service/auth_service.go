package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/configs"
	authHelper "actech_backend/internals/features/users/auth/helper"
	userDTO "actech_backend/internals/features/users/user/dto"
	userRepo "actech_backend/internals/features/users/user/repository"
	helpers "actech_backend/internals/helpers"
	helpersAuth "actech_backend/internals/helpers/auth"
)

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier" form:"identifier"`
		Password   string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if errs := validateLoginInput(input.Identifier, input.Password); errs != nil {
		return helpers.JsonValidationError(c, errs)
	}

	user, err := userRepo.FindUserByIdentifier(c.UserContext(), db, input.Identifier)
	if err != nil {
		if !helpers.IsNotFound(err) {
			log.Printf("[ERROR] login lookup: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
		}
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username/email or password")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username/email or password")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "This account has been deactivated. Contact an administrator.")
	}

	now := nowUTC()
	token, expiresAt, err := IssueAccessToken(*user, now)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue access token")
	}
	if err := userRepo.TouchLastLogin(c.UserContext(), db, user.ID, now); err != nil {
		log.Printf("[WARN] stamp last_login_at: %v", err)
	} else {
		user.LastLoginAt = &now
	}

	setAuthCookie(c, token, expiresAt)
	log.Printf("[INFO] login ok user=%s role=%s", user.UserName, user.Role)
	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt,
		"user":         userDTO.ToUserDTO(*user),
	})
}

func validateLoginInput(identifier, password string) map[string][]string {
	var errs map[string][]string
	if identifier == "" {
		errs = helpers.AddFieldError(errs, "identifier", "This field is required.")
	}
	if password == "" {
		errs = helpers.AddFieldError(errs, "password", "This field is required.")
	}
	return errs
}

func setAuthCookie(c *fiber.Ctx, accessToken string, expiresAt time.Time) {
	sameSite := fiber.CookieSameSiteLaxMode
	if configs.CookieSecure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     helpers.AccessTokenCookie,
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: sameSite,
		Path:     "/",
		Expires:  expiresAt,
	})
}

/* ==========================
   LOGOUT
========================== */

// Logout idempotent: token (jika valid) di-blacklist sampai exp, cookie dihapus.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helpers.GetRawAccessToken(c)

	if exp, ok := tokenExpiry(accessToken); ok && exp.After(nowUTC()) {
		if err := helpersAuth.AddToBlacklist(c.UserContext(), db, accessToken, configs.JWTSecret, exp); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token valid; lanjut clear cookie")
	}

	c.Cookie(&fiber.Cookie{
		Name:     helpers.AccessTokenCookie,
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		Path:     "/",
		Expires:  nowUTC().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helpers.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   CHANGE PASSWORD (user sendiri)
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	actor, err := helpersAuth.ActorFromCtx(c)
	if err != nil {
		return err
	}

	var input struct {
		CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
		NewPassword1    string `json:"new_password1" form:"new_password1" validate:"required,min=8,max=72"`
		NewPassword2    string `json:"new_password2" form:"new_password2" validate:"required,eqfield=NewPassword1"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if errs := helpers.ValidateStruct(input); errs != nil {
		return helpers.JsonValidationError(c, errs)
	}

	user, err := userRepo.FindUserByID(c.UserContext(), db, actor.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helpers.JsonValidationError(c, map[string][]string{
			"current_password": {"Your current password was entered incorrectly."},
		})
	}

	newHash, err := authHelper.HashPassword(input.NewPassword1)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := userRepo.UpdateUserPassword(c.UserContext(), db, user.ID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helpers.JsonUpdated(c, "Password changed successfully", nil)
}
