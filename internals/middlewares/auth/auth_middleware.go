package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/configs"
	helper "actech_backend/internals/helpers"
	helperAuth "actech_backend/internals/helpers/auth"
)

// AuthMiddleware memverifikasi access token lalu memuat ulang user dari DB,
// sehingga perubahan role / is_active langsung berlaku.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		// 2) Parse & verifikasi signature
		claims, err := parseClaims(tokenString, secretKey)
		if err != nil {
			log.Println("[WARN] token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validasi exp (toleransi 30 detik)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) Cek blacklist (logout)
		ctx := c.UserContext()
		blacklisted, err := helperAuth.IsBlacklisted(ctx, db, tokenString, secretKey)
		if err != nil {
			log.Println("[ERROR] blacklist lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
		}

		// 5) Ambil user_id & muat actor
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		actor, err := loadActor(ctx, db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			log.Println("[ERROR] loadActor:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !actor.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "This account has been deactivated")
		}

		helperAuth.SetActor(c, actor)
		helper.SetRawAccessToken(c, tokenString)
		return c.Next()
	}
}
