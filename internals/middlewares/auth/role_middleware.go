package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helperAuth "actech_backend/internals/helpers/auth"
)

// RequireCapability menolak request bila predicate actor bernilai false.
// Dipasang setelah AuthMiddleware.
func RequireCapability(check func(*helperAuth.Actor) bool, forbiddenMessage string) fiber.Handler {
	if forbiddenMessage == "" {
		forbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		actor, err := helperAuth.ActorFromCtx(c)
		if err != nil {
			return err
		}
		if !check(actor) {
			log.Printf("[INFO] forbidden %s %s for %s (role=%s)", c.Method(), c.Path(), actor.UserName, actor.Role)
			return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
		}
		return c.Next()
	}
}

// RequireElevated: staff atau admin (manajemen akun).
func RequireElevated(forbiddenMessage string) fiber.Handler {
	return RequireCapability(helperAuth.IsElevated, forbiddenMessage)
}

// RequireContentEditor: admin/editor/staff (tulis konten & pengaturan).
func RequireContentEditor(forbiddenMessage string) fiber.Handler {
	return RequireCapability(helperAuth.CanEditContent, forbiddenMessage)
}
