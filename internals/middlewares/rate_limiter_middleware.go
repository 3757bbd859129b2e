package middlewares

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"actech_backend/internals/configs"
	helper "actech_backend/internals/helpers"
)

var (
	limiterStorageOnce sync.Once
	limiterStorage     fiber.Storage
)

// sharedLimiterStorage: Redis bila REDIS_URL diset (counter dibagi antar instance),
// selain itu nil → memory bawaan limiter.
func sharedLimiterStorage() fiber.Storage {
	limiterStorageOnce.Do(func() {
		if configs.RedisURL == "" {
			return
		}
		s, err := NewRedisStorage(configs.RedisURL, "ratelimit:")
		if err != nil {
			log.Printf("[WARN] redis limiter storage disabled: %v", err)
			return
		}
		log.Println("[INFO] Rate limiter uses Redis storage")
		limiterStorage = s
	})
	return limiterStorage
}

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Storage:    sharedLimiterStorage(),
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(120, time.Minute, "Too many requests. Please try again later.")
}

// Rate limiter untuk login route (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Too many login attempts. Please wait a moment.")
}
