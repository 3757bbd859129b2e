package seeds

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	settingsService "actech_backend/internals/features/site/settings/service"
	users "actech_backend/internals/seeds/users/auth"
)

func RunAllSeeds(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	//* User
	if err := users.SeedAdminFromEnv(ctx, db); err != nil {
		log.Printf("❌ Seed admin gagal: %v", err)
	}
	if path := os.Getenv("SEED_USERS_FILE"); path != "" {
		users.SeedUsersFromJSON(ctx, db, path)
	}

	//* Singleton situs: dibuat sekarang supaya request publik pertama tidak menulis
	if _, err := settingsService.LoadAll(ctx, db); err != nil {
		log.Printf("❌ Warm-up singleton gagal: %v", err)
	}
}
