package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"actech_backend/internals/configs"
	helperAuth "actech_backend/internals/helpers/auth"
)

// StartBlacklistCleanupScheduler menjalankan purge token_blacklist sesuai
// BLACKLIST_CLEANUP_CRON (default "@every 1h"). Panggil Stop() saat shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	spec := configs.BlacklistCleanupCron
	if spec == "" {
		spec = "@every 1h"
	}
	if _, err := c.AddFunc(spec, func() { RunBlacklistCleanup(db) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[CLEANUP] token_blacklist cleanup scheduled (%s)", spec)
	return c, nil
}

// RunBlacklistCleanup satu putaran pembersihan.
func RunBlacklistCleanup(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := helperAuth.PurgeExpired(ctx, db)
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
	}
}
