package service

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"actech_backend/internals/features/home/activities/model"
	helperAuth "actech_backend/internals/helpers/auth"
)

// Entry satu catatan aktivitas; Changes opsional (mis. field yang diubah).
type Entry struct {
	Action     string
	Entity     string
	EntityID   string
	EntityName string
	Changes    map[string]any
}

// Record menulis log aktivitas secara best-effort; kegagalan hanya di-log.
func Record(ctx context.Context, db *gorm.DB, actor *helperAuth.Actor, e Entry) {
	row := model.ActivityLogModel{
		Action:     e.Action,
		Entity:     e.Entity,
		EntityID:   e.EntityID,
		EntityName: truncate(e.EntityName, 200),
	}
	if actor != nil {
		id := actor.ID
		row.ActorID = &id
		row.ActorName = actor.UserName
	}
	if len(e.Changes) > 0 {
		row.Changes = datatypes.JSONMap(e.Changes)
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[WARN] activity log %s %s: %v", e.Action, e.Entity, err)
	}
}

// RecordFromCtx versi singkat untuk controller.
func RecordFromCtx(c *fiber.Ctx, db *gorm.DB, e Entry) {
	actor, _ := helperAuth.ActorFromCtx(c)
	Record(c.UserContext(), db, actor, e)
}

// Recent mengambil aktivitas terbaru.
func Recent(ctx context.Context, db *gorm.DB, limit int) ([]model.ActivityLogModel, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []model.ActivityLogModel
	err := db.WithContext(ctx).
		Order("activity_created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
