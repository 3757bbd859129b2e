package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/services/model"
)

// ListServices urut default; active nil = semua.
func ListServices(ctx context.Context, db *gorm.DB, active *bool) ([]model.ServiceModel, error) {
	q := db.WithContext(ctx).Model(&model.ServiceModel{})
	if active != nil {
		q = q.Where("service_is_active = ?", *active)
	}
	var rows []model.ServiceModel
	err := q.Order(model.DefaultOrder).Find(&rows).Error
	return rows, err
}

func ListActiveServices(ctx context.Context, db *gorm.DB) ([]model.ServiceModel, error) {
	active := true
	return ListServices(ctx, db, &active)
}

func FindServiceByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ServiceModel, error) {
	var m model.ServiceModel
	if err := db.WithContext(ctx).Where("service_id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func CountServices(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.ServiceModel{}).Count(&n).Error
	return n, err
}

// RecentServices untuk dashboard: urutan default, sama seperti list admin.
func RecentServices(ctx context.Context, db *gorm.DB, limit int) ([]model.ServiceModel, error) {
	var rows []model.ServiceModel
	err := db.WithContext(ctx).
		Order(model.DefaultOrder).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
