package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/projects/model"
)

// jumlah proyek di halaman publik
const HomeProjectLimit = 3

func ListProjects(ctx context.Context, db *gorm.DB, active *bool) ([]model.ProjectModel, error) {
	q := db.WithContext(ctx).Model(&model.ProjectModel{})
	if active != nil {
		q = q.Where("project_is_active = ?", *active)
	}
	var rows []model.ProjectModel
	err := q.Order(model.DefaultOrder).Find(&rows).Error
	return rows, err
}

// ListTopActiveProjects: proyek aktif teratas menurut urutan default.
func ListTopActiveProjects(ctx context.Context, db *gorm.DB, limit int) ([]model.ProjectModel, error) {
	var rows []model.ProjectModel
	err := db.WithContext(ctx).
		Where("project_is_active = ?", true).
		Order(model.DefaultOrder).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func FindProjectByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ProjectModel, error) {
	var m model.ProjectModel
	if err := db.WithContext(ctx).Where("project_id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func CountProjects(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.ProjectModel{}).Count(&n).Error
	return n, err
}

// RecentProjects untuk dashboard: semua proyek (aktif maupun tidak) menurut urutan default.
func RecentProjects(ctx context.Context, db *gorm.DB, limit int) ([]model.ProjectModel, error) {
	var rows []model.ProjectModel
	err := db.WithContext(ctx).
		Order(model.DefaultOrder).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
