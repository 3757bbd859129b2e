package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"actech_backend/internals/features/content/partners/model"
)

func ListPartners(ctx context.Context, db *gorm.DB, active *bool) ([]model.PartnerModel, error) {
	q := db.WithContext(ctx).Model(&model.PartnerModel{})
	if active != nil {
		q = q.Where("partner_is_active = ?", *active)
	}
	var rows []model.PartnerModel
	err := q.Order(model.DefaultOrder).Find(&rows).Error
	return rows, err
}

func ListActivePartners(ctx context.Context, db *gorm.DB) ([]model.PartnerModel, error) {
	active := true
	return ListPartners(ctx, db, &active)
}

func FindPartnerByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.PartnerModel, error) {
	var m model.PartnerModel
	if err := db.WithContext(ctx).Where("partner_id = ?", id).Take(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func CountPartners(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.PartnerModel{}).Count(&n).Error
	return n, err
}
