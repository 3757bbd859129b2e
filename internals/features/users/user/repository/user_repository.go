package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"actech_backend/internals/features/users/user/model"
)

func ListUsers(ctx context.Context, db *gorm.DB) ([]model.UserModel, error) {
	var rows []model.UserModel
	err := db.WithContext(ctx).Order("date_joined DESC").Find(&rows).Error
	return rows, err
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByIdentifier: identifier boleh user_name atau email.
// Email disimpan lowercase, jadi bandingkan versi lowercase-nya.
func FindUserByIdentifier(ctx context.Context, db *gorm.DB, identifier string) (*model.UserModel, error) {
	var u model.UserModel
	if err := db.WithContext(ctx).
		Where("user_name = ? OR email = ?", identifier, strings.ToLower(identifier)).
		Take(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, id uuid.UUID, hash string) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

func TouchLastLogin(ctx context.Context, db *gorm.DB, id uuid.UUID, at time.Time) error {
	return db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.UserModel{}).Count(&n).Error
	return n, err
}
