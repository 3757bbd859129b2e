package database

import (
	"log"

	"gorm.io/gorm"

	serviceModel "actech_backend/internals/features/content/services/model"
	partnerModel "actech_backend/internals/features/content/partners/model"
	projectModel "actech_backend/internals/features/content/projects/model"
	activityModel "actech_backend/internals/features/home/activities/model"
	settingsModel "actech_backend/internals/features/site/settings/model"
	authModel "actech_backend/internals/features/users/auth/model"
	userModel "actech_backend/internals/features/users/user/model"
)

// Models berurutan: users dulu karena direferensikan tabel lain.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&settingsModel.SiteConfigModel{},
		&settingsModel.HeroSectionModel{},
		&settingsModel.ShowroomModel{},
		&settingsModel.ContactInfoModel{},
		&settingsModel.SEOConfigModel{},
		&serviceModel.ServiceModel{},
		&partnerModel.PartnerModel{},
		&projectModel.ProjectModel{},
		&activityModel.ActivityLogModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] Running AutoMigrate...")
	return db.AutoMigrate(Models()...)
}
