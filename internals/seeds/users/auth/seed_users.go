package user

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"actech_backend/internals/constants"
	authHelper "actech_backend/internals/features/users/auth/helper"
	"actech_backend/internals/features/users/user/model"
	userRepo "actech_backend/internals/features/users/user/repository"
)

type UserSeed struct {
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsStaff   bool   `json:"is_staff"`
}

// SeedAdminFromEnv membuat admin pertama bila tabel users masih kosong
// dan ADMIN_USERNAME / ADMIN_PASSWORD diset.
func SeedAdminFromEnv(ctx context.Context, db *gorm.DB) error {
	userName := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	password := os.Getenv("ADMIN_PASSWORD")
	if userName == "" || password == "" {
		return nil
	}

	n, err := userRepo.CountUsers(ctx, db)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	if email == "" {
		email = userName + "@localhost"
	}
	return createUser(ctx, db, UserSeed{
		UserName: userName,
		Email:    email,
		Password: password,
		Role:     constants.RoleAdmin,
		IsStaff:  true,
	})
}

func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.WithContext(ctx).Where("email = ? OR user_name = ?", data.Email, data.UserName).Take(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", data.UserName)
			continue
		}
		if err := createUser(ctx, db, data); err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.UserName, err)
		}
	}
}

func createUser(ctx context.Context, db *gorm.DB, data UserSeed) error {
	// 🔐 Hash password sebelum disimpan
	hashedPassword, err := authHelper.HashPassword(data.Password)
	if err != nil {
		return err
	}
	role := strings.ToLower(strings.TrimSpace(data.Role))
	if !constants.IsValidRole(role) {
		role = constants.DefaultRole
	}

	newUser := model.UserModel{
		UserName:  data.UserName,
		Email:     strings.ToLower(data.Email),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Password:  hashedPassword,
		Role:      role,
		IsStaff:   data.IsStaff,
		IsActive:  true,
	}
	if err := db.WithContext(ctx).Create(&newUser).Error; err != nil {
		return err
	}
	log.Printf("✅ Berhasil insert user '%s' (%s)", newUser.UserName, newUser.Role)
	return nil
}
