// Package testkit berisi helper bersama untuk test controller & route:
// DB SQLite sementara, user dengan role tertentu dan request JSON.
package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "actech_backend/internals/databases"
	authHelper "actech_backend/internals/features/users/auth/helper"
	userModel "actech_backend/internals/features/users/user/model"
	helper "actech_backend/internals/helpers"
	helperAuth "actech_backend/internals/helpers/auth"
)

const Password = "s3cret-pass-123"

// NewDB membuka SQLite di t.TempDir() dan menjalankan AutoMigrate.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateUser menyimpan user aktif dengan password Password.
func CreateUser(t *testing.T, db *gorm.DB, userName, role string, isStaff bool) userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword(Password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := userModel.UserModel{
		UserName: userName,
		Email:    userName + "@example.com",
		Password: hash,
		Role:     role,
		IsStaff:  isStaff,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", userName, err)
	}
	return u
}

// AsUser memasang actor tanpa JWT, pengganti AuthMiddleware di test controller.
func AsUser(u userModel.UserModel) fiber.Handler {
	return func(c *fiber.Ctx) error {
		helperAuth.SetActor(c, &helperAuth.Actor{
			ID:       u.ID,
			UserName: u.UserName,
			Role:     u.Role,
			IsStaff:  u.IsStaff,
			IsActive: u.IsActive,
		})
		return c.Next()
	}
}

// NewApp fiber app dengan error handler yang sama seperti main.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
}

// Response hasil request test yang sudah di-decode.
type Response struct {
	Status int
	Header http.Header
	Body   map[string]any
	Raw    []byte
}

// Data mengembalikan field "data" sebagai object.
func (r Response) Data() map[string]any {
	m, _ := r.Body["data"].(map[string]any)
	return m
}

// List mengembalikan field "data" sebagai array object.
func (r Response) List() []map[string]any {
	raw, _ := r.Body["data"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// FieldErrors isi "errors" pada response 422.
func (r Response) FieldErrors() map[string]any {
	m, _ := r.Body["errors"].(map[string]any)
	return m
}

// Do mengirim request; body nil berarti tanpa body, selain itu di-encode JSON.
func Do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) Response {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return send(t, app, req, headers)
}

// DoMultipart mengirim multipart/form-data: fields biasa + files (nama field → nama file + isi).
func DoMultipart(t *testing.T, app *fiber.App, method, path string, fields map[string]string, files map[string]File, headers ...string) Response {
	t.Helper()
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for field, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			t.Fatalf("create file %s: %v", field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write file %s: %v", field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return send(t, app, req, headers)
}

// File satu upload untuk DoMultipart.
type File struct {
	Name    string
	Content []byte
}

func send(t *testing.T, app *fiber.App, req *http.Request, headers []string) Response {
	t.Helper()
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	out := Response{Status: resp.StatusCode, Header: resp.Header, Raw: raw}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out.Body)
	}
	return out
}
