package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"actech_backend/internals/configs"
)

var errTooLarge = errors.New("file too large")

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Implementasi: OSSBlobService (Aliyun OSS) atau LocalBlobService (disk, dev).
*/
type BlobService interface {
	// UploadImage memproses gambar sesuai varian lalu menyimpannya di dir.
	UploadImage(ctx context.Context, dir string, variant ImageVariant, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// NewBlobServiceFromEnv memilih OSS bila ALI_OSS_* lengkap, selain itu disk lokal.
func NewBlobServiceFromEnv() (BlobService, error) {
	if OSSConfigured() {
		svc, err := NewOSSServiceFromEnv(getEnv("ALI_OSS_PREFIX"))
		if err != nil {
			return nil, err
		}
		log.Println("[INFO] Blob storage: Aliyun OSS")
		return &OSSBlobService{svc: svc}, nil
	}
	if strings.TrimSpace(configs.MediaRoot) == "" {
		return nil, fmt.Errorf("no blob storage configured")
	}
	log.Printf("[INFO] Blob storage: local disk %s served at %s", configs.MediaRoot, configs.MediaBaseURL)
	return NewLocalBlobService(configs.MediaRoot, configs.MediaBaseURL), nil
}

// mapImageError menerjemahkan error proses gambar ke status HTTP.
func mapImageError(err error) error {
	switch {
	case errors.Is(err, errTooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, fmt.Sprintf("Image exceeds %d MB", maxUploadSize()/(1024*1024)))
	case errors.Is(err, errUnsupportedFormat):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
	default:
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Image could not be processed")
	}
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS (OSSService)
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, variant ImageVariant, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	data, ct, ext, err := ProcessImage(fh, variant)
	if err != nil {
		return "", mapImageError(err)
	}
	key, err := b.svc.PutBytes(ctx, dir, baseName(fh.Filename)+ext, data, ct)
	if err != nil {
		log.Printf("[OSS] put failed: %v", err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload to storage")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

// --------------------------------------------------
// Implementasi disk lokal
// --------------------------------------------------

type LocalBlobService struct {
	Root    string // direktori di disk
	BaseURL string // prefix URL publik, mis. "/media"
}

func NewLocalBlobService(root, baseURL string) *LocalBlobService {
	return &LocalBlobService{
		Root:    root,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (l *LocalBlobService) UploadImage(ctx context.Context, dir string, variant ImageVariant, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	data, _, ext, err := ProcessImage(fh, variant)
	if err != nil {
		return "", mapImageError(err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := buildObjectKey("", dir, baseName(fh.Filename)+ext)
	full := filepath.Join(l.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("mkdir media: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write media: %w", err)
	}
	return l.BaseURL + "/" + key, nil
}

func (l *LocalBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	if !strings.HasPrefix(publicURL, l.BaseURL+"/") {
		return fmt.Errorf("url is not local media: %s", publicURL)
	}
	key := path.Clean("/" + strings.TrimPrefix(publicURL, l.BaseURL+"/"))
	full := filepath.Join(l.Root, filepath.FromSlash(key))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

// --------------------------------------------------
// Helper kecil untuk controller
// --------------------------------------------------

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm)
}

// GetImageFile mencari file dari beberapa kemungkinan field form.
// Jika bukan multipart atau tidak ada file, kembalikan nil.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) *multipart.FileHeader {
	if !IsMultipart(c) {
		return nil
	}
	for _, fn := range fieldNames {
		if fh, err := c.FormFile(fn); err == nil && fh != nil && fh.Size > 0 {
			return fh
		}
	}
	return nil
}

// --------------------------------------------------
// Mock untuk unit test
// --------------------------------------------------

type MockBlobService struct {
	UploadImageFn       func(ctx context.Context, dir string, variant ImageVariant, fh *multipart.FileHeader) (string, error)
	DeleteByPublicURLFn func(ctx context.Context, publicURL string) error
}

func (m *MockBlobService) UploadImage(ctx context.Context, dir string, variant ImageVariant, fh *multipart.FileHeader) (string, error) {
	if m.UploadImageFn == nil {
		return "", errors.New("not implemented")
	}
	return m.UploadImageFn(ctx, dir, variant, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
