package helper

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "actech_backend/internals/helpers"
)

// ImageField menggambarkan satu slot gambar pada form entitas.
type ImageField struct {
	Field   string // nama field multipart, mis. "service_image"
	Dir     string // folder di storage, mis. "services"
	Variant ImageVariant
}

// ApplyImageField memproses upload atau "<field>_clear" untuk satu slot.
//   - ada file   → upload, newURL = URL baru, stale = URL lama
//   - clear=true → newURL = "", stale = URL lama
//   - selain itu → tidak berubah
//
// stale dihapus pemanggil setelah commit DB berhasil (DeleteStale).
func ApplyImageField(c *fiber.Ctx, blob BlobService, f ImageField, current string) (newURL, stale string, err error) {
	if fh := GetImageFile(c, f.Field); fh != nil {
		if blob == nil {
			return current, "", fiber.NewError(fiber.StatusServiceUnavailable, "File storage is not configured")
		}
		url, err := blob.UploadImage(c.UserContext(), f.Dir, f.Variant, fh)
		if err != nil {
			return current, "", err
		}
		return url, current, nil
	}
	if clear, ok := helper.FormBool(c, f.Field+"_clear"); ok && clear {
		return "", current, nil
	}
	return current, "", nil
}

// DeleteStale menghapus object lama secara best-effort (error hanya di-log).
func DeleteStale(ctx context.Context, blob BlobService, urls ...string) {
	if blob == nil {
		return
	}
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := blob.DeleteByPublicURL(ctx, u); err != nil {
			log.Printf("[WARN] delete stale object %s: %v", u, err)
		}
	}
}
