package testkit

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	helperOSS "actech_backend/internals/helpers/oss"
)

// BlobBaseURL prefix URL publik yang dihasilkan BlobRecorder.
const BlobBaseURL = "https://cdn.test/"

// BlobRecorder mencatat upload & delete lewat oss.MockBlobService.
// FailVariant: upload untuk varian dengan nama ini selalu gagal (502).
type BlobRecorder struct {
	FailVariant string
	Uploaded    []string
	Deleted     []string
}

func (r *BlobRecorder) Service() *helperOSS.MockBlobService {
	return &helperOSS.MockBlobService{
		UploadImageFn: func(_ context.Context, dir string, variant helperOSS.ImageVariant, fh *multipart.FileHeader) (string, error) {
			if r.FailVariant != "" && variant.Name == r.FailVariant {
				return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload to storage")
			}
			url := BlobBaseURL + dir + "/" + fh.Filename
			r.Uploaded = append(r.Uploaded, url)
			return url, nil
		},
		DeleteByPublicURLFn: func(_ context.Context, publicURL string) error {
			r.Deleted = append(r.Deleted, publicURL)
			return nil
		},
	}
}
