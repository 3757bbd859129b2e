package helper

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngFileHeader(t *testing.T, name string, w, h int) *multipart.FileHeader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write(raw.Bytes())
	_ = mw.Close()

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(10 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestProcessImageFaviconIsSquarePNG(t *testing.T) {
	fh := pngFileHeader(t, "logo.png", 300, 120)

	data, ct, ext, err := ProcessImage(fh, VariantFavicon)
	if err != nil {
		t.Fatalf("ProcessImage: %v", err)
	}
	if ct != "image/png" || ext != ".png" {
		t.Errorf("content type = %s %s, want image/png .png", ct, ext)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func TestDecodeImageRejectsUnknownFormat(t *testing.T) {
	if _, err := decodeImage([]byte("plain text, not an image"), "notes.txt"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDownscaleKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	got := downscaleIfNeeded(src, 100, 100).Bounds()
	if got.Dx() != 100 || got.Dy() != 50 {
		t.Errorf("size = %dx%d, want 100x50", got.Dx(), got.Dy())
	}
	same := downscaleIfNeeded(src, 0, 0)
	if same != image.Image(src) {
		t.Error("expected source image when no limits are set")
	}
}

func TestLocalBlobServiceRoundTrip(t *testing.T) {
	root := t.TempDir()
	svc := NewLocalBlobService(root, "/media/")
	fh := pngFileHeader(t, "Ícono Sitio.png", 200, 200)

	url, err := svc.UploadImage(context.Background(), "seo", VariantFavicon, fh)
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if !strings.HasPrefix(url, "/media/seo/icono-sitio_") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url %q", url)
	}
	full := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(url, "/media/")))
	if _, err := os.Stat(full); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if err := svc.DeleteByPublicURL(context.Background(), url); err != nil {
		t.Fatalf("DeleteByPublicURL: %v", err)
	}
	if _, err := os.Stat(full); !os.IsNotExist(err) {
		t.Errorf("file still exists after delete (err=%v)", err)
	}
	// hapus kedua kali tetap sukses
	if err := svc.DeleteByPublicURL(context.Background(), url); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestLocalBlobServiceRejectsForeignURL(t *testing.T) {
	svc := NewLocalBlobService(t.TempDir(), "/media")
	if err := svc.DeleteByPublicURL(context.Background(), "https://cdn.example.com/x.webp"); err == nil {
		t.Error("expected error for url outside media base")
	}
}

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("actech", "/services/", "Red Óptica.webp")
	if !strings.HasPrefix(key, "actech/services/red-optica_") || !strings.HasSuffix(key, ".webp") {
		t.Errorf("unexpected key %q", key)
	}
}
