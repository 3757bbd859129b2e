package helper

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"actech_backend/internals/constants"
)

var errUnsupportedFormat = errors.New("unsupported image format")

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

// batas ukuran upload (IMAGE_MAX_UPLOAD_MB, default 5MB)
func maxUploadSize() int64 {
	return int64(envInt("IMAGE_MAX_UPLOAD_MB", 5)) * 1024 * 1024
}

/* =======================================================================
   Varian gambar per slot upload
======================================================================= */

type ImageVariant struct {
	Name string
	// MaxW/MaxH: downscale keep-aspect (0 = tanpa batas)
	MaxW, MaxH int
	// FillW/FillH: crop tengah ke ukuran pasti (og image, favicon)
	FillW, FillH int
	// PNG: simpan sebagai PNG (ikon), selain itu WebP
	PNG bool
}

var (
	VariantContent   = ImageVariant{Name: "content"}
	VariantLogo      = ImageVariant{Name: "logo", MaxW: 800, MaxH: 400}
	VariantOGImage   = ImageVariant{Name: "og", FillW: 1200, FillH: 630}
	VariantFavicon   = ImageVariant{Name: "favicon", FillW: 64, FillH: 64, PNG: true}
	VariantTouchIcon = ImageVariant{Name: "touch-icon", FillW: 180, FillH: 180, PNG: true}
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW        int     // batas lebar (resize keep-aspect)
	MaxH        int     // batas tinggi
	TargetKB    int     // target ukuran; 0 = non-aktif (pakai Quality saja)
	Quality     float32 // default quality
	MinQ        float32 // min quality utk binary search
	MaxQ        float32 // max quality utk binary search
	ToleranceKB int     // toleransi di atas target
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:        envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:        envInt("IMAGE_WEBP_MAX_H", 1600),
		TargetKB:    envInt("IMAGE_WEBP_TARGET_KB", 0),
		Quality:     envFloat("IMAGE_WEBP_QUALITY", 80),
		MinQ:        envFloat("IMAGE_WEBP_MIN_Q", 45),
		MaxQ:        envFloat("IMAGE_WEBP_MAX_Q", 85),
		ToleranceKB: envInt("IMAGE_WEBP_TOLERANCE_KB", 8),
	}
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	}
	// fallback by extension
	if constants.DetectFileTypeFromExt(filename) != constants.FileTypeImage {
		return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, ct)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(bytes.NewReader(all))
	case ".png":
		return png.Decode(bytes.NewReader(all))
	case ".webp":
		return webp.Decode(bytes.NewReader(all))
	}
	return nil, fmt.Errorf("%w: %s", errUnsupportedFormat, ct)
}

/* =======================================================================
   Resize helper (keep aspect). Pakai CatmullRom.
======================================================================= */

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	scale := 1.0
	if maxW > 0 {
		scale = math.Min(scale, float64(maxW)/float64(w))
	}
	if maxH > 0 {
		scale = math.Min(scale, float64(maxH)/float64(h))
	}
	nw := int(math.Max(1, math.Round(float64(w)*scale)))
	nh := int(math.Max(1, math.Round(float64(h)*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

/* =======================================================================
   Encode WebP
   - TargetKB > 0 → binary search quality hingga <= target+tol
   - TargetKB = 0 → encode sekali dengan Quality
======================================================================= */

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(q)
	}

	target := (opt.TargetKB + opt.ToleranceKB) * 1024
	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 || high < low {
		high = 85
	}

	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q // muat → coba kualitas lebih tinggi
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(low)
	}
	return best, nil
}

/* =======================================================================
   API utama: ProcessImage (decode → crop/resize → encode)
======================================================================= */

// ProcessImage mengembalikan bytes siap upload beserta content-type & ekstensi.
func ProcessImage(fh *multipart.FileHeader, v ImageVariant) (data []byte, contentType, ext string, err error) {
	if fh == nil {
		return nil, "", "", fmt.Errorf("nil file header")
	}
	if fh.Size > maxUploadSize() {
		return nil, "", "", errTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return nil, "", "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(io.LimitReader(src, maxUploadSize()+1))
	if err != nil {
		return nil, "", "", err
	}
	if int64(len(all)) > maxUploadSize() {
		return nil, "", "", errTooLarge
	}
	return processBytes(all, fh.Filename, v)
}

func processBytes(all []byte, filename string, v ImageVariant) ([]byte, string, string, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, "", "", err
	}

	opts := defaultWebPOptionsFromEnv()
	switch {
	case v.FillW > 0 && v.FillH > 0:
		img = imaging.Fill(img, v.FillW, v.FillH, imaging.Center, imaging.Lanczos)
	case v.MaxW > 0 || v.MaxH > 0:
		img = downscaleIfNeeded(img, v.MaxW, v.MaxH)
	default:
		img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	}

	if v.PNG {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, img); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), "image/png", ".png", nil
	}
	out, err := encodeToWebP(img, opts)
	if err != nil {
		return nil, "", "", err
	}
	return out, "image/webp", ".webp", nil
}
