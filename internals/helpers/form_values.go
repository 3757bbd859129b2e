package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// FormBool membaca flag dari form/query ("1", "true", "on", "yes").
// ok=false bila field tidak dikirim sama sekali.
func FormBool(c *fiber.Ctx, key string) (val bool, ok bool) {
	raw, present := formValue(c, key)
	if !present {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes", "y":
		return true, true
	case "off", "no", "n", "":
		return false, true
	}
	b, err := cast.ToBoolE(strings.TrimSpace(raw))
	if err != nil {
		return false, false
	}
	return b, true
}

// FormInt membaca angka dari form/query; ok=false bila tidak ada atau bukan angka.
func FormInt(c *fiber.Ctx, key string) (val int, ok bool) {
	raw, present := formValue(c, key)
	if !present {
		return 0, false
	}
	n, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// QueryBoolPtr untuk filter opsional seperti ?active=true.
func QueryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return nil
	}
	return &b
}

func formValue(c *fiber.Ctx, key string) (string, bool) {
	if IsForm(c) {
		if form, err := c.MultipartForm(); err == nil && form != nil {
			if vs, ok := form.Value[key]; ok && len(vs) > 0 {
				return vs[len(vs)-1], true
			}
		}
		if c.Request().PostArgs().Has(key) {
			return string(c.Request().PostArgs().Peek(key)), true
		}
	}
	if c.Context().QueryArgs().Has(key) {
		return c.Query(key), true
	}
	return "", false
}

// IsForm true untuk multipart/form-data maupun x-www-form-urlencoded.
func IsForm(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, fiber.MIMEMultipartForm) || strings.HasPrefix(ct, fiber.MIMEApplicationForm)
}
