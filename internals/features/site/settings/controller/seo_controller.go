package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"actech_backend/internals/features/site/settings/dto"
	"actech_backend/internals/features/site/settings/model"
	helper "actech_backend/internals/helpers"
	helperAuth "actech_backend/internals/helpers/auth"
	helperOSS "actech_backend/internals/helpers/oss"
	"actech_backend/internals/helpers/slot"
)

// GET /panel-admin/seo
func (ctrl *SettingsController) GetSEO(c *fiber.Ctx) error {
	m, err := slot.Load[model.SEOConfigModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load seo config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SEO configuration")
	}
	return helper.JsonOK(c, "ok", dto.ToSEOConfigDTO(*m))
}

// POST|PUT|PATCH /panel-admin/seo
// seo_updated_by selalu diisi actor yang sedang login.
func (ctrl *SettingsController) UpdateSEO(c *fiber.Ctx) error {
	m, err := slot.Load[model.SEOConfigModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load seo config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load SEO configuration")
	}
	form := dto.SEOConfigFormFromModel(*m)
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	before := []string{m.SEOOGImageURL, m.SEOFaviconURL, m.SEOAppleTouchIconURL}
	stale, err := ctrl.applyImages(c,
		imageSlot{seoOGImage, &m.SEOOGImageURL},
		imageSlot{seoFavicon, &m.SEOFaviconURL},
		imageSlot{seoAppleTouchIcon, &m.SEOAppleTouchIconURL},
	)
	if err != nil {
		return err
	}

	form.ApplyTo(m)
	m.SEOUpdatedBy = helperAuth.ActorIDPtr(c)
	if err := slot.Save(c.UserContext(), ctrl.DB, m); err != nil {
		for i, now := range []string{m.SEOOGImageURL, m.SEOFaviconURL, m.SEOAppleTouchIconURL} {
			if now != before[i] {
				helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, now)
			}
		}
		log.Printf("[ERROR] save seo config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save SEO configuration")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale...)
	ctrl.logUpdate(c, "seo_config", m.SEOMetaTitle)
	return helper.JsonUpdated(c, "SEO configuration updated", dto.ToSEOConfigDTO(*m))
}
