package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityModel "actech_backend/internals/features/home/activities/model"
	activity "actech_backend/internals/features/home/activities/service"
	"actech_backend/internals/features/site/settings/dto"
	"actech_backend/internals/features/site/settings/model"
	helper "actech_backend/internals/helpers"
	helperOSS "actech_backend/internals/helpers/oss"
	"actech_backend/internals/helpers/slot"
)

/*
SettingsController menangani kelima singleton situs:
GET = load-or-create, POST/PUT/PATCH = merge + validasi + simpan,
DELETE = 405 (singleton tidak bisa dihapus).
*/
type SettingsController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewSettingsController(db *gorm.DB, blob helperOSS.BlobService) *SettingsController {
	return &SettingsController{DB: db, Blob: blob}
}

var (
	heroImage = helperOSS.ImageField{Field: "hero_image", Dir: "hero", Variant: helperOSS.VariantContent}

	showroomImage = helperOSS.ImageField{Field: "showroom_image", Dir: "showroom", Variant: helperOSS.VariantContent}

	seoOGImage        = helperOSS.ImageField{Field: "seo_og_image", Dir: "seo", Variant: helperOSS.VariantOGImage}
	seoFavicon        = helperOSS.ImageField{Field: "seo_favicon", Dir: "seo", Variant: helperOSS.VariantFavicon}
	seoAppleTouchIcon = helperOSS.ImageField{Field: "seo_apple_touch_icon", Dir: "seo", Variant: helperOSS.VariantTouchIcon}
)

// bindForm: body → form (menimpa nilai tersimpan) → normalize → validate.
// ok=false berarti response error sudah ditulis.
func bindForm(c *fiber.Ctx, form dto.Form) (bool, error) {
	if err := c.BodyParser(form); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	form.Normalize()
	if errs := form.Validate(); errs != nil {
		return false, helper.JsonValidationError(c, errs)
	}
	return true, nil
}

type imageSlot struct {
	field helperOSS.ImageField
	url   *string
}

// applyImages memproses semua slot gambar. Bila satu gagal, upload yang
// sudah masuk dibersihkan dan nilai lama dikembalikan.
func (ctrl *SettingsController) applyImages(c *fiber.Ctx, slots ...imageSlot) (stale []string, err error) {
	var uploaded []string
	olds := make([]string, len(slots))
	for i, s := range slots {
		olds[i] = *s.url
		newURL, old, err := helperOSS.ApplyImageField(c, ctrl.Blob, s.field, *s.url)
		if err != nil {
			for j := 0; j < i; j++ {
				*slots[j].url = olds[j]
			}
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, uploaded...)
			return nil, err
		}
		if newURL != *s.url && newURL != "" {
			uploaded = append(uploaded, newURL)
		}
		*s.url = newURL
		if old != "" {
			stale = append(stale, old)
		}
	}
	return stale, nil
}

func (ctrl *SettingsController) logUpdate(c *fiber.Ctx, entity, name string) {
	activity.RecordFromCtx(c, ctrl.DB, activity.Entry{
		Action:     activityModel.ActionUpdate,
		Entity:     entity,
		EntityID:   slot.Key,
		EntityName: name,
	})
}

// DeleteSingleton: DELETE pada singleton selalu 405, data tidak berubah.
func DeleteSingleton[T any, PT interface {
	*T
	slot.Slotted
}](db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := slot.Delete[T, PT](c.UserContext(), db); err != nil {
			log.Printf("[ERROR] singleton delete: %v", err)
		}
		return helper.JsonErrorCode(c, fiber.StatusMethodNotAllowed, helper.CodeSingletonPermanent,
			"This configuration is permanent and cannot be deleted")
	}
}

/* =========================================================
   SiteConfig
========================================================= */

func (ctrl *SettingsController) GetSiteConfig(c *fiber.Ctx) error {
	m, err := slot.Load[model.SiteConfigModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load site config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load site configuration")
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctrl *SettingsController) UpdateSiteConfig(c *fiber.Ctx) error {
	m, err := slot.Load[model.SiteConfigModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load site config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load site configuration")
	}
	form := dto.SiteConfigFormFromModel(*m)
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	form.ApplyTo(m)
	if err := slot.Save(c.UserContext(), ctrl.DB, m); err != nil {
		log.Printf("[ERROR] save site config: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save site configuration")
	}
	ctrl.logUpdate(c, "site_config", m.SiteConfigTitle)
	return helper.JsonUpdated(c, "Site configuration updated", m)
}

/* =========================================================
   HeroSection
========================================================= */

func (ctrl *SettingsController) GetHero(c *fiber.Ctx) error {
	m, err := slot.Load[model.HeroSectionModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load hero: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hero section")
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctrl *SettingsController) UpdateHero(c *fiber.Ctx) error {
	m, err := slot.Load[model.HeroSectionModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load hero: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load hero section")
	}
	form := dto.HeroSectionFormFromModel(*m)
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	oldImage := m.HeroImageURL
	stale, err := ctrl.applyImages(c, imageSlot{heroImage, &m.HeroImageURL})
	if err != nil {
		return err
	}
	form.ApplyTo(m)
	if err := slot.Save(c.UserContext(), ctrl.DB, m); err != nil {
		if m.HeroImageURL != oldImage {
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, m.HeroImageURL)
		}
		log.Printf("[ERROR] save hero: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save hero section")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale...)
	ctrl.logUpdate(c, "hero_section", m.HeroTitle)
	return helper.JsonUpdated(c, "Hero section updated", m)
}

/* =========================================================
   Showroom
========================================================= */

func (ctrl *SettingsController) GetShowroom(c *fiber.Ctx) error {
	m, err := slot.Load[model.ShowroomModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load showroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load showroom")
	}
	return helper.JsonOK(c, "ok", m)
}

func (ctrl *SettingsController) UpdateShowroom(c *fiber.Ctx) error {
	m, err := slot.Load[model.ShowroomModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load showroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load showroom")
	}
	form := dto.ShowroomFormFromModel(*m)
	if ok, err := bindForm(c, &form); !ok {
		return err
	}

	oldImage := m.ShowroomImageURL
	stale, err := ctrl.applyImages(c, imageSlot{showroomImage, &m.ShowroomImageURL})
	if err != nil {
		return err
	}
	form.ApplyTo(m)
	if err := slot.Save(c.UserContext(), ctrl.DB, m); err != nil {
		if m.ShowroomImageURL != oldImage {
			helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, m.ShowroomImageURL)
		}
		log.Printf("[ERROR] save showroom: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save showroom")
	}
	helperOSS.DeleteStale(c.UserContext(), ctrl.Blob, stale...)
	ctrl.logUpdate(c, "showroom", m.ShowroomTitle)
	return helper.JsonUpdated(c, "Showroom updated", m)
}

/* =========================================================
   ContactInfo
========================================================= */

func (ctrl *SettingsController) GetContact(c *fiber.Ctx) error {
	m, err := slot.Load[model.ContactInfoModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load contact info: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact info")
	}
	return helper.JsonOK(c, "ok", dto.ToContactInfoDTO(*m))
}

func (ctrl *SettingsController) UpdateContact(c *fiber.Ctx) error {
	m, err := slot.Load[model.ContactInfoModel](c.UserContext(), ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] load contact info: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load contact info")
	}
	form := dto.ContactInfoFormFromModel(*m)
	if ok, err := bindForm(c, &form); !ok {
		return err
	}
	form.ApplyTo(m)
	if err := slot.Save(c.UserContext(), ctrl.DB, m); err != nil {
		log.Printf("[ERROR] save contact info: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save contact info")
	}
	ctrl.logUpdate(c, "contact_info", m.ContactEmail)
	return helper.JsonUpdated(c, "Contact info updated", dto.ToContactInfoDTO(*m))
}
