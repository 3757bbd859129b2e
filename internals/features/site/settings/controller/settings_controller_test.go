package controller_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/site/settings/model"
	"actech_backend/internals/features/site/settings/route"
	helper "actech_backend/internals/helpers"
	helperOSS "actech_backend/internals/helpers/oss"
	"actech_backend/internals/helpers/slot"
	"actech_backend/internals/testkit"
)

func setup(t *testing.T, role string) (*fiber.App, *gorm.DB) {
	return setupWithBlob(t, role, nil)
}

func setupWithBlob(t *testing.T, role string, blob helperOSS.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testkit.NewDB(t)
	u := testkit.CreateUser(t, db, "settings-user", role, false)
	app := testkit.NewApp()
	route.SettingsAdminRoutes(app.Group("/panel-admin", testkit.AsUser(u)), db, blob)
	return app, db
}

func TestGetSingletonCreatesDefaults(t *testing.T) {
	app, db := setup(t, constants.RoleViewer)

	res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/contact", nil)
	if res.Status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", res.Status, res.Raw)
	}
	if res.Data()["contact_email"] != "informes@actechnology.com.pe" {
		t.Errorf("email = %v", res.Data()["contact_email"])
	}
	if _, leaked := res.Data()["contact_slot"]; leaked {
		t.Error("slot column must not be serialized")
	}

	testkit.Do(t, app, fiber.MethodGet, "/panel-admin/contact", nil)
	n, err := slot.Count[model.ContactInfoModel](context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestUpdateContactRejectsInvalidPhone(t *testing.T) {
	app, db := setup(t, constants.RoleEditor)

	before, err := slot.Load[model.ContactInfoModel](context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}

	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/contact", map[string]any{
		"contact_phone": "abc",
	})
	if res.Status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", res.Status)
	}
	if _, ok := res.FieldErrors()["contact_phone"]; !ok {
		t.Errorf("errors = %v", res.FieldErrors())
	}

	after, err := slot.Load[model.ContactInfoModel](context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}
	if after.ContactPhone != before.ContactPhone {
		t.Errorf("phone changed to %q", after.ContactPhone)
	}
}

func TestUpdateContactWhatsAppURL(t *testing.T) {
	app, _ := setup(t, constants.RoleEditor)

	res := testkit.Do(t, app, fiber.MethodPatch, "/panel-admin/contact", map[string]any{
		"contact_whatsapp":         "+51987654321",
		"contact_whatsapp_message": "Hola equipo",
	})
	if res.Status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", res.Status, res.Raw)
	}
	if got := res.Data()["contact_whatsapp_url"]; got != "https://wa.me/51987654321?text=Hola%20equipo" {
		t.Errorf("whatsapp url = %v", got)
	}
}

func TestSEOOpenGraphFallback(t *testing.T) {
	app, db := setup(t, constants.RoleAdmin)

	res := testkit.Do(t, app, fiber.MethodPut, "/panel-admin/seo", map[string]any{
		"seo_meta_title": "AC Technology Lima",
		"seo_og_title":   "",
		"seo_robots":     "NOINDEX,follow",
	})
	if res.Status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", res.Status, res.Raw)
	}
	data := res.Data()
	if data["seo_resolved_og_title"] != "AC Technology Lima" {
		t.Errorf("resolved og title = %v", data["seo_resolved_og_title"])
	}
	if data["seo_robots"] != model.RobotsNoIndexFollow {
		t.Errorf("robots = %v", data["seo_robots"])
	}

	stored, err := slot.Load[model.SEOConfigModel](context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}
	if stored.SEOUpdatedBy == nil {
		t.Error("seo_updated_by not stamped")
	}

	bad := testkit.Do(t, app, fiber.MethodPut, "/panel-admin/seo", map[string]any{"seo_robots": "all"})
	if bad.Status != fiber.StatusUnprocessableEntity {
		t.Errorf("invalid robots = %d, want 422", bad.Status)
	}
}

func TestDeleteSingletonIsRefused(t *testing.T) {
	app, db := setup(t, constants.RoleAdmin)

	for _, path := range []string{"/config", "/hero", "/showroom", "/contact", "/seo"} {
		testkit.Do(t, app, fiber.MethodGet, "/panel-admin"+path, nil)
		res := testkit.Do(t, app, fiber.MethodDelete, "/panel-admin"+path, nil)
		if res.Status != fiber.StatusMethodNotAllowed {
			t.Errorf("DELETE %s = %d, want 405", path, res.Status)
		}
		if res.Body["error_code"] != helper.CodeSingletonPermanent {
			t.Errorf("DELETE %s error_code = %v", path, res.Body["error_code"])
		}
	}

	n, err := slot.Count[model.SiteConfigModel](context.Background(), db)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("site config rows = %d, want 1", n)
	}
}

func TestViewerCannotUpdateSettings(t *testing.T) {
	app, _ := setup(t, constants.RoleViewer)

	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/hero", map[string]any{"hero_title": "x"})
	if res.Status != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", res.Status)
	}
}

func TestUpdateSEOImages(t *testing.T) {
	rec := &testkit.BlobRecorder{FailVariant: helperOSS.VariantFavicon.Name}
	app, db := setupWithBlob(t, constants.RoleAdmin, rec.Service())
	ctx := context.Background()

	oldFavicon := testkit.BlobBaseURL + "seo/old-favicon.png"
	seo, err := slot.Load[model.SEOConfigModel](ctx, db)
	if err != nil {
		t.Fatal(err)
	}
	seo.SEOFaviconURL = oldFavicon
	if err := slot.Save(ctx, db, seo); err != nil {
		t.Fatal(err)
	}
	stored := func() *model.SEOConfigModel {
		m, err := slot.Load[model.SEOConfigModel](ctx, db)
		if err != nil {
			t.Fatal(err)
		}
		return m
	}

	files := map[string]testkit.File{
		"seo_og_image": {Name: "og.jpg", Content: []byte("og-bytes")},
		"seo_favicon":  {Name: "fav.png", Content: []byte("fav-bytes")},
	}
	ogURL := testkit.BlobBaseURL + "seo/og.jpg"
	favURL := testkit.BlobBaseURL + "seo/fav.png"

	// slot kedua gagal: upload og dibersihkan, row tetap
	res := testkit.DoMultipart(t, app, fiber.MethodPatch, "/panel-admin/seo", nil, files)
	if res.Status != fiber.StatusBadGateway {
		t.Fatalf("partial failure = %d, want 502 (body %s)", res.Status, res.Raw)
	}
	if len(rec.Deleted) != 1 || rec.Deleted[0] != ogURL {
		t.Errorf("deleted = %v, want [%s]", rec.Deleted, ogURL)
	}
	if m := stored(); m.SEOOGImageURL != "" || m.SEOFaviconURL != oldFavicon {
		t.Errorf("stored og=%q favicon=%q, want unchanged", m.SEOOGImageURL, m.SEOFaviconURL)
	}

	// semua slot sukses: favicon lama dihapus setelah simpan
	rec.FailVariant = ""
	rec.Deleted = nil
	res = testkit.DoMultipart(t, app, fiber.MethodPatch, "/panel-admin/seo", nil, files)
	if res.Status != fiber.StatusOK {
		t.Fatalf("upload = %d, body = %s", res.Status, res.Raw)
	}
	if m := stored(); m.SEOOGImageURL != ogURL || m.SEOFaviconURL != favURL {
		t.Errorf("stored og=%q favicon=%q", m.SEOOGImageURL, m.SEOFaviconURL)
	}
	if len(rec.Deleted) != 1 || rec.Deleted[0] != oldFavicon {
		t.Errorf("deleted = %v, want [%s]", rec.Deleted, oldFavicon)
	}

	// clear hanya og, favicon tetap
	rec.Deleted = nil
	res = testkit.DoMultipart(t, app, fiber.MethodPatch, "/panel-admin/seo", map[string]string{"seo_og_image_clear": "true"}, nil)
	if res.Status != fiber.StatusOK {
		t.Fatalf("clear = %d, body = %s", res.Status, res.Raw)
	}
	if m := stored(); m.SEOOGImageURL != "" || m.SEOFaviconURL != favURL {
		t.Errorf("stored og=%q favicon=%q after clear", m.SEOOGImageURL, m.SEOFaviconURL)
	}
	if len(rec.Deleted) != 1 || rec.Deleted[0] != ogURL {
		t.Errorf("deleted = %v, want [%s]", rec.Deleted, ogURL)
	}
}
