package controller_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/constants"
	"actech_backend/internals/features/content/services/model"
	"actech_backend/internals/features/content/services/route"
	helperOSS "actech_backend/internals/helpers/oss"
	"actech_backend/internals/testkit"
)

func setup(t *testing.T, role string) (*fiber.App, *gorm.DB) {
	return setupWithBlob(t, role, nil)
}

func setupWithBlob(t *testing.T, role string, blob helperOSS.BlobService) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testkit.NewDB(t)
	u := testkit.CreateUser(t, db, "tester", role, false)
	app := testkit.NewApp()
	route.ServiceAdminRoutes(app.Group("/panel-admin", testkit.AsUser(u)), db, blob)
	return app, db
}

func TestCreateServiceAppliesDefaults(t *testing.T) {
	app, db := setup(t, constants.RoleEditor)

	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/services/create", map[string]any{
		"service_title":       "  Cableado estructurado ",
		"service_description": "Instalación **certificada**",
		"service_point1":      "Cat6A",
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %s", res.Status, res.Raw)
	}
	data := res.Data()
	if data["service_title"] != "Cableado estructurado" {
		t.Errorf("title = %v", data["service_title"])
	}
	if data["service_icon"] != model.DefaultIcon {
		t.Errorf("icon = %v, want default", data["service_icon"])
	}
	if data["service_is_active"] != true {
		t.Errorf("is_active = %v, want true", data["service_is_active"])
	}
	if pts, _ := data["service_points"].([]any); len(pts) != 1 {
		t.Errorf("points = %v, want 1 entry", data["service_points"])
	}

	var n int64
	db.Model(&model.ServiceModel{}).Count(&n)
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
	var logs int64
	db.Table("activity_logs").Where("activity_entity = ? AND activity_action = ?", "service", "create").Count(&logs)
	if logs != 1 {
		t.Errorf("activity rows = %d, want 1", logs)
	}
}

func TestCreateServiceValidation(t *testing.T) {
	app, db := setup(t, constants.RoleAdmin)

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing title", map[string]any{"service_description": "x"}, "service_title"},
		{"missing description", map[string]any{"service_title": "x"}, "service_description"},
		{"negative order", map[string]any{"service_title": "x", "service_description": "y", "service_order": -1}, "service_order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/services/create", tt.body)
			if res.Status != fiber.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", res.Status)
			}
			if _, ok := res.FieldErrors()[tt.field]; !ok {
				t.Errorf("errors = %v, want key %s", res.FieldErrors(), tt.field)
			}
		})
	}

	var n int64
	db.Model(&model.ServiceModel{}).Count(&n)
	if n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
}

func TestUpdateServiceKeepsUnsentFields(t *testing.T) {
	app, db := setup(t, constants.RoleEditor)

	m := model.ServiceModel{
		ServiceTitle:       "Redes",
		ServiceDescription: "Desc",
		ServiceIcon:        "fa-solid fa-wifi",
		ServiceOrder:       4,
		ServiceIsActive:    true,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}

	res := testkit.Do(t, app, fiber.MethodPatch, "/panel-admin/services/"+m.ServiceID.String()+"/edit", map[string]any{
		"service_is_active": false,
	})
	if res.Status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", res.Status, res.Raw)
	}

	var got model.ServiceModel
	if err := db.First(&got, "service_id = ?", m.ServiceID).Error; err != nil {
		t.Fatal(err)
	}
	if got.ServiceIsActive {
		t.Error("is_active still true")
	}
	if got.ServiceTitle != "Redes" || got.ServiceIcon != "fa-solid fa-wifi" || got.ServiceOrder != 4 {
		t.Errorf("unsent fields changed: %+v", got)
	}
}

func TestServiceNotFoundAndDelete(t *testing.T) {
	app, db := setup(t, constants.RoleEditor)

	for _, path := range []string{
		"/panel-admin/services/not-a-uuid",
		"/panel-admin/services/6f1c7a62-3a61-4a5e-9b7c-1f4f3f0a0a0a",
	} {
		if res := testkit.Do(t, app, fiber.MethodGet, path, nil); res.Status != fiber.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, res.Status)
		}
	}

	m := model.ServiceModel{ServiceTitle: "A", ServiceDescription: "B", ServiceIcon: model.DefaultIcon}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}
	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/services/"+m.ServiceID.String()+"/delete", nil)
	if res.Status != fiber.StatusOK {
		t.Fatalf("delete status = %d, body = %s", res.Status, res.Raw)
	}
	if res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services/"+m.ServiceID.String(), nil); res.Status != fiber.StatusNotFound {
		t.Errorf("after delete GET = %d, want 404", res.Status)
	}
}

func TestViewerCannotWriteServices(t *testing.T) {
	app, db := setup(t, constants.RoleViewer)

	if res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services", nil); res.Status != fiber.StatusOK {
		t.Fatalf("viewer list = %d, want 200", res.Status)
	}
	res := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/services/create", map[string]any{
		"service_title":       "X",
		"service_description": "Y",
	})
	if res.Status != fiber.StatusForbidden {
		t.Fatalf("viewer create = %d, want 403", res.Status)
	}
	var n int64
	db.Model(&model.ServiceModel{}).Count(&n)
	if n != 0 {
		t.Errorf("rows = %d, want 0", n)
	}
}

func TestListServicesOrder(t *testing.T) {
	app, db := setup(t, constants.RoleViewer)

	for _, s := range []model.ServiceModel{
		{ServiceTitle: "third", ServiceDescription: "d", ServiceIcon: "i", ServiceOrder: 3, ServiceIsActive: true},
		{ServiceTitle: "first", ServiceDescription: "d", ServiceIcon: "i", ServiceOrder: 1, ServiceIsActive: true},
		{ServiceTitle: "hidden", ServiceDescription: "d", ServiceIcon: "i", ServiceOrder: 2, ServiceIsActive: false},
	} {
		s := s
		if err := db.Create(&s).Error; err != nil {
			t.Fatal(err)
		}
	}

	all := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services", nil).List()
	if len(all) != 3 || all[0]["service_title"] != "first" || all[2]["service_title"] != "third" {
		t.Errorf("order = %v", titles(all))
	}
	active := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services?active=true", nil).List()
	if len(active) != 2 {
		t.Errorf("active = %v, want 2 rows", titles(active))
	}
}

func titles(rows []map[string]any) []any {
	out := make([]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r["service_title"])
	}
	return out
}

func TestUpdateServiceImageLifecycle(t *testing.T) {
	rec := &testkit.BlobRecorder{}
	app, db := setupWithBlob(t, constants.RoleEditor, rec.Service())

	oldURL := testkit.BlobBaseURL + "services/old.webp"
	m := model.ServiceModel{
		ServiceTitle: "Redes", ServiceDescription: "Cableado",
		ServiceIcon: model.DefaultIcon, ServiceIsActive: true, ServiceImageURL: oldURL,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatal(err)
	}
	path := "/panel-admin/services/" + m.ServiceID.String() + "/edit"
	stored := func() string {
		var row model.ServiceModel
		if err := db.First(&row, "service_id = ?", m.ServiceID).Error; err != nil {
			t.Fatal(err)
		}
		return row.ServiceImageURL
	}

	// upload baru menggantikan URL, object lama dihapus setelah simpan
	newURL := testkit.BlobBaseURL + "services/new.jpg"
	res := testkit.DoMultipart(t, app, fiber.MethodPatch, path, nil, map[string]testkit.File{
		"service_image": {Name: "new.jpg", Content: []byte("fake-jpeg")},
	})
	if res.Status != fiber.StatusOK {
		t.Fatalf("upload = %d, body = %s", res.Status, res.Raw)
	}
	if res.Data()["service_image_url"] != newURL || res.Data()["service_title"] != "Redes" {
		t.Errorf("data = %v", res.Data())
	}
	if len(rec.Deleted) != 1 || rec.Deleted[0] != oldURL {
		t.Errorf("deleted = %v, want [%s]", rec.Deleted, oldURL)
	}

	// upload gagal: row tidak berubah, tidak ada delete tambahan
	rec.FailVariant = helperOSS.VariantContent.Name
	res = testkit.DoMultipart(t, app, fiber.MethodPatch, path, nil, map[string]testkit.File{
		"service_image": {Name: "broken.jpg", Content: []byte("fake-jpeg")},
	})
	if res.Status != fiber.StatusBadGateway {
		t.Errorf("failed upload = %d, want 502", res.Status)
	}
	if got := stored(); got != newURL {
		t.Errorf("stored after failure = %q, want %q", got, newURL)
	}
	if len(rec.Deleted) != 1 {
		t.Errorf("deleted after failure = %v", rec.Deleted)
	}
	rec.FailVariant = ""

	// clear mengosongkan field dan menghapus object
	res = testkit.DoMultipart(t, app, fiber.MethodPatch, path, map[string]string{"service_image_clear": "true"}, nil)
	if res.Status != fiber.StatusOK {
		t.Fatalf("clear = %d, body = %s", res.Status, res.Raw)
	}
	if got := stored(); got != "" {
		t.Errorf("stored after clear = %q, want empty", got)
	}
	if n := len(rec.Deleted); n != 2 || rec.Deleted[n-1] != newURL {
		t.Errorf("deleted = %v, want last %s", rec.Deleted, newURL)
	}
}
