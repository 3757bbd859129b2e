package routes_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"actech_backend/internals/configs"
	"actech_backend/internals/constants"
	serviceModel "actech_backend/internals/features/content/services/model"
	settingsModel "actech_backend/internals/features/site/settings/model"
	userModel "actech_backend/internals/features/users/user/model"
	routes "actech_backend/internals/route"
	"actech_backend/internals/testkit"
)

func newServer(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.AccessTokenTTL = time.Hour
	configs.CookieSecure = false

	db := testkit.NewDB(t)
	app := testkit.NewApp()
	routes.SetupRoutes(app, db, nil)
	return app, db
}

func login(t *testing.T, app *fiber.App, identifier string) string {
	t.Helper()
	res := testkit.Do(t, app, fiber.MethodPost, "/login", map[string]any{
		"identifier": identifier,
		"password":   testkit.Password,
	})
	if res.Status != fiber.StatusOK {
		t.Fatalf("login %s = %d, body = %s", identifier, res.Status, res.Raw)
	}
	tok, _ := res.Data()["access_token"].(string)
	if tok == "" {
		t.Fatalf("login %s: empty token", identifier)
	}
	return tok
}

func bearer(tok string) []string {
	return []string{fiber.HeaderAuthorization, "Bearer " + tok}
}

func TestPublicHomeAndHealth(t *testing.T) {
	app, _ := newServer(t)

	home := testkit.Do(t, app, fiber.MethodGet, "/", nil)
	if home.Status != fiber.StatusOK {
		t.Fatalf("GET / = %d, body = %s", home.Status, home.Raw)
	}
	for _, key := range []string{"site_config", "hero", "showroom", "contact", "seo", "services", "partners", "projects"} {
		if _, ok := home.Data()[key]; !ok {
			t.Errorf("home missing %q", key)
		}
	}

	if res := testkit.Do(t, app, fiber.MethodGet, "/health", nil); res.Status != fiber.StatusOK {
		t.Errorf("GET /health = %d", res.Status)
	}
}

func TestPanelRequiresAuthentication(t *testing.T) {
	app, _ := newServer(t)

	for _, path := range []string{"/panel-admin", "/panel-admin/services", "/panel-admin/seo", "/panel-admin/users"} {
		if res := testkit.Do(t, app, fiber.MethodGet, path, nil); res.Status != fiber.StatusUnauthorized {
			t.Errorf("anonymous GET %s = %d, want 401", path, res.Status)
		}
	}
	res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services", nil, bearer("garbage.token.value")...)
	if res.Status != fiber.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", res.Status)
	}
}

func TestAnonymousWritesChangeNothing(t *testing.T) {
	app, db := newServer(t)
	existing := serviceModel.ServiceModel{ServiceTitle: "Redes", ServiceDescription: "Cableado", ServiceIcon: serviceModel.DefaultIcon, ServiceIsActive: true}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{fiber.MethodPost, "/panel-admin/services/create", map[string]any{"service_title": "x", "service_description": "y"}},
		{fiber.MethodPost, "/panel-admin/contact", map[string]any{"contact_phone": "+51987654321"}},
		{fiber.MethodPatch, "/panel-admin/seo", map[string]any{"seo_author": "nobody"}},
		{fiber.MethodPost, "/panel-admin/users/create", map[string]any{
			"user_name": "intruder", "email": "intruder@example.com", "role": constants.RoleAdmin,
			"password1": "another-pass-1", "password2": "another-pass-1",
		}},
		{fiber.MethodPost, "/panel-admin/services/" + existing.ServiceID.String() + "/delete", nil},
		{fiber.MethodDelete, "/panel-admin/services/" + existing.ServiceID.String(), nil},
	}
	for _, tt := range tests {
		if res := testkit.Do(t, app, tt.method, tt.path, tt.body); res.Status != fiber.StatusUnauthorized {
			t.Errorf("anonymous %s %s = %d, want 401", tt.method, tt.path, res.Status)
		}
	}

	counts := []struct {
		table string
		want  int64
	}{
		{"services", 1},
		{"contact_infos", 0},
		{"seo_configs", 0},
		{"users", 0},
		{"activity_logs", 0},
	}
	for _, c := range counts {
		var n int64
		if err := db.Table(c.table).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", c.table, err)
		}
		if n != c.want {
			t.Errorf("%s rows = %d, want %d", c.table, n, c.want)
		}
	}
}

func TestLoginFailures(t *testing.T) {
	app, db := newServer(t)
	testkit.CreateUser(t, db, "ana", constants.RoleEditor, false)
	off := testkit.CreateUser(t, db, "old", constants.RoleEditor, false)
	db.Model(&userModel.UserModel{}).Where("id = ?", off.ID).Update("is_active", false)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"missing fields", map[string]any{"identifier": ""}, fiber.StatusUnprocessableEntity},
		{"wrong password", map[string]any{"identifier": "ana", "password": "nope-nope"}, fiber.StatusUnauthorized},
		{"unknown user", map[string]any{"identifier": "ghost", "password": testkit.Password}, fiber.StatusUnauthorized},
		{"inactive", map[string]any{"identifier": "old@example.com", "password": testkit.Password}, fiber.StatusForbidden},
		{"email ignores case", map[string]any{"identifier": "Ana@Example.COM", "password": testkit.Password}, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if res := testkit.Do(t, app, fiber.MethodPost, "/login", tt.body); res.Status != tt.want {
				t.Errorf("status = %d, want %d (body %s)", res.Status, tt.want, res.Raw)
			}
		})
	}
}

func TestRoleGatesAcrossPanel(t *testing.T) {
	app, db := newServer(t)
	testkit.CreateUser(t, db, "viewer", constants.RoleViewer, false)
	testkit.CreateUser(t, db, "editor", constants.RoleEditor, false)
	testkit.CreateUser(t, db, "boss", constants.RoleAdmin, false)

	viewer := login(t, app, "viewer")
	editor := login(t, app, "editor@example.com")
	admin := login(t, app, "boss")

	service := map[string]any{"service_title": "Domótica", "service_description": "Casas inteligentes"}

	tests := []struct {
		name   string
		token  string
		method string
		path   string
		body   map[string]any
		want   int
	}{
		{"viewer reads panel", viewer, fiber.MethodGet, "/panel-admin/services", nil, fiber.StatusOK},
		{"viewer reads dashboard", viewer, fiber.MethodGet, "/panel-admin/dashboard", nil, fiber.StatusOK},
		{"viewer cannot create", viewer, fiber.MethodPost, "/panel-admin/services/create", service, fiber.StatusForbidden},
		{"viewer cannot edit settings", viewer, fiber.MethodPatch, "/panel-admin/hero", map[string]any{"hero_title": "x"}, fiber.StatusForbidden},
		{"editor creates", editor, fiber.MethodPost, "/panel-admin/services/create", service, fiber.StatusCreated},
		{"editor cannot manage users", editor, fiber.MethodGet, "/panel-admin/users", nil, fiber.StatusForbidden},
		{"admin lists users", admin, fiber.MethodGet, "/panel-admin/users", nil, fiber.StatusOK},
		{"admin reads activities", admin, fiber.MethodGet, "/panel-admin/activities", nil, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testkit.Do(t, app, tt.method, tt.path, tt.body, bearer(tt.token)...)
			if res.Status != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, res.Status, tt.want, res.Raw)
			}
		})
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	app, db := newServer(t)
	testkit.CreateUser(t, db, "ana", constants.RoleEditor, false)
	tok := login(t, app, "ana")

	me := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/me", nil, bearer(tok)...)
	if me.Status != fiber.StatusOK {
		t.Fatalf("me = %d, body = %s", me.Status, me.Raw)
	}
	if me.Data()["can_edit_content"] != true || me.Data()["can_manage_users"] != false {
		t.Errorf("capabilities = %v", me.Data())
	}

	if res := testkit.Do(t, app, fiber.MethodPost, "/logout", nil, bearer(tok)...); res.Status != fiber.StatusOK {
		t.Fatalf("logout = %d", res.Status)
	}
	if res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/me", nil, bearer(tok)...); res.Status != fiber.StatusUnauthorized {
		t.Errorf("after logout = %d, want 401", res.Status)
	}

	fresh := login(t, app, "ana")
	if res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/me", nil, bearer(fresh)...); res.Status != fiber.StatusOK {
		t.Errorf("new login after logout = %d, want 200", res.Status)
	}
}

func TestDeactivatedUserLosesAccessImmediately(t *testing.T) {
	app, db := newServer(t)
	u := testkit.CreateUser(t, db, "ana", constants.RoleEditor, false)
	tok := login(t, app, "ana")

	db.Model(&userModel.UserModel{}).Where("id = ?", u.ID).Update("is_active", false)
	if res := testkit.Do(t, app, fiber.MethodGet, "/panel-admin/services", nil, bearer(tok)...); res.Status != fiber.StatusForbidden {
		t.Errorf("deactivated = %d, want 403", res.Status)
	}
}

func TestChangePassword(t *testing.T) {
	app, db := newServer(t)
	testkit.CreateUser(t, db, "ana", constants.RoleViewer, false)
	tok := login(t, app, "ana")

	wrong := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/me/password", map[string]any{
		"current_password": "not-it",
		"new_password1":    "brand-new-pass",
		"new_password2":    "brand-new-pass",
	}, bearer(tok)...)
	if wrong.Status != fiber.StatusUnprocessableEntity {
		t.Fatalf("wrong current = %d, want 422", wrong.Status)
	}

	ok := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/me/password", map[string]any{
		"current_password": testkit.Password,
		"new_password1":    "brand-new-pass",
		"new_password2":    "brand-new-pass",
	}, bearer(tok)...)
	if ok.Status != fiber.StatusOK {
		t.Fatalf("change = %d, body = %s", ok.Status, ok.Raw)
	}

	res := testkit.Do(t, app, fiber.MethodPost, "/login", map[string]any{
		"identifier": "ana",
		"password":   "brand-new-pass",
	})
	if res.Status != fiber.StatusOK {
		t.Errorf("login with new password = %d", res.Status)
	}
}

func TestUserManagement(t *testing.T) {
	app, db := newServer(t)
	testkit.CreateUser(t, db, "boss", constants.RoleAdmin, true)
	admin := login(t, app, "boss")

	create := func(name, email string) testkit.Response {
		return testkit.Do(t, app, fiber.MethodPost, "/panel-admin/users/create", map[string]any{
			"user_name": name,
			"email":     email,
			"role":      constants.RoleEditor,
			"password1": "another-pass-1",
			"password2": "another-pass-1",
		}, bearer(admin)...)
	}

	res := create("carla", "carla@example.com")
	if res.Status != fiber.StatusCreated {
		t.Fatalf("create = %d, body = %s", res.Status, res.Raw)
	}
	id, _ := res.Data()["id"].(string)
	if _, leaked := res.Data()["password"]; leaked {
		t.Error("password hash serialized")
	}

	if dup := create("carla", "other@example.com"); dup.Status != fiber.StatusConflict {
		t.Errorf("duplicate user_name = %d, want 409", dup.Status)
	}
	if dup := create("carla2", "CARLA@example.com"); dup.Status != fiber.StatusConflict {
		t.Errorf("duplicate email = %d, want 409", dup.Status)
	}

	mismatch := testkit.Do(t, app, fiber.MethodPost, "/panel-admin/users/create", map[string]any{
		"user_name": "dora",
		"email":     "dora@example.com",
		"role":      constants.RoleViewer,
		"password1": "another-pass-1",
		"password2": "another-pass-2",
	}, bearer(admin)...)
	if mismatch.Status != fiber.StatusUnprocessableEntity {
		t.Errorf("password mismatch = %d, want 422", mismatch.Status)
	}

	// carla jadi penulis terakhir SEO, lalu dihapus
	carla := login(t, app, "carla")
	if r := testkit.Do(t, app, fiber.MethodPatch, "/panel-admin/seo", map[string]any{"seo_author": "Carla"}, bearer(carla)...); r.Status != fiber.StatusOK {
		t.Fatalf("seo update = %d, body = %s", r.Status, r.Raw)
	}

	if del := testkit.Do(t, app, fiber.MethodDelete, "/panel-admin/users/"+id, nil, bearer(admin)...); del.Status != fiber.StatusOK {
		t.Fatalf("delete = %d, body = %s", del.Status, del.Raw)
	}
	var seo settingsModel.SEOConfigModel
	if err := db.First(&seo).Error; err != nil {
		t.Fatal(err)
	}
	if seo.SEOUpdatedBy != nil {
		t.Errorf("seo_updated_by = %v, want nil", seo.SEOUpdatedBy)
	}
}
